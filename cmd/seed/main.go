package main

import (
	"log"

	tool "github.com/faizhadyan1212/StuMa-Api/internal/tools/seed"
)

func main() {
	if err := tool.NewRootCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}
