package database

import (
	"github.com/faizhadyan1212/StuMa-Api/internal/domain"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Item{},
	)
}
