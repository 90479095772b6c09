package app

import (
	"log/slog"
	"net/http"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/faizhadyan1212/StuMa-Api/internal/config"
	"github.com/faizhadyan1212/StuMa-Api/internal/observability"
)

type App struct {
	Config        *config.Config
	Logger        *slog.Logger
	Server        *http.Server
	Observability *observability.Runtime
	DB            *gorm.DB
	Redis         redis.UniversalClient
}

func New(cfg *config.Config, logger *slog.Logger, server *http.Server, runtime *observability.Runtime, db *gorm.DB, rdb redis.UniversalClient) *App {
	return &App{Config: cfg, Logger: logger, Server: server, Observability: runtime, DB: db, Redis: rdb}
}
