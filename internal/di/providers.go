package di

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/faizhadyan1212/StuMa-Api/internal/app"
	"github.com/faizhadyan1212/StuMa-Api/internal/config"
	"github.com/faizhadyan1212/StuMa-Api/internal/database"
	"github.com/faizhadyan1212/StuMa-Api/internal/health"
	"github.com/faizhadyan1212/StuMa-Api/internal/http/handler"
	"github.com/faizhadyan1212/StuMa-Api/internal/http/middleware"
	"github.com/faizhadyan1212/StuMa-Api/internal/http/router"
	"github.com/faizhadyan1212/StuMa-Api/internal/observability"
	"github.com/faizhadyan1212/StuMa-Api/internal/repository"
	"github.com/faizhadyan1212/StuMa-Api/internal/security"
	"github.com/faizhadyan1212/StuMa-Api/internal/service"
)

var ConfigSet = wire.NewSet(config.Load)

var ObservabilitySet = wire.NewSet(
	provideObservabilityRuntime,
	provideAppLogger,
)

var RuntimeInfraSet = wire.NewSet(
	provideRuntimeDB,
	provideRedisClient,
)

var RepositorySet = wire.NewSet(
	repository.NewUserRepository,
	repository.NewItemRepository,
)

var SecuritySet = wire.NewSet(provideJWTManager)

var ServiceSet = wire.NewSet(
	service.NewAuthService,
	service.NewUserService,
	service.NewItemService,
	wire.Bind(new(service.AuthServiceInterface), new(*service.AuthService)),
	wire.Bind(new(service.UserServiceInterface), new(*service.UserService)),
	wire.Bind(new(service.ItemService), new(*service.ItemServiceImpl)),
)

var HTTPSet = wire.NewSet(
	handler.NewAuthHandler,
	handler.NewProfileHandler,
	handler.NewItemHandler,
	provideRouterDependencies,
	router.NewRouter,
	provideHTTPServer,
)

var AppSet = wire.NewSet(app.New)

func provideObservabilityRuntime(cfg *config.Config) (*observability.Runtime, error) {
	bootstrapLogger := observability.NewBootstrapLogger(cfg)
	return observability.InitRuntime(context.Background(), cfg, bootstrapLogger)
}

func provideAppLogger(cfg *config.Config, runtime *observability.Runtime) *slog.Logger {
	return observability.InitLogger(cfg, runtime.LoggerProvider)
}

func provideRuntimeDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := database.Open(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// provideRedisClient is optional infrastructure: without REDIS_ADDR the rate
// limiters fall back to their in-process store.
func provideRedisClient(cfg *config.Config) redis.UniversalClient {
	if cfg.RedisAddr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
}

func provideJWTManager(cfg *config.Config) *security.JWTManager {
	return security.NewJWTManager(cfg.JWTIssuer, cfg.JWTAudience, cfg.JWTSecret, cfg.JWTTTL)
}

func provideRouterDependencies(
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	itemHandler *handler.ItemHandler,
	jwtMgr *security.JWTManager,
	rdb redis.UniversalClient,
	db *gorm.DB,
) router.Dependencies {
	var globalLimiter, authLimiter func(http.Handler) http.Handler
	if rdb != nil {
		backend := middleware.NewRedisFixedWindowLimiter(rdb, "stuma:rl")
		globalLimiter = middleware.NewDistributedRateLimiter(backend, cfg.APIRateLimitPerMin, time.Minute, middleware.FailOpen, "api").Middleware()
		authLimiter = middleware.NewDistributedRateLimiter(backend, cfg.AuthRateLimitPerMin, time.Minute, middleware.FailClosed, "auth").Middleware()
	}
	return router.Dependencies{
		AuthHandler:       authHandler,
		ProfileHandler:    profileHandler,
		ItemHandler:       itemHandler,
		JWTManager:        jwtMgr,
		CORSOrigins:       cfg.CORSAllowedOrigins,
		AuthRateLimitRPM:  cfg.AuthRateLimitPerMin,
		APIRateLimitRPM:   cfg.APIRateLimitPerMin,
		GlobalRateLimiter: globalLimiter,
		AuthRateLimiter:   authLimiter,
		Readiness:         health.NewProbeRunner(time.Second, health.NewDBChecker(db), health.NewRedisChecker(rdb)),
		EnableOTelHTTP:    cfg.OTELTracingEnabled,
	}
}

func provideHTTPServer(cfg *config.Config, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
