package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/faizhadyan1212/StuMa-Api/internal/health"
	"github.com/faizhadyan1212/StuMa-Api/internal/http/handler"
	"github.com/faizhadyan1212/StuMa-Api/internal/http/middleware"
	"github.com/faizhadyan1212/StuMa-Api/internal/http/response"
	"github.com/faizhadyan1212/StuMa-Api/internal/security"
)

type Dependencies struct {
	AuthHandler       *handler.AuthHandler
	ProfileHandler    *handler.ProfileHandler
	ItemHandler       *handler.ItemHandler
	JWTManager        *security.JWTManager
	CORSOrigins       []string
	AuthRateLimitRPM  int
	APIRateLimitRPM   int
	GlobalRateLimiter func(http.Handler) http.Handler
	AuthRateLimiter   func(http.Handler) http.Handler
	Readiness         *health.ProbeRunner
	EnableOTelHTTP    bool
}

func NewRouter(dep Dependencies) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.StructuredRequestLogger)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.CORS(dep.CORSOrigins))
	r.Use(middleware.BodyLimit(1 << 20))
	if dep.GlobalRateLimiter != nil {
		r.Use(dep.GlobalRateLimiter)
	} else {
		r.Use(middleware.NewRateLimiter(dep.APIRateLimitRPM, time.Minute).Middleware())
	}

	authLimiter := dep.AuthRateLimiter
	if authLimiter == nil {
		authLimiter = middleware.NewRateLimiter(dep.AuthRateLimitRPM, time.Minute).Middleware()
	}
	authGate := middleware.AuthMiddleware(dep.JWTManager)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, r, http.StatusOK, "StuMa API is running", nil)
	})
	r.Get("/health/live", func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		if dep.Readiness == nil {
			response.JSON(w, r, http.StatusOK, map[string]any{"status": "ready", "checks": []any{}})
			return
		}
		ready, results := dep.Readiness.Ready(r.Context())
		if ready {
			response.JSON(w, r, http.StatusOK, map[string]any{"status": "ready", "checks": results})
			return
		}
		response.JSON(w, r, http.StatusServiceUnavailable, map[string]any{"status": "unready", "checks": results})
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.With(authLimiter).Post("/register", dep.AuthHandler.Register)
			r.With(authLimiter).Post("/login", dep.AuthHandler.Login)
		})

		r.Route("/profile", func(r chi.Router) {
			r.Use(authGate)
			r.Get("/", dep.ProfileHandler.Get)
			r.Put("/", dep.ProfileHandler.Update)
			r.Post("/change-password", dep.ProfileHandler.ChangePassword)
		})

		r.Route("/items", func(r chi.Router) {
			r.Use(authGate)
			r.Post("/", dep.ItemHandler.Create)
			r.Get("/", dep.ItemHandler.List)
			r.Get("/{id}", dep.ItemHandler.GetByID)
			r.Put("/{id}", dep.ItemHandler.Update)
			r.Delete("/{id}", dep.ItemHandler.Delete)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed")
	})

	var h http.Handler = r
	if dep.EnableOTelHTTP {
		h = otelhttp.NewHandler(r, "http.server")
	}
	return h
}
