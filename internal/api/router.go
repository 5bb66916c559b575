package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/lexbridge/legal-assistant/internal/api/handler"
	"github.com/lexbridge/legal-assistant/internal/api/middleware"
	"github.com/lexbridge/legal-assistant/internal/api/session"
	"github.com/lexbridge/legal-assistant/internal/core/ports"
	"github.com/lexbridge/legal-assistant/internal/infrastructure/http/handlers"
)

// Dependencies is everything the router needs to serve the API.
type Dependencies struct {
	Auth         ports.AuthService
	Translations ports.TranslationService
	Memorandums  ports.MemorandumService
	Settings     ports.SettingsService
	Admin        ports.AdminService
	Stats        ports.StatsService

	Sessions ports.SessionStore
	Codec    *session.Codec
	Log      zerolog.Logger

	// CORSOrigin enables credentialed CORS for a UI served from that origin.
	CORSOrigin string
	// EnableMetrics serves /metrics and records per-route request metrics.
	EnableMetrics bool
	// EnableDocs serves the OpenAPI UI under /swagger.
	EnableDocs bool
	// Readiness lists the dependencies pinged by /health/ready.
	Readiness map[string]handlers.Pinger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Log))
	if deps.CORSOrigin != "" {
		e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
			AllowOrigins:     []string{deps.CORSOrigin},
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
			AllowCredentials: true,
		}))
	}
	if deps.EnableMetrics {
		e.Use(echoprometheus.NewMiddleware("legal"))
		e.GET("/metrics", echoprometheus.NewHandler())
	}
	if deps.EnableDocs {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth, deps.Codec, deps.Log)
	translationHandler := handler.NewTranslationHandler(deps.Translations)
	memorandumHandler := handler.NewMemorandumHandler(deps.Memorandums)
	settingsHandler := handler.NewSettingsHandler(deps.Settings)
	adminHandler := handler.NewAdminHandler(deps.Admin)
	statsHandler := handler.NewStatsHandler(deps.Stats)

	api := e.Group("/api", middleware.Session(deps.Codec, deps.Sessions, deps.Log))
	authed := []echo.MiddlewareFunc{
		middleware.RequireAuthenticated(),
		middleware.AttachUser(deps.Auth, deps.Codec),
	}
	admin := []echo.MiddlewareFunc{
		middleware.RequireAuthenticated(),
		middleware.AttachUser(deps.Auth, deps.Codec),
		middleware.RequireAdmin(),
	}

	// --- Auth routes ---
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout, middleware.RequireAuthenticated())
	api.GET("/auth/user", authHandler.CurrentUser, authed...)

	// --- Translations ---
	api.GET("/translations", translationHandler.List, authed...)
	api.GET("/translations/:id", translationHandler.Get, authed...)
	api.POST("/translate", translationHandler.Translate, authed...)
	api.POST("/translations/:id/versions", translationHandler.Revise, authed...)
	api.DELETE("/translations/:id", translationHandler.Delete, authed...)

	// --- Memorandums ---
	api.GET("/memorandums", memorandumHandler.List, authed...)
	api.GET("/memorandums/:id", memorandumHandler.Get, authed...)
	api.POST("/memorandums/generate", memorandumHandler.Generate, authed...)
	api.POST("/memorandums/:id/versions", memorandumHandler.Revise, authed...)
	api.DELETE("/memorandums/:id", memorandumHandler.Delete, authed...)

	api.GET("/stats", statsHandler.Summary, authed...)

	// --- Settings (public read, admin write) ---
	api.GET("/settings", settingsHandler.Get)
	api.PUT("/settings", settingsHandler.Update, admin...)

	// --- Admin ---
	adminGroup := api.Group("/admin", admin...)
	adminGroup.GET("/users", adminHandler.Users)
	adminGroup.PATCH("/users/:id/role", adminHandler.UpdateRole)
	adminGroup.GET("/audit-logs", adminHandler.AuditLogs)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.Readiness)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	return e
}

// requestLogger writes one access log line per request through zerolog.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			switch {
			case v.Status >= http.StatusInternalServerError:
				evt = log.Error().Err(v.Error)
			case v.Error != nil:
				evt = log.Warn().Err(v.Error)
			}
			evt.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}
