// Package server assembles the echo instance: middleware chain, routes and
// the error handler.
package server

import (
	"context"
	"net/http"

	"movies-api/internal/config"
	"movies-api/internal/handlers"
	"movies-api/internal/middleware"
	"movies-api/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// Dependencies are the collaborators the HTTP layer needs
type Dependencies struct {
	Config       *config.Config
	QueryService services.MovieQueryServiceInterface
	Catalog      services.CatalogInterface
	// SourceName is reported by /health ("csv" or "database")
	SourceName string
	// DB is nil unless the catalog is read from a database
	DB *gorm.DB
	// Gatherer backs /metrics. Nil means the default registry.
	Gatherer prometheus.Gatherer
}

// NewRouter builds the echo instance. Background work started here (rate
// limiter cleanup) stops when ctx is cancelled.
func NewRouter(ctx context.Context, deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()

	cfg := deps.Config

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, middleware.TraceIDHeader},
	}))
	e.Use(middleware.RateLimiter(ctx, middleware.RateLimiterConfig{
		RequestsPerSecond: cfg.Security.RateLimitPerSecond,
		Burst:             cfg.Security.RateLimitBurst,
	}))

	homeHandler := handlers.NewHomeHandler()
	movieHandler := handlers.NewMovieHandler(deps.QueryService)
	healthHandler := handlers.NewHealthCheckHandler(deps.Catalog, deps.SourceName, deps.DB)

	e.GET("/", homeHandler.Home)
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(metricsHandler(deps.Gatherer)))

	movies := e.Group("/movies")
	movies.GET("", movieHandler.ListMovies)
	// Static segments win over :id in echo's router
	movies.GET("/by_category/", movieHandler.GetMoviesByCategory)
	movies.GET("/by_category", movieHandler.GetMoviesByCategory)
	movies.GET("/:id", movieHandler.GetMovie)

	e.GET("/chatbot", movieHandler.Chatbot)

	return e
}

func metricsHandler(gatherer prometheus.Gatherer) http.Handler {
	if gatherer == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
