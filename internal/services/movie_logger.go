package services

import (
	"context"
	"log/slog"
	"time"

	"movies-api/internal/models"
)

// MovieLogger provides structured logging for catalog and query operations
type MovieLogger struct {
	logger *slog.Logger
}

// NewMovieLogger creates a new movie logger
func NewMovieLogger(logger *slog.Logger) MovieLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &MovieLogger{
		logger: logger,
	}
}

// LogChatbotSearch logs a completed chatbot search with its expansion
func (ml *MovieLogger) LogChatbotSearch(ctx context.Context, expansion models.QueryExpansion, resultsCount int, duration time.Duration) {
	ml.logger.InfoContext(ctx, "chatbot search completed",
		slog.String("event_type", "chatbot_search"),
		slog.String("query", expansion.Query),
		slog.Any("tokens", expansion.Tokens),
		slog.Int("expansion_terms", expansion.Terms.Len()),
		slog.Int("results_count", resultsCount),
		slog.Int64("duration_ms", duration.Milliseconds()),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

// LogCategorySearch logs a completed category search
func (ml *MovieLogger) LogCategorySearch(ctx context.Context, category string, resultsCount int, duration time.Duration) {
	ml.logger.InfoContext(ctx, "category search completed",
		slog.String("event_type", "category_search"),
		slog.String("category", category),
		slog.Int("results_count", resultsCount),
		slog.Int64("duration_ms", duration.Milliseconds()),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

// LogMovieLookup logs an id lookup
func (ml *MovieLogger) LogMovieLookup(ctx context.Context, id string, found bool) {
	ml.logger.DebugContext(ctx, "movie lookup",
		slog.String("event_type", "movie_lookup"),
		slog.String("movie_id", id),
		slog.Bool("found", found),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

// LogCatalogUnavailable logs a query served while no catalog is loaded
func (ml *MovieLogger) LogCatalogUnavailable(ctx context.Context, operation string) {
	ml.logger.WarnContext(ctx, "catalog unavailable",
		slog.String("event_type", "catalog_unavailable"),
		slog.String("operation", operation),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

// LogCatalogLoaded logs a successful catalog (re)load
func (ml *MovieLogger) LogCatalogLoaded(ctx context.Context, source string, count int, duration time.Duration) {
	ml.logger.InfoContext(ctx, "catalog loaded",
		slog.String("event_type", "catalog_loaded"),
		slog.String("source", source),
		slog.Int("movies", count),
		slog.Int64("duration_ms", duration.Milliseconds()),
		slog.Time("timestamp", time.Now()),
	)
}

// LogCatalogLoadFailed logs a failed catalog (re)load
func (ml *MovieLogger) LogCatalogLoadFailed(ctx context.Context, source string, err error) {
	ml.logger.ErrorContext(ctx, "catalog load failed",
		slog.String("event_type", "catalog_load_failed"),
		slog.String("source", source),
		slog.String("error", err.Error()),
		slog.Time("timestamp", time.Now()),
	)
}
