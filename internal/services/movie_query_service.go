package services

import (
	"context"
	"time"

	"movies-api/internal/models"
)

// Query operations, used as metric and log labels
const (
	OperationList       = "list"
	OperationGet        = "get"
	OperationByCategory = "by_category"
	OperationChatbot    = "chatbot"
)

// MovieQueryService answers catalog queries. It holds no mutable state and is
// safe for concurrent use.
type MovieQueryService struct {
	catalog  CatalogInterface
	expander QueryExpanderInterface
	matcher  MatcherInterface
	logger   MovieLoggerInterface
	metrics  MetricsRecorderInterface
}

// NewMovieQueryService creates a new movie query service
func NewMovieQueryService(
	catalog CatalogInterface,
	expander QueryExpanderInterface,
	matcher MatcherInterface,
	logger MovieLoggerInterface,
	metrics MetricsRecorderInterface,
) MovieQueryServiceInterface {
	return &MovieQueryService{
		catalog:  catalog,
		expander: expander,
		matcher:  matcher,
		logger:   logger,
		metrics:  metrics,
	}
}

// GetMovies returns the whole catalog, or models.ErrCatalogUnavailable when
// no catalog is loaded. The returned slice is shared and must not be modified.
func (s *MovieQueryService) GetMovies(ctx context.Context) ([]models.Movie, error) {
	start := time.Now()

	movies, err := s.catalog.All()
	if err != nil {
		s.logger.LogCatalogUnavailable(ctx, OperationList)
		s.record(OperationList, "unavailable", start, 0)
		return nil, err
	}

	s.record(OperationList, "success", start, len(movies))
	return movies, nil
}

// GetMovie looks a movie up by exact id
func (s *MovieQueryService) GetMovie(ctx context.Context, id string) models.MovieLookup {
	start := time.Now()

	movie, ok := s.catalog.FindByID(id)
	s.logger.LogMovieLookup(ctx, id, ok)

	if !ok {
		s.record(OperationGet, "not_found", start, 0)
		return models.MovieNotFound()
	}

	s.record(OperationGet, "found", start, 1)
	return models.FoundMovie(movie)
}

// GetMoviesByCategory returns the movies whose category contains category
func (s *MovieQueryService) GetMoviesByCategory(ctx context.Context, category string) []models.Movie {
	start := time.Now()

	records := s.snapshot(ctx, OperationByCategory)
	results := s.matcher.MatchByCategory(records, category)

	duration := time.Since(start)
	s.logger.LogCategorySearch(ctx, category, len(results), duration)
	s.record(OperationByCategory, "success", start, len(results))

	return results
}

// Chatbot expands query through the synonym lexicon and returns the movies
// whose category contains any expanded term
func (s *MovieQueryService) Chatbot(ctx context.Context, query string) models.ChatbotResult {
	start := time.Now()

	expansion := s.expander.Explain(query)
	records := s.snapshot(ctx, OperationChatbot)
	results := s.matcher.MatchByTerms(records, expansion.Terms)

	duration := time.Since(start)
	s.logger.LogChatbotSearch(ctx, expansion, len(results), duration)
	s.metrics.ObserveHistogram(MetricChatbotExpansionTerms, float64(expansion.Terms.Len()), nil)
	s.record(OperationChatbot, "success", start, len(results))

	return models.NewChatbotResult(expansion, results)
}

// snapshot returns the current records, logging when the catalog is unavailable
func (s *MovieQueryService) snapshot(ctx context.Context, operation string) []models.Movie {
	if !s.catalog.Available() {
		s.logger.LogCatalogUnavailable(ctx, operation)
	}
	return s.catalog.Movies()
}

func (s *MovieQueryService) record(operation, status string, start time.Time, results int) {
	s.metrics.IncrementCounter(MetricMovieQuery, map[string]string{
		"operation": operation,
		"status":    status,
	})

	tags := map[string]string{"operation": operation}
	s.metrics.ObserveHistogram(MetricMovieQueryDuration, time.Since(start).Seconds(), tags)
	s.metrics.ObserveHistogram(MetricMovieQueryResults, float64(results), tags)
}
