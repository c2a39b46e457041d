package services

import (
	"context"
	"time"

	"movies-api/internal/models"
)

// CatalogInterface is the read side of the movie catalog
type CatalogInterface interface {
	All() ([]models.Movie, error)
	Movies() []models.Movie
	FindByID(id string) (models.Movie, bool)
	Len() int
	Available() bool
	LoadedAt() time.Time
}

// SynonymExpanderInterface maps a word to the set of its synonyms
type SynonymExpanderInterface interface {
	Expand(word string) models.TermSet
}

// TokenizerInterface splits free text into word tokens
type TokenizerInterface interface {
	Tokenize(text string) []string
}

// QueryExpanderInterface turns a free-text query into search terms
type QueryExpanderInterface interface {
	ExpandQuery(query string) models.TermSet
	Explain(query string) models.QueryExpansion
}

// MatcherInterface filters catalog records by category
type MatcherInterface interface {
	MatchByTerms(records []models.Movie, terms models.TermSet) []models.Movie
	MatchByCategory(records []models.Movie, category string) []models.Movie
}

// MovieQueryServiceInterface defines the read operations exposed over HTTP and the CLI
type MovieQueryServiceInterface interface {
	GetMovies(ctx context.Context) ([]models.Movie, error)
	GetMovie(ctx context.Context, id string) models.MovieLookup
	GetMoviesByCategory(ctx context.Context, category string) []models.Movie
	Chatbot(ctx context.Context, query string) models.ChatbotResult
}

// MetricsRecorderInterface provides metrics recording capabilities
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
	ObserveHistogram(name string, value float64, tags map[string]string)
}

// MovieLoggerInterface defines structured logging for catalog and query events
type MovieLoggerInterface interface {
	LogChatbotSearch(ctx context.Context, expansion models.QueryExpansion, resultsCount int, duration time.Duration)
	LogCategorySearch(ctx context.Context, category string, resultsCount int, duration time.Duration)
	LogMovieLookup(ctx context.Context, id string, found bool)
	LogCatalogUnavailable(ctx context.Context, operation string)
	LogCatalogLoaded(ctx context.Context, source string, count int, duration time.Duration)
	LogCatalogLoadFailed(ctx context.Context, source string, err error)
}
