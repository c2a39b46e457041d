// Package catalog holds the in-memory movie catalog served by the query API.
//
// A Store publishes an immutable snapshot through an atomic pointer, so reads
// never block. Reload builds a new snapshot off to the side and swaps it in.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"movies-api/internal/models"
	"movies-api/internal/repositories"
	"movies-api/internal/services"
)

var (
	// ErrCatalogUnavailable is returned by All while no snapshot is loaded
	ErrCatalogUnavailable = models.ErrCatalogUnavailable
	ErrEmptyCatalog       = errors.New("catalog source returned no movies")
)

var _ services.CatalogInterface = (*Store)(nil)

type snapshot struct {
	movies   []models.Movie
	byID     map[string]int
	loadedAt time.Time
}

func newSnapshot(movies []models.Movie, loadedAt time.Time) *snapshot {
	byID := make(map[string]int, len(movies))
	for i, movie := range movies {
		if _, seen := byID[movie.ID]; !seen {
			byID[movie.ID] = i
		}
	}
	return &snapshot{
		movies:   movies,
		byID:     byID,
		loadedAt: loadedAt,
	}
}

// Store is the process-wide movie catalog
type Store struct {
	source     repositories.MovieSourceInterface
	sourceName string
	logger     services.MovieLoggerInterface
	metrics    services.MetricsRecorderInterface

	current  atomic.Pointer[snapshot]
	reloadMu sync.Mutex
	now      func() time.Time
}

// NewStore creates an empty, unavailable store reading from source
func NewStore(
	source repositories.MovieSourceInterface,
	sourceName string,
	logger services.MovieLoggerInterface,
	metrics services.MetricsRecorderInterface,
) *Store {
	return &Store{
		source:     source,
		sourceName: sourceName,
		logger:     logger,
		metrics:    metrics,
		now:        time.Now,
	}
}

// Load performs the initial catalog load. On failure the store stays
// unavailable and the error is returned for the caller to report.
func (s *Store) Load(ctx context.Context) error {
	return s.refresh(ctx)
}

// Reload replaces the snapshot with fresh data from the source. On failure
// the previous snapshot keeps serving.
func (s *Store) Reload(ctx context.Context) error {
	return s.refresh(ctx)
}

func (s *Store) refresh(ctx context.Context) error {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	start := s.now()

	movies, err := s.source.LoadMovies(ctx)
	if err == nil && len(movies) == 0 {
		err = ErrEmptyCatalog
	}
	if err != nil {
		err = fmt.Errorf("failed to load catalog from %s: %w", s.sourceName, err)
		s.logger.LogCatalogLoadFailed(ctx, s.sourceName, err)
		s.metrics.IncrementCounter(services.MetricCatalogReload, map[string]string{"status": "failed"})
		return err
	}

	s.current.Store(newSnapshot(movies, s.now()))

	duration := s.now().Sub(start)
	s.logger.LogCatalogLoaded(ctx, s.sourceName, len(movies), duration)
	s.metrics.IncrementCounter(services.MetricCatalogReload, map[string]string{"status": "success"})
	s.metrics.RecordProcessingTime(services.MetricCatalogLoadDuration, duration)
	s.metrics.RecordGauge(services.MetricCatalogMovies, float64(len(movies)), nil)

	return nil
}

// All returns every movie in catalog order, or ErrCatalogUnavailable.
// The slice is shared between callers and must not be modified.
func (s *Store) All() ([]models.Movie, error) {
	snap := s.current.Load()
	if snap == nil {
		return nil, ErrCatalogUnavailable
	}
	return snap.movies, nil
}

// Movies returns every movie in catalog order; empty while unavailable
func (s *Store) Movies() []models.Movie {
	snap := s.current.Load()
	if snap == nil {
		return []models.Movie{}
	}
	return snap.movies
}

// FindByID returns the first movie with exactly this id
func (s *Store) FindByID(id string) (models.Movie, bool) {
	snap := s.current.Load()
	if snap == nil {
		return models.Movie{}, false
	}

	idx, ok := snap.byID[id]
	if !ok {
		return models.Movie{}, false
	}
	return snap.movies[idx], true
}

func (s *Store) Len() int {
	snap := s.current.Load()
	if snap == nil {
		return 0
	}
	return len(snap.movies)
}

func (s *Store) Available() bool {
	return s.current.Load() != nil
}

// LoadedAt returns when the current snapshot was published; zero while unavailable
func (s *Store) LoadedAt() time.Time {
	snap := s.current.Load()
	if snap == nil {
		return time.Time{}
	}
	return snap.loadedAt
}

// SourceName returns the label of the catalog source
func (s *Store) SourceName() string {
	return s.sourceName
}
