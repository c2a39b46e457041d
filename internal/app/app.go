// Package app wires configuration into the catalog and query services shared
// by the HTTP server and moviectl.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"movies-api/internal/catalog"
	"movies-api/internal/config"
	"movies-api/internal/database"
	"movies-api/internal/lexicon"
	"movies-api/internal/repositories"
	"movies-api/internal/services"

	"github.com/prometheus/client_golang/prometheus"
)

// App holds the long-lived components built from a Config
type App struct {
	Config       *config.Config
	Logger       *slog.Logger
	DB           *database.DB
	Store        *catalog.Store
	Expander     services.QueryExpanderInterface
	QueryService services.MovieQueryServiceInterface
}

// New builds the component graph. It does not load the catalog; call
// LoadCatalog once the caller is ready to serve.
func New(cfg *config.Config, logger *slog.Logger, reg prometheus.Registerer) (*App, error) {
	lex, err := loadLexicon(cfg.Lexicon)
	if err != nil {
		return nil, err
	}

	a := &App{Config: cfg, Logger: logger}

	var source repositories.MovieSourceInterface
	switch cfg.Catalog.Source {
	case config.CatalogSourceDatabase:
		db, err := database.Initialize(&cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		a.DB = db
		source = catalog.NewGuardedSource(
			repositories.NewMovieRepository(db.DB),
			catalog.NewCircuitBreaker(catalog.DefaultCircuitBreakerConfig()),
		)
	default:
		source = repositories.NewCSVMovieSource(cfg.Catalog.CSVPath, logger)
	}

	movieLogger := services.NewMovieLogger(logger)
	metrics := services.NewPrometheusMetrics(reg)

	a.Store = catalog.NewStore(source, cfg.Catalog.Source, movieLogger, metrics)
	a.Expander = services.NewQueryExpander(
		services.NewSegmentTokenizer(),
		services.NewLexiconSynonymService(lex),
	)
	a.QueryService = services.NewMovieQueryService(a.Store, a.Expander, services.NewMatcher(), movieLogger, metrics)

	return a, nil
}

// LoadCatalog performs the initial load. A failure leaves the catalog
// unavailable; the server keeps running and answers 503 on /movies.
func (a *App) LoadCatalog(ctx context.Context) error {
	return a.Store.Load(ctx)
}

// Watcher returns a file watcher reloading the CSV catalog, or nil when
// watching is disabled or the catalog comes from the database.
func (a *App) Watcher() *catalog.Watcher {
	if !a.Config.Catalog.Watch || a.Config.Catalog.Source != config.CatalogSourceCSV {
		return nil
	}
	return catalog.NewWatcher(a.Store, a.Config.Catalog.CSVPath, a.Config.Catalog.WatchDebounce, a.Logger)
}

// Refresher returns a periodic reloader for the database catalog, or nil
// when CATALOG_REFRESH_INTERVAL is unset or the catalog comes from a CSV file.
func (a *App) Refresher() *catalog.Refresher {
	if a.Config.Catalog.RefreshInterval <= 0 || a.Config.Catalog.Source != config.CatalogSourceDatabase {
		return nil
	}
	return catalog.NewRefresher(a.Store, a.Config.Catalog.RefreshInterval)
}

// Close releases the database connection, if any
func (a *App) Close() error {
	if a.DB == nil {
		return nil
	}
	return a.DB.Close()
}

func loadLexicon(cfg config.LexiconConfig) (*lexicon.Lexicon, error) {
	if cfg.Path == "" {
		return lexicon.Default(), nil
	}
	lex, err := lexicon.LoadPath(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load lexicon %s: %w", cfg.Path, err)
	}
	return lex, nil
}
