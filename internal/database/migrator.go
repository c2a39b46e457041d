package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const (
	defaultMigrationsPath = "db/migrations"
	defaultSeedsPath      = "db/seeds"
)

var errMigrationsDirMissing = errors.New("migrations directory not found")

// MigrationRunner applies the SQL migrations under db/migrations to a Postgres
// database and optionally loads the demo catalog from db/seeds.
type MigrationRunner struct {
	db             *sql.DB
	migrationsPath string
	seedsPath      string
	seed           bool
	attempts       int
	retryInterval  time.Duration
}

type MigrationOption func(*MigrationRunner)

// WithPaths overrides the migrations and seeds directories
func WithPaths(migrations, seeds string) MigrationOption {
	return func(mr *MigrationRunner) {
		mr.migrationsPath = migrations
		mr.seedsPath = seeds
	}
}

func WithSeeds(enabled bool) MigrationOption {
	return func(mr *MigrationRunner) {
		mr.seed = enabled
	}
}

// WithRetry sets how many pings WaitForDatabase makes and how long it sleeps between them
func WithRetry(attempts int, interval time.Duration) MigrationOption {
	return func(mr *MigrationRunner) {
		mr.attempts = attempts
		mr.retryInterval = interval
	}
}

func NewMigrationRunner(db *sql.DB, opts ...MigrationOption) *MigrationRunner {
	mr := &MigrationRunner{
		db:             db,
		migrationsPath: defaultMigrationsPath,
		seedsPath:      defaultSeedsPath,
		attempts:       30,
		retryInterval:  2 * time.Second,
	}
	for _, opt := range opts {
		opt(mr)
	}
	return mr
}

// WaitForDatabase pings until the database answers, the attempts run out or ctx ends
func (mr *MigrationRunner) WaitForDatabase(ctx context.Context) error {
	var lastErr error
	for attempt := 1; attempt <= mr.attempts; attempt++ {
		if lastErr = mr.db.PingContext(ctx); lastErr == nil {
			return nil
		}

		slog.Warn("database not ready",
			"event_type", "database_wait",
			"attempt", attempt,
			"max_attempts", mr.attempts,
			"error", lastErr,
		)

		if attempt == mr.attempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(mr.retryInterval):
		}
	}

	return fmt.Errorf("database not ready after %d attempts: %w", mr.attempts, lastErr)
}

func (mr *MigrationRunner) newMigrate() (*migrate.Migrate, error) {
	if _, err := os.Stat(mr.migrationsPath); err != nil {
		return nil, fmt.Errorf("%w: %s", errMigrationsDirMissing, mr.migrationsPath)
	}

	absPath, err := filepath.Abs(mr.migrationsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve migrations path: %w", err)
	}

	driver, err := postgres.WithInstance(mr.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+absPath, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}
	return m, nil
}

// RunMigrations applies pending migrations. A dirty schema is forced back to its
// recorded version first. A missing migrations directory is not an error.
func (mr *MigrationRunner) RunMigrations() error {
	m, err := mr.newMigrate()
	if errors.Is(err, errMigrationsDirMissing) {
		slog.Info("skipping migrations", "event_type", "migration", "reason", err.Error())
		return nil
	}
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	if dirty {
		slog.Warn("forcing dirty migration version", "event_type", "migration", "version", version)
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("failed to force version %d: %w", version, err)
		}
	}

	switch err := m.Up(); {
	case errors.Is(err, migrate.ErrNoChange):
		slog.Info("schema up to date", "event_type", "migration", "version", version)
		return nil
	case err != nil:
		return fmt.Errorf("migration failed: %w", err)
	}

	version, _, err = m.Version()
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	slog.Info("migrations applied", "event_type", "migration", "version", version)
	return nil
}

// LoadSeeds executes every *.sql file in the seeds directory in name order.
// A failing file is logged and skipped; an unreadable one aborts.
func (mr *MigrationRunner) LoadSeeds(ctx context.Context) error {
	if !mr.seed {
		return nil
	}

	files, err := filepath.Glob(filepath.Join(mr.seedsPath, "*.sql"))
	if err != nil {
		return fmt.Errorf("failed to list seed files: %w", err)
	}

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read seed file %s: %w", file, err)
		}

		if _, err := mr.db.ExecContext(ctx, string(content)); err != nil {
			slog.Warn("seed file failed", "event_type", "seed", "file", filepath.Base(file), "error", err)
			continue
		}
		slog.Info("seed file applied", "event_type", "seed", "file", filepath.Base(file))
	}
	return nil
}

// Status reports the current migration version and dirty flag
func (mr *MigrationRunner) Status() (version uint, dirty bool, err error) {
	m, err := mr.newMigrate()
	if err != nil {
		return 0, false, err
	}
	return m.Version()
}

// Migrate waits for the database, applies migrations and loads seeds.
// Seed failures are logged and do not fail the call.
func Migrate(ctx context.Context, db *sql.DB, opts ...MigrationOption) error {
	runner := NewMigrationRunner(db, opts...)

	if err := runner.WaitForDatabase(ctx); err != nil {
		return fmt.Errorf("database readiness check failed: %w", err)
	}

	if err := runner.RunMigrations(); err != nil {
		return fmt.Errorf("migration execution failed: %w", err)
	}

	if err := runner.LoadSeeds(ctx); err != nil {
		slog.Warn("seed loading failed", "event_type", "seed", "error", err)
	}
	return nil
}
