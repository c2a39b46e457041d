package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:8000", cfg.Server.Address())
	assert.Equal(t, CatalogSourceCSV, cfg.Catalog.Source)
	assert.Equal(t, "Dataset/netflix_titles.csv", cfg.Catalog.CSVPath)
	assert.False(t, cfg.Catalog.Watch)
	assert.Zero(t, cfg.Catalog.RefreshInterval)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.False(t, cfg.Database.Seed)
	assert.Equal(t, slog.LevelInfo, cfg.Logging.Level)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowOrigins)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("CATALOG_SOURCE", "DATABASE")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "catalog")
	t.Setenv("SERVER_READ_TIMEOUT", "3s")
	t.Setenv("RATE_LIMIT_PER_SECOND", "7")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("LEXICON_PATH", "/etc/movies/lexicon.json")
	t.Setenv("CATALOG_REFRESH_INTERVAL", "5m")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, CatalogSourceDatabase, cfg.Catalog.Source)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 7, cfg.Security.RateLimitPerSecond)
	assert.Equal(t, slog.LevelDebug, cfg.Logging.Level)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowOrigins)
	assert.Equal(t, "/etc/movies/lexicon.json", cfg.Lexicon.Path)
	assert.Equal(t, 5*time.Minute, cfg.Catalog.RefreshInterval)
	assert.Equal(t, "host=db port=5432 user=movies_user password=movies_password dbname=catalog sslmode=disable", cfg.Database.DSN())
}

func TestLoad_InvalidValuesFallBackToDefaults(t *testing.T) {
	t.Setenv("SERVER_READ_TIMEOUT", "soon")
	t.Setenv("RATE_LIMIT_BURST", "many")
	t.Setenv("CATALOG_WATCH", "maybe")
	t.Setenv("LOG_LEVEL", "chatty")

	cfg := Load()

	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 40, cfg.Security.RateLimitBurst)
	assert.False(t, cfg.Catalog.Watch)
	assert.Equal(t, slog.LevelInfo, cfg.Logging.Level)
}

func TestDatabaseConfig_SQLiteDSN(t *testing.T) {
	cfg := DatabaseConfig{Driver: DriverSQLite, SQLitePath: "/tmp/movies.db"}
	assert.Equal(t, "/tmp/movies.db", cfg.DSN())
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		Catalog:  CatalogConfig{Source: CatalogSourceCSV, Watch: true},
		Database: DatabaseConfig{Driver: DriverSQLite},
	}
	require.NoError(t, valid.Validate())

	badSource := valid
	badSource.Catalog.Source = "s3"
	assert.Error(t, badSource.Validate())

	badDriver := valid
	badDriver.Database.Driver = "mysql"
	assert.Error(t, badDriver.Validate())

	watchDatabase := valid
	watchDatabase.Catalog.Source = CatalogSourceDatabase
	assert.Error(t, watchDatabase.Validate())

	negativeRefresh := valid
	negativeRefresh.Catalog.RefreshInterval = -time.Second
	assert.Error(t, negativeRefresh.Validate())
}
