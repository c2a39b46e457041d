package repositories

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"movies-api/internal/models"
)

var (
	ErrCatalogFileNotFound = errors.New("catalog file not found")
	ErrMissingIDColumn     = errors.New("catalog has no id column")
)

// Header names accepted for each movie field. The first alias is the one
// used by the Netflix titles dataset.
var columnAliases = map[string][]string{
	"id":       {"show_id", "id"},
	"title":    {"title"},
	"year":     {"release_year", "year"},
	"category": {"listed_in", "category"},
	"rating":   {"rating"},
	"overview": {"description", "overview"},
}

// CSVMovieSource reads the catalog from a CSV file
type CSVMovieSource struct {
	path   string
	logger *slog.Logger
}

// NewCSVMovieSource creates a catalog source backed by the CSV file at path
func NewCSVMovieSource(path string, logger *slog.Logger) *CSVMovieSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVMovieSource{
		path:   path,
		logger: logger,
	}
}

// Path returns the file the source reads from
func (s *CSVMovieSource) Path() string {
	return s.path
}

// LoadMovies reads and normalizes every row of the CSV file
func (s *CSVMovieSource) LoadMovies(ctx context.Context) ([]models.Movie, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrCatalogFileNotFound, s.path)
		}
		return nil, fmt.Errorf("failed to open catalog %s: %w", s.path, err)
	}
	defer f.Close()

	movies, err := ReadMovies(ctx, f, s.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", s.path, err)
	}

	return movies, nil
}

// ReadMovies parses CSV rows into movies. Missing columns and cells become
// empty values; rows without an id are skipped. Ordinals are assigned from 1
// in file order.
func ReadMovies(ctx context.Context, r io.Reader, logger *slog.Logger) ([]models.Movie, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return []models.Movie{}, nil
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns := mapColumns(header)
	if _, ok := columns["id"]; !ok {
		return nil, ErrMissingIDColumn
	}

	movies := make([]models.Movie, 0)
	line := 1
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		cell := func(field string) string {
			idx, ok := columns[field]
			if !ok || idx >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[idx])
		}

		movie := models.Movie{
			ID:       cell("id"),
			Title:    cell("title"),
			Year:     models.ParseYear(cell("year")),
			Category: cell("category"),
			Rating:   cell("rating"),
			Overview: cell("overview"),
		}

		if err := movie.Validate(); err != nil {
			if logger != nil {
				logger.Warn("Skipping catalog row", "line", line, "error", err)
			}
			continue
		}

		movie.Ordinal = len(movies) + 1
		movies = append(movies, movie)
	}

	return movies, nil
}

// mapColumns resolves field name → column index from the header row
func mapColumns(header []string) map[string]int {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, dup := positions[name]; !dup {
			positions[name] = i
		}
	}

	columns := make(map[string]int, len(columnAliases))
	for field, aliases := range columnAliases {
		for _, alias := range aliases {
			if idx, ok := positions[alias]; ok {
				columns[field] = idx
				break
			}
		}
	}
	return columns
}
