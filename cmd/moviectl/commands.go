package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"movies-api/internal/app"
	"movies-api/internal/config"
	"movies-api/internal/database"
	"movies-api/internal/models"
	"movies-api/internal/repositories"

	"github.com/olekukonko/tablewriter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"
)

var (
	errMissingArgument = errors.New("missing argument")
	errMovieNotFound   = errors.New("movie not found")
)

// loadConfig reads the environment and applies global flag overrides
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg := config.Load()

	if source := c.String("source"); source != "" {
		cfg.Catalog.Source = strings.ToLower(source)
	}
	if path := c.String("csv"); path != "" {
		cfg.Catalog.CSVPath = path
	}
	if path := c.String("lexicon"); path != "" {
		cfg.Lexicon.Path = path
	}
	if path := c.String("sqlite-path"); path != "" {
		cfg.Database.SQLitePath = path
	}
	cfg.Catalog.Watch = false

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openCatalog builds the query stack and loads the catalog
func openCatalog(c *cli.Context) (*app.App, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	a, err := app.New(cfg, slog.Default(), prometheus.NewRegistry())
	if err != nil {
		return nil, err
	}

	if err := a.LoadCatalog(c.Context); err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return a, nil
}

// joinedArgs returns the positional arguments as one string. A quoted or
// unquoted multi-word query reads the same.
func joinedArgs(c *cli.Context, name string) (string, error) {
	if c.NArg() == 0 {
		return "", fmt.Errorf("%w: %s", errMissingArgument, name)
	}
	return strings.Join(c.Args().Slice(), " "), nil
}

func searchCommand(c *cli.Context) error {
	query, err := joinedArgs(c, "query")
	if err != nil {
		return err
	}

	a, err := openCatalog(c)
	if err != nil {
		return err
	}
	defer a.Close()

	result := a.QueryService.Chatbot(c.Context, query)

	fmt.Fprintln(c.App.Writer, result.StatusMessage)
	if result.HasResults() {
		renderMovies(c.App.Writer, result.Results)
	}
	return nil
}

func categoryCommand(c *cli.Context) error {
	category, err := joinedArgs(c, "category")
	if err != nil {
		return err
	}

	a, err := openCatalog(c)
	if err != nil {
		return err
	}
	defer a.Close()

	movies := a.QueryService.GetMoviesByCategory(c.Context, category)
	renderMovies(c.App.Writer, movies)
	fmt.Fprintf(c.App.Writer, "%d movies\n", len(movies))
	return nil
}

func getCommand(c *cli.Context) error {
	id := c.Args().First()
	if id == "" {
		return fmt.Errorf("%w: id", errMissingArgument)
	}

	a, err := openCatalog(c)
	if err != nil {
		return err
	}
	defer a.Close()

	lookup := a.QueryService.GetMovie(c.Context, id)
	if !lookup.Found {
		return fmt.Errorf("%w: %q", errMovieNotFound, id)
	}

	m := lookup.Movie
	renderTable(c.App.Writer, []string{"Field", "Value"}, [][]string{
		{"id", m.ID},
		{"title", m.Title},
		{"year", strconv.Itoa(m.Year)},
		{"category", m.Category},
		{"rating", m.Rating},
		{"overview", m.Overview},
	})
	return nil
}

// expandCommand does not need the catalog
func expandCommand(c *cli.Context) error {
	query, err := joinedArgs(c, "query")
	if err != nil {
		return err
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	// The source is never read, keep app.New off the database
	cfg.Catalog.Source = config.CatalogSourceCSV

	a, err := app.New(cfg, slog.Default(), prometheus.NewRegistry())
	if err != nil {
		return err
	}

	expansion := a.Expander.Explain(query)
	fmt.Fprintf(c.App.Writer, "tokens: %s\n", strings.Join(expansion.Tokens, ", "))

	rows := make([][]string, 0, expansion.Terms.Len())
	for _, term := range expansion.Terms.Sorted() {
		rows = append(rows, []string{term})
	}
	renderTable(c.App.Writer, []string{"Term"}, rows)
	return nil
}

func importCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	cfg.Database.AutoMigrate = true

	path := c.String("csv")
	movies, err := repositories.NewCSVMovieSource(path, slog.Default()).LoadMovies(c.Context)
	if err != nil {
		return err
	}

	db, err := database.Initialize(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	repo := repositories.NewMovieRepository(db.DB)
	if err := importMovies(c.Context, repo, movies); err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "Imported %d movies from %s into %s\n", len(movies), path, cfg.Database.Driver)
	return nil
}

func importMovies(ctx context.Context, repo repositories.MovieRepositoryInterface, movies []models.Movie) error {
	if len(movies) == 0 {
		return fmt.Errorf("no valid rows to import")
	}
	if err := repo.ReplaceAll(ctx, movies); err != nil {
		return fmt.Errorf("failed to import movies: %w", err)
	}
	return nil
}

func renderMovies(w io.Writer, movies []models.Movie) {
	rows := make([][]string, 0, len(movies))
	for _, m := range movies {
		rows = append(rows, []string{m.ID, m.Title, strconv.Itoa(m.Year), m.Category, m.Rating})
	}
	renderTable(w, []string{"ID", "Title", "Year", "Category", "Rating"}, rows)
}

// renderTable writes rows as an ASCII table
func renderTable(w io.Writer, headers []string, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.Header(headers)
	table.Bulk(rows)
	table.Render()
}
