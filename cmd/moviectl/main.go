// Package main implements moviectl, an offline client for the movie catalog:
// it runs the same queries as the API against the configured source and
// imports CSV catalogs into the database.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	_ = godotenv.Load()

	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "moviectl",
		Usage: "Query and import the movie catalog",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "warn",
			},
			&cli.StringFlag{
				Name:  "source",
				Usage: "Catalog source (csv or database), overrides CATALOG_SOURCE",
			},
			&cli.StringFlag{
				Name:  "csv",
				Usage: "Path to the catalog CSV, overrides CATALOG_CSV_PATH",
			},
			&cli.StringFlag{
				Name:  "lexicon",
				Usage: "JSON lexicon file or WordNet dict directory, overrides LEXICON_PATH",
			},
			&cli.StringFlag{
				Name:  "sqlite-path",
				Usage: "SQLite database file, overrides DB_SQLITE_PATH",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Run a chatbot search",
				ArgsUsage: "<query>",
				Action:    searchCommand,
			},
			{
				Name:      "category",
				Usage:     "List movies whose category contains the given text",
				ArgsUsage: "<category>",
				Action:    categoryCommand,
			},
			{
				Name:      "get",
				Usage:     "Show one movie by id",
				ArgsUsage: "<id>",
				Action:    getCommand,
			},
			{
				Name:      "expand",
				Usage:     "Show the tokens and search terms a query expands to",
				ArgsUsage: "<query>",
				Action:    expandCommand,
			},
			{
				Name:   "import",
				Usage:  "Load a CSV catalog into the database, replacing its contents",
				Action: importCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "csv",
						Usage:    "Path to the CSV file to import",
						Required: true,
					},
				},
			},
		},
	}
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
