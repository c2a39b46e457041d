package services

import (
	"fmt"

	"movies-api/internal/models"

	"github.com/brianvoe/gofakeit/v7"
)

// stubSynonyms is an in-memory SynonymExpanderInterface
type stubSynonyms map[string][]string

func (s stubSynonyms) Expand(word string) models.TermSet {
	return models.NewTermSet(s[word]...)
}

func scenarioCatalog() []models.Movie {
	return []models.Movie{
		{Ordinal: 1, ID: "1", Title: "Laugh Riot", Category: "Action, Comedy"},
		{Ordinal: 2, ID: "2", Title: "Heavy Hearts", Category: "Drama"},
	}
}

func fakeCatalog(n int) []models.Movie {
	movies := make([]models.Movie, n)
	for i := range movies {
		movies[i] = models.Movie{
			Ordinal:  i + 1,
			ID:       fmt.Sprintf("s%d", i+1),
			Title:    gofakeit.MovieName(),
			Year:     gofakeit.Year(),
			Category: gofakeit.MovieGenre() + ", " + gofakeit.MovieGenre(),
			Rating:   "TV-MA",
			Overview: gofakeit.Sentence(8),
		}
	}
	return movies
}
