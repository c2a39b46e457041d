package services

import (
	"strings"

	"movies-api/internal/models"
)

// Matcher filters records by their category field
type Matcher struct{}

// NewMatcher creates a new matcher
func NewMatcher() MatcherInterface {
	return &Matcher{}
}

func (m *Matcher) MatchByTerms(records []models.Movie, terms models.TermSet) []models.Movie {
	return MatchByTerms(records, terms)
}

func (m *Matcher) MatchByCategory(records []models.Movie, category string) []models.Movie {
	return MatchByCategory(records, category)
}

// MatchByTerms returns, in catalog order, the records whose category contains
// at least one of terms. An empty term set matches nothing.
func MatchByTerms(records []models.Movie, terms models.TermSet) []models.Movie {
	matches := make([]models.Movie, 0)
	if terms.Len() == 0 {
		return matches
	}

	for _, record := range records {
		category := foldCase(record.Category)
		for term := range terms {
			if strings.Contains(category, term) {
				matches = append(matches, record)
				break
			}
		}
	}

	return matches
}

// MatchByCategory returns, in catalog order, the records whose category
// contains category case-insensitively. An empty category matches every record.
func MatchByCategory(records []models.Movie, category string) []models.Movie {
	matches := make([]models.Movie, 0)
	needle := foldCase(category)

	for _, record := range records {
		if strings.Contains(foldCase(record.Category), needle) {
			matches = append(matches, record)
		}
	}

	return matches
}
