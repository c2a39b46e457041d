package services

import (
	"movies-api/internal/models"
)

// QueryExpander turns free text into the set of terms matched against categories
type QueryExpander struct {
	tokenizer TokenizerInterface
	synonyms  SynonymExpanderInterface
}

// NewQueryExpander creates a query expander
func NewQueryExpander(tokenizer TokenizerInterface, synonyms SynonymExpanderInterface) QueryExpanderInterface {
	return &QueryExpander{
		tokenizer: tokenizer,
		synonyms:  synonyms,
	}
}

// ExpandQuery returns the query tokens together with all their synonyms.
// The original tokens are always part of the result.
func (e *QueryExpander) ExpandQuery(query string) models.TermSet {
	return e.Explain(query).Terms
}

// Explain expands query and keeps the intermediate tokens for diagnostics
func (e *QueryExpander) Explain(query string) models.QueryExpansion {
	tokens := e.tokenizer.Tokenize(foldCase(query))

	terms := models.NewTermSet()
	for _, token := range tokens {
		terms.Union(e.synonyms.Expand(token))
	}
	for _, token := range tokens {
		terms.Add(token)
	}

	return models.QueryExpansion{
		Query:  query,
		Tokens: tokens,
		Terms:  terms,
	}
}
