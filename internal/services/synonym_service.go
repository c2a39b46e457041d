package services

import (
	"movies-api/internal/lexicon"
	"movies-api/internal/models"
)

// LexiconSynonymService expands a word to the lemma names of every sense the
// lexicon knows for it
type LexiconSynonymService struct {
	lexicon *lexicon.Lexicon
}

// NewLexiconSynonymService creates a synonym expander backed by lex
func NewLexiconSynonymService(lex *lexicon.Lexicon) SynonymExpanderInterface {
	return &LexiconSynonymService{
		lexicon: lex,
	}
}

// Expand returns the lowercased lemmas of all synsets of word. Unknown words
// yield an empty set.
func (s *LexiconSynonymService) Expand(word string) models.TermSet {
	synonyms := models.NewTermSet()

	for _, synset := range s.lexicon.Synsets(word) {
		for _, lemma := range synset.Lemmas {
			synonyms.Add(foldCase(lemma))
		}
	}

	return synonyms
}
