package services

import (
	"strings"

	"github.com/blevesearch/segment"
)

var possessiveSuffixes = []string{"'s", "\u2019s"}

// SegmentTokenizer splits text on Unicode word boundaries (UAX #29).
// Whitespace and punctuation segments are dropped; tokens are case folded
// and a trailing possessive 's is removed from words.
type SegmentTokenizer struct{}

// NewSegmentTokenizer creates a new tokenizer
func NewSegmentTokenizer() TokenizerInterface {
	return &SegmentTokenizer{}
}

// Tokenize returns the word tokens of text in order, duplicates included
func (t *SegmentTokenizer) Tokenize(text string) []string {
	tokens := make([]string, 0)
	if text == "" {
		return tokens
	}

	segmenter := segment.NewWordSegmenterDirect([]byte(text))
	for segmenter.Segment() {
		switch segmenter.Type() {
		case segment.Letter:
			tokens = append(tokens, trimPossessive(foldCase(string(segmenter.Bytes()))))
		case segment.Number, segment.Kana, segment.Ideo:
			tokens = append(tokens, foldCase(string(segmenter.Bytes())))
		}
	}

	// Err is always nil when segmenting a complete in-memory buffer
	return tokens
}

func trimPossessive(token string) string {
	for _, suffix := range possessiveSuffixes {
		if base, ok := strings.CutSuffix(token, suffix); ok && base != "" {
			return base
		}
	}
	return token
}
