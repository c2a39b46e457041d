package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegmentTokenizer_Tokenize(t *testing.T) {
	tokenizer := NewSegmentTokenizer()

	testCases := []struct {
		name     string
		input    string
		expected []string
	}{
		{"simple words", "funny movies", []string{"funny", "movies"}},
		{"punctuation dropped", "Funny, scary... movies!", []string{"funny", "scary", "movies"}},
		{"numbers kept", "best of 2019", []string{"best", "of", "2019"}},
		{"duplicates kept", "war war", []string{"war", "war"}},
		{"accented words", "Películas de ACCIÓN", []string{"películas", "de", "acción"}},
		{"combining marks composed", "accio\u0301n", []string{"acción"}},
		{"possessive stripped", "kid's movies", []string{"kid", "movies"}},
		{"curly possessive stripped", "Kid\u2019s Movies", []string{"kid", "movies"}},
		{"inner apostrophe kept", "don't panic", []string{"don't", "panic"}},
		{"empty", "", []string{}},
		{"whitespace only", "  \t\n ", []string{}},
		{"punctuation only", "?!", []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tokenizer.Tokenize(tc.input))
		})
	}
}
