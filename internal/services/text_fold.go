package services

import (
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// A cases.Caser keeps state between calls, so each goroutine borrows its own.
var lowerCasers = sync.Pool{
	New: func() any {
		caser := cases.Lower(language.Und)
		return &caser
	},
}

// foldCase lowercases s after NFC normalization. Queries and categories go
// through the same function so substring tests compare like with like.
func foldCase(s string) string {
	if s == "" {
		return s
	}

	caser := lowerCasers.Get().(*cases.Caser)
	defer lowerCasers.Put(caser)

	return caser.String(norm.NFC.String(s))
}
