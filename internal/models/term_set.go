package models

import "sort"

// TermSet is a set of lowercase search terms. Order is irrelevant; it is only
// used for membership and substring tests.
type TermSet map[string]struct{}

// NewTermSet creates a term set holding the given terms
func NewTermSet(terms ...string) TermSet {
	set := make(TermSet, len(terms))
	for _, term := range terms {
		set.Add(term)
	}
	return set
}

// Add inserts a term. Empty strings are ignored since they would match every category.
func (s TermSet) Add(term string) {
	if term == "" {
		return
	}
	s[term] = struct{}{}
}

// Union adds every term of other into s
func (s TermSet) Union(other TermSet) {
	for term := range other {
		s[term] = struct{}{}
	}
}

// Contains reports whether term is in the set
func (s TermSet) Contains(term string) bool {
	_, ok := s[term]
	return ok
}

// Len returns the number of terms
func (s TermSet) Len() int {
	return len(s)
}

// Sorted returns the terms in lexical order
func (s TermSet) Sorted() []string {
	terms := make([]string, 0, len(s))
	for term := range s {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}
