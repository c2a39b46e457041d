// Package lexicon provides a small WordNet-shaped lexical database used for
// synonym expansion. A lexicon maps a word to its synsets; each synset groups
// lemma names that share a sense.
package lexicon

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/fluhus/gostuff/nlp/wordnet"
)

// Parts of speech, as WordNet abbreviates them
const (
	POSNoun         = "n"
	POSVerb         = "v"
	POSAdjective    = "a"
	POSAdjectiveSat = "s"
	POSAdverb       = "r"
)

var (
	ErrEmptyLexicon = errors.New("lexicon contains no entries")
	ErrInvalidPOS   = errors.New("invalid part of speech")
)

//go:embed data/synsets.json
var embeddedSynsets []byte

// Synset is one sense of a word and the lemma names that express it
type Synset struct {
	POS    string   `json:"pos"`
	Lemmas []string `json:"lemmas"`
}

// Lexicon is an immutable word → synsets index. Safe for concurrent reads.
type Lexicon struct {
	entries map[string][]Synset
}

// Load decodes a JSON lexicon of the form {"word": [{"pos": "n", "lemmas": [...]}]}.
// Keys are folded to lowercase; entries that collide after folding are merged.
// Every lemma of a synset is indexed as a word of its own, so a synonym that
// has no key ("youngster" under "kid") still finds the synset.
func Load(r io.Reader) (*Lexicon, error) {
	var raw map[string][]Synset
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode lexicon: %w", err)
	}

	words := make([]string, 0, len(raw))
	for word := range raw {
		words = append(words, word)
	}
	sort.Strings(words)

	b := newBuilder()
	for _, word := range words {
		key := foldWord(word)
		if key == "" {
			continue
		}
		for _, synset := range raw[word] {
			if !validPOS(synset.POS) {
				return nil, fmt.Errorf("%w %q for word %q", ErrInvalidPOS, synset.POS, word)
			}
			b.add(key, synset)
			b.addSynset(synset)
		}
	}

	return b.build()
}

// LoadFile reads a lexicon from a JSON file on disk
func LoadFile(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open lexicon %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

// LoadWordNet builds a lexicon from a WordNet dict directory, the one that
// holds data.noun, data.verb and friends.
func LoadWordNet(dir string) (*Lexicon, error) {
	wn, err := wordnet.Parse(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to parse wordnet dict %s: %w", dir, err)
	}

	ids := make([]string, 0, len(wn.Synset))
	for id := range wn.Synset {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	b := newBuilder()
	for _, id := range ids {
		ss := wn.Synset[id]
		if ss == nil || !validPOS(ss.Pos) {
			continue
		}
		b.addSynset(Synset{POS: ss.Pos, Lemmas: ss.Word})
	}

	return b.build()
}

// LoadPath loads a WordNet dict when path is a directory and a JSON lexicon otherwise
func LoadPath(path string) (*Lexicon, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open lexicon %s: %w", path, err)
	}
	if info.IsDir() {
		return LoadWordNet(path)
	}
	return LoadFile(path)
}

// builder indexes synsets by word, skipping synsets a word already has
type builder struct {
	entries map[string][]Synset
	seen    map[string]map[string]struct{}
}

func newBuilder() *builder {
	return &builder{
		entries: make(map[string][]Synset),
		seen:    make(map[string]map[string]struct{}),
	}
}

func (b *builder) add(word string, synset Synset) {
	id := synset.POS + "|" + strings.ToLower(strings.Join(synset.Lemmas, "|"))
	if _, ok := b.seen[word][id]; ok {
		return
	}
	if b.seen[word] == nil {
		b.seen[word] = make(map[string]struct{})
	}
	b.seen[word][id] = struct{}{}
	b.entries[word] = append(b.entries[word], synset)
}

// addSynset indexes synset under each of its lemmas
func (b *builder) addSynset(synset Synset) {
	for _, lemma := range synset.Lemmas {
		if word := foldWord(lemma); word != "" {
			b.add(word, synset)
		}
	}
}

func (b *builder) build() (*Lexicon, error) {
	if len(b.entries) == 0 {
		return nil, ErrEmptyLexicon
	}
	return &Lexicon{entries: b.entries}, nil
}

func foldWord(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

var loadDefault = sync.OnceValues(func() (*Lexicon, error) {
	return Load(bytes.NewReader(embeddedSynsets))
})

// Default returns the lexicon bundled with the binary. It panics if the
// bundled data is corrupt, which can only happen with a broken build.
func Default() *Lexicon {
	lex, err := loadDefault()
	if err != nil {
		panic(fmt.Sprintf("lexicon: bundled data is invalid: %v", err))
	}
	return lex
}

// Synsets returns every synset of word, followed by the synsets its base
// forms reach (e.g. "comedies" also yields the noun synsets of "comedy").
// Unknown words yield nil.
func (l *Lexicon) Synsets(word string) []Synset {
	word = foldWord(word)
	if word == "" {
		return nil
	}

	result := append([]Synset(nil), l.entries[word]...)
	visited := make(map[baseForm]struct{})
	for _, base := range baseForms(word) {
		if base.form == word {
			continue
		}
		if _, ok := visited[base]; ok {
			continue
		}
		visited[base] = struct{}{}

		for _, synset := range l.entries[base.form] {
			if reachable(synset.POS, base.pos) {
				result = append(result, synset)
			}
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}

// Len returns the number of distinct words in the lexicon
func (l *Lexicon) Len() int {
	return len(l.entries)
}

func validPOS(pos string) bool {
	switch pos {
	case POSNoun, POSVerb, POSAdjective, POSAdjectiveSat, POSAdverb:
		return true
	}
	return false
}
