package lexicon

import "strings"

// baseForm is a candidate lemma of an inflected word. pos is the part of
// speech whose inflection produced it; only synsets of that part of speech
// are reached through it.
type baseForm struct {
	form string
	pos  string
}

type detachment struct {
	pos         string
	suffix      string
	replacement string
}

// Regular inflection rules, per part of speech
var detachments = []detachment{
	{POSNoun, "s", ""},
	{POSNoun, "ses", "s"},
	{POSNoun, "xes", "x"},
	{POSNoun, "zes", "z"},
	{POSNoun, "ches", "ch"},
	{POSNoun, "shes", "sh"},
	{POSNoun, "men", "man"},
	{POSNoun, "ies", "y"},

	{POSVerb, "s", ""},
	{POSVerb, "ies", "y"},
	{POSVerb, "es", "e"},
	{POSVerb, "es", ""},
	{POSVerb, "ed", "e"},
	{POSVerb, "ed", ""},
	{POSVerb, "ing", "e"},
	{POSVerb, "ing", ""},

	{POSAdjective, "er", ""},
	{POSAdjective, "est", ""},
	{POSAdjective, "er", "e"},
	{POSAdjective, "est", "e"},
}

// Irregular forms no suffix rule reaches
var exceptions = map[string][]baseForm{
	"children": {{"child", POSNoun}},
	"people":   {{"person", POSNoun}},
	"women":    {{"woman", POSNoun}},
	"mice":     {{"mouse", POSNoun}},
	"geese":    {{"goose", POSNoun}},
	"teeth":    {{"tooth", POSNoun}},
	"feet":     {{"foot", POSNoun}},
	"lives":    {{"life", POSNoun}, {"live", POSVerb}},
	"wives":    {{"wife", POSNoun}},
	"wolves":   {{"wolf", POSNoun}},
	"thieves":  {{"thief", POSNoun}},
	"knives":   {{"knife", POSNoun}},
	"better":   {{"good", POSAdjective}, {"well", POSAdjective}},
	"best":     {{"good", POSAdjective}, {"well", POSAdjective}},
	"worse":    {{"bad", POSAdjective}},
	"worst":    {{"bad", POSAdjective}},
	"fought":   {{"fight", POSVerb}},
	"ran":      {{"run", POSVerb}},
}

// baseForms returns candidate base forms of word: its listed irregular
// forms followed by every regular detachment. Candidates are not checked
// against any lexicon.
func baseForms(word string) []baseForm {
	candidates := append([]baseForm(nil), exceptions[word]...)
	for _, d := range detachments {
		if !strings.HasSuffix(word, d.suffix) {
			continue
		}
		stem := strings.TrimSuffix(word, d.suffix)
		if stem == "" {
			continue
		}
		candidates = append(candidates, baseForm{form: stem + d.replacement, pos: d.pos})
	}
	return candidates
}

// reachable reports whether a synset of part of speech pos can be reached
// through a base form produced for want. Satellite adjectives count as adjectives.
func reachable(pos, want string) bool {
	if want == POSAdjective {
		return pos == POSAdjective || pos == POSAdjectiveSat
	}
	return pos == want
}
