// Package passphrase assembles sampled words into the final passphrase.
//
// A generator binds a wordlist to a random source. Each call draws the
// requested number of word indices, applies the casing rule to every word
// and joins them with the separator. Unless the pick trace is disabled,
// every pick is logged so that a user can audit which entries of the list
// were selected.
package passphrase

import (
	"strings"

	"github.com/dicepass/dicepass"
	"github.com/dicepass/dicepass/random"
	"github.com/dicepass/dicepass/wordlist"
	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/xerrors"
)

// Casing is a per-word transform applied before joining.
type Casing string

const (
	// CasingAsIs keeps the words exactly as they appear in the wordlist.
	CasingAsIs Casing = "as-is"

	// CasingLower lowercases every word.
	CasingLower Casing = "lower"

	// CasingCapitalize capitalizes every word.
	CasingCapitalize Casing = "capitalize"
)

// Casings returns the names of the supported casing rules.
func Casings() []string {
	return []string{string(CasingAsIs), string(CasingLower), string(CasingCapitalize)}
}

// ParseCasing returns the casing rule matching the given name.
func ParseCasing(name string) (Casing, error) {
	switch Casing(name) {
	case CasingAsIs:
		return CasingAsIs, nil
	case CasingLower:
		return CasingLower, nil
	case CasingCapitalize:
		return CasingCapitalize, nil
	default:
		return "", xerrors.Errorf("unknown casing rule '%s'", name)
	}
}

// Apply returns the word transformed by the casing rule.
func (c Casing) Apply(word string) string {
	switch c {
	case CasingLower:
		return strings.ToLower(word)
	case CasingCapitalize:
		return cases.Title(language.Und).String(word)
	default:
		return word
	}
}

// Template gathers the parameters of one passphrase.
type Template struct {
	// Count is the number of words per passphrase.
	Count int

	// Separator is the string inserted between words.
	Separator string

	// Casing is the per-word transform.
	Casing Casing

	// Distinct requests sampling without replacement, so that no word
	// appears twice in the same passphrase.
	Distinct bool
}

// Generator creates passphrases out of a wordlist and a random source.
type Generator struct {
	list   wordlist.List
	random random.Generator
	logger zerolog.Logger
}

// NewGenerator returns a generator that samples the given list with the
// given random source.
func NewGenerator(list wordlist.List, gen random.Generator) Generator {
	return Generator{
		list:   list,
		random: gen,
		logger: dicepass.Logger,
	}
}

// WithLogger returns a shallow copy of the generator that uses the given
// logger for the pick trace.
func (g Generator) WithLogger(logger zerolog.Logger) Generator {
	g.logger = logger
	return g
}

// Generate draws the words of one passphrase and returns the joined result.
func (g Generator) Generate(tmpl Template) (string, error) {
	indices, err := random.Draw(g.random, tmpl.Count, len(g.list), tmpl.Distinct)
	if err != nil {
		return "", xerrors.Errorf("couldn't draw words: %w", err)
	}

	words := make([]string, len(indices))

	for i, index := range indices {
		word := g.list[index]

		g.logger.Info().
			Int("index", word.Index).
			Str("word", word.Value).
			Msgf("picked word %02d", i)

		words[i] = tmpl.Casing.Apply(word.Value)
	}

	return strings.Join(words, tmpl.Separator), nil
}
