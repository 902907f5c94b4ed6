// Package wordlist loads the candidate words that passphrases are sampled
// from.
//
// A wordlist file is a plain UTF-8 text file. Two formats are supported: the
// plain format with one word per line, and the EFF dicelist format where
// every line starts with a dice roll followed by the word. Blank lines are
// ignored in both formats. Every word must be made of letters, digits,
// underscores or hyphens; anything else fails the load with a line-numbered
// error.
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"golang.org/x/xerrors"
)

// wordPattern is the set of characters a word can be made of.
var wordPattern = regexp.MustCompile(`^[\p{L}\p{N}_-]+$`)

// dicePattern matches a line of the EFF dicelist format, where the word
// follows a numeric dice roll.
var dicePattern = regexp.MustCompile(`^\d+\s*(\S*)$`)

// ErrEmptyList is returned when a wordlist file contains no usable words.
var ErrEmptyList = xerrors.New("wordlist contains no words")

// Format identifies the on-disk layout of a wordlist file.
type Format string

const (
	// Plain is the one-word-per-line format.
	Plain Format = "plain"

	// DicelistEFF is the EFF dicelist format where each line carries a dice
	// roll followed by the word.
	DicelistEFF Format = "dicelist-eff"
)

// Formats returns the names of the supported wordlist formats.
func Formats() []string {
	return []string{string(Plain), string(DicelistEFF)}
}

// ParseFormat returns the format matching the given name.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case Plain:
		return Plain, nil
	case DicelistEFF:
		return DicelistEFF, nil
	default:
		return "", xerrors.Errorf("unknown wordlist format '%s'", name)
	}
}

// Word is a single candidate word and its position in the wordlist.
type Word struct {
	Index int
	Value string
}

// List is an ordered sequence of candidate words. It is immutable after
// load.
type List []Word

// BadLineError is returned when a line of a wordlist file does not conform
// to the declared format.
//
// - implements error
type BadLineError struct {
	Path   string
	Format Format
	Line   int
	Reason string
}

// Error implements error. It returns a diagnostic pointing at the offending
// line.
func (e BadLineError) Error() string {
	return fmt.Sprintf("invalid wordlist not in %s format: %s (%s:%d)",
		e.Format, e.Reason, e.Path, e.Line)
}

// Load reads the file at the given path and parses it with the given format.
func Load(path string, format Format) (List, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, xerrors.Errorf("couldn't open wordlist: %w", err)
	}

	defer file.Close()

	list, err := format.Parse(file, path)
	if err != nil {
		return nil, err
	}

	return list, nil
}

// Parse reads words from the reader according to the format. The path is
// only used to annotate errors.
func (f Format) Parse(reader io.Reader, path string) (List, error) {
	list := List{}

	scanner := bufio.NewScanner(reader)

	lineno := 0
	for scanner.Scan() {
		lineno++

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		word, err := f.parseLine(line)
		if err != nil {
			return nil, BadLineError{
				Path:   path,
				Format: f,
				Line:   lineno,
				Reason: err.Error(),
			}
		}

		list = append(list, Word{Index: len(list), Value: word})
	}

	err := scanner.Err()
	if err != nil {
		return nil, xerrors.Errorf("couldn't read wordlist: %v", err)
	}

	if len(list) == 0 {
		return nil, xerrors.Errorf("'%s': %w", path, ErrEmptyList)
	}

	return list, nil
}

// parseLine extracts the word out of a single non-blank line.
func (f Format) parseLine(line string) (string, error) {
	word := line

	if f == DicelistEFF {
		match := dicePattern.FindStringSubmatch(line)
		if match == nil {
			return "", xerrors.New("not a valid line")
		}

		word = match[1]
	}

	if !wordPattern.MatchString(word) {
		return "", xerrors.Errorf("invalid word '%s'", word)
	}

	return word, nil
}
