package controller

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dicepass/dicepass/internal/testing/fake"
	"github.com/dicepass/dicepass/random"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"
)

func TestGenerateAction(t *testing.T) {
	buf := new(bytes.Buffer)

	action := action{
		printer: buf,
		random:  fake.NewGenerator(0, 1, 2),
	}

	set := fake.FlagSet{
		"wordlist":  writeWordlist(t, "apple\nbanana\ncherry\n"),
		"format":    "plain",
		"count":     3,
		"separator": "-",
		"lines":     1,
		"case":      "as-is",
		"quiet":     true,
	}

	err := action.generateAction(set)
	require.NoError(t, err)
	require.Equal(t, "apple-banana-cherry\n", buf.String())
}

func TestGenerateAction_Lines(t *testing.T) {
	buf := new(bytes.Buffer)

	action := action{
		printer: buf,
		random:  random.CryptographicRandomGenerator{},
	}

	set := fake.FlagSet{
		"wordlist":  writeWordlist(t, "apple\nbanana\ncherry\n"),
		"format":    "plain",
		"count":     4,
		"separator": " ",
		"lines":     5,
		"case":      "lower",
		"quiet":     true,
	}

	err := action.generateAction(set)
	require.NoError(t, err)

	output := buf.String()
	require.True(t, strings.HasSuffix(output, "\n"))

	outlines := strings.Split(strings.TrimSuffix(output, "\n"), "\n")
	require.Len(t, outlines, 5)

	for _, line := range outlines {
		require.Len(t, strings.Split(line, " "), 4)
	}
}

func TestGenerateAction_NoRepeat(t *testing.T) {
	buf := new(bytes.Buffer)

	action := action{
		printer: buf,
		random:  random.CryptographicRandomGenerator{},
	}

	set := fake.FlagSet{
		"wordlist":  writeWordlist(t, "apple\nbanana\ncherry\n"),
		"format":    "plain",
		"count":     3,
		"separator": "-",
		"lines":     1,
		"case":      "as-is",
		"no-repeat": true,
		"quiet":     true,
	}

	err := action.generateAction(set)
	require.NoError(t, err)

	words := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "-")
	require.ElementsMatch(t, []string{"apple", "banana", "cherry"}, words)
}

func TestGenerateAction_TooManyNoRepeat(t *testing.T) {
	action := action{
		printer: io.Discard,
		random:  random.CryptographicRandomGenerator{},
	}

	set := fake.FlagSet{
		"wordlist":  writeWordlist(t, "apple\nbanana\ncherry\n"),
		"format":    "plain",
		"count":     4,
		"separator": "-",
		"lines":     1,
		"case":      "as-is",
		"no-repeat": true,
		"quiet":     true,
	}

	err := action.generateAction(set)
	require.True(t, xerrors.Is(err, random.ErrConfiguration))
}

func TestGenerateAction_BadArguments(t *testing.T) {
	action := action{
		printer: io.Discard,
		random:  fake.NewGenerator(),
	}

	err := action.generateAction(fake.FlagSet{"count": 0, "lines": 1})
	require.True(t, xerrors.Is(err, random.ErrInvalidArgument))
	require.EqualError(t, err,
		"number of words must be positive but found 0: invalid sampling argument")

	err = action.generateAction(fake.FlagSet{"count": 4, "lines": -1})
	require.True(t, xerrors.Is(err, random.ErrInvalidArgument))
	require.EqualError(t, err,
		"number of lines must be positive but found -1: invalid sampling argument")

	err = action.generateAction(fake.FlagSet{"count": 4, "lines": 1, "case": "upper"})
	require.EqualError(t, err, "couldn't parse casing: unknown casing rule 'upper'")
}

func TestGenerateAction_BadWordlist(t *testing.T) {
	action := action{
		printer: io.Discard,
		random:  fake.NewGenerator(),
	}

	set := fake.FlagSet{
		"wordlist": filepath.Join(t.TempDir(), "missing.txt"),
		"format":   "plain",
		"count":    4,
		"lines":    1,
		"case":     "as-is",
	}

	err := action.generateAction(set)
	require.Error(t, err)
	require.Contains(t, err.Error(), "couldn't load wordlist")

	set["format"] = "csv"
	err = action.generateAction(set)
	require.EqualError(t, err,
		"couldn't parse format: unknown wordlist format 'csv'")
}

func TestCheckAction(t *testing.T) {
	buf := new(bytes.Buffer)

	action := action{
		printer: buf,
	}

	path := writeWordlist(t, "apple\n\nbanana\n")

	set := fake.FlagSet{
		"wordlist": path,
		"format":   "plain",
	}

	err := action.checkAction(set)
	require.NoError(t, err)
	require.Equal(t, path+": 2 words\n", buf.String())
}

func TestCheckAction_EmptyWordlist(t *testing.T) {
	action := action{
		printer: io.Discard,
	}

	set := fake.FlagSet{
		"wordlist": writeWordlist(t, "\n\n"),
		"format":   "plain",
	}

	err := action.checkAction(set)
	require.Error(t, err)
	require.Contains(t, err.Error(), "wordlist contains no words")
}

// -----------------------------------------------------------------------------
// Utility functions

func writeWordlist(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "words.txt")

	err := os.WriteFile(path, []byte(content), 0o644)
	require.NoError(t, err)

	return path
}
