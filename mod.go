// Package dicepass generates human-memorable passphrases by sampling random
// words from a wordlist file with a cryptographically secure random source.
//
// The repository is organized around the generation pipeline: the wordlist
// package loads and validates word files, the random package draws uniform
// indices from a secure source, and the passphrase package turns drawn
// indices into the final joined string. The cli packages provide the command
// line front end.
package dicepass

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Diagnostics and the pick trace go to stderr so that stdout only ever
// carries the generated passphrases.
var logout = zerolog.ConsoleWriter{
	Out:        os.Stderr,
	TimeFormat: time.RFC3339,
}

// Logger is a globally available logger instance.
var Logger = zerolog.New(logout).
	With().Timestamp().Logger().
	Level(zerolog.InfoLevel)
