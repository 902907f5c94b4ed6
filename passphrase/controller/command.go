// Package controller defines the cli commands of the passphrase generator.
package controller

import (
	"fmt"
	"os"
	"strings"

	"github.com/dicepass/dicepass/cli"
	"github.com/dicepass/dicepass/passphrase"
	"github.com/dicepass/dicepass/random"
	"github.com/dicepass/dicepass/wordlist"
)

// Initializer registers the generator commands on the application.
//
// - implements cli.Initializer
type Initializer struct {
}

// SetCommands implements cli.Initializer.
func (i Initializer) SetCommands(provider cli.Provider) {
	action := action{
		printer: os.Stdout,
		random:  random.CryptographicRandomGenerator{},
	}

	wordlistFlag := cli.StringFlag{
		Name:     "wordlist",
		Usage:    "path to the wordlist file",
		Required: true,
	}

	formatFlag := cli.StringFlag{
		Name: "format",
		Usage: fmt.Sprintf("format of the wordlist file: [ %s ]",
			strings.Join(wordlist.Formats(), " | ")),
		Value: string(wordlist.Plain),
	}

	generate := provider.SetCommand("generate")
	generate.SetDescription("generate passphrases from a wordlist")
	generate.SetFlags(wordlistFlag, formatFlag, cli.IntFlag{
		Name:  "count",
		Usage: "number of words per passphrase",
		Value: 4,
	}, cli.StringFlag{
		Name:  "separator",
		Usage: "string inserted between the words",
		Value: "-",
	}, cli.IntFlag{
		Name:  "lines",
		Usage: "number of passphrases to generate",
		Value: 1,
	}, cli.StringFlag{
		Name: "case",
		Usage: fmt.Sprintf("casing applied to every word: [ %s ]",
			strings.Join(passphrase.Casings(), " | ")),
		Value: string(passphrase.CasingAsIs),
	}, cli.BoolFlag{
		Name:  "no-repeat",
		Usage: "never pick the same word twice in a passphrase",
	}, cli.BoolFlag{
		Name:  "quiet",
		Usage: "suppress the pick trace",
	})
	generate.SetAction(action.generateAction)

	check := provider.SetCommand("check")
	check.SetDescription("validate a wordlist and count its usable words")
	check.SetFlags(wordlistFlag, formatFlag)
	check.SetAction(action.checkAction)
}
