// Package main provides the dicepass command-line tool to generate
// passphrases from a wordlist.
//
//	go run mod.go generate --wordlist words.txt
//	go run mod.go generate --wordlist eff.txt --format dicelist-eff \
//	  --count 6 --separator " " --no-repeat
//	go run mod.go generate --wordlist words.txt --lines 5 --quiet
//	go run mod.go check --wordlist eff.txt --format dicelist-eff
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dicepass/dicepass/cli"
	"github.com/dicepass/dicepass/cli/ucli"
	"github.com/dicepass/dicepass/passphrase/controller"
)

var builder cli.Builder = ucli.NewBuilder("dicepass", nil)
var printer io.Writer = os.Stderr
var exit = os.Exit

func main() {
	err := run(os.Args, controller.Initializer{})
	if err != nil {
		fmt.Fprintf(printer, "%v\n", err)
		exit(1)
	}
}

func run(args []string, inits ...cli.Initializer) error {
	for _, init := range inits {
		init.SetCommands(builder)
	}

	app := builder.Build()
	err := app.Run(args)
	if err != nil {
		return err
	}

	return nil
}
