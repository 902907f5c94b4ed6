package controller

import (
	"fmt"
	"io"

	"github.com/dicepass/dicepass/cli"
	"github.com/dicepass/dicepass/passphrase"
	"github.com/dicepass/dicepass/random"
	"github.com/dicepass/dicepass/wordlist"
	"github.com/rs/zerolog"
	"golang.org/x/xerrors"
)

// action defines the different cli actions of the generator commands.
// Defining the printer and the random source as fields helps in testing the
// commands.
type action struct {
	printer io.Writer
	random  random.Generator
}

func (a action) generateAction(flags cli.Flags) error {
	count := flags.Int("count")
	if count < 1 {
		return xerrors.Errorf("number of words must be positive but found "+
			"%d: %w", count, random.ErrInvalidArgument)
	}

	lines := flags.Int("lines")
	if lines < 1 {
		return xerrors.Errorf("number of lines must be positive but found "+
			"%d: %w", lines, random.ErrInvalidArgument)
	}

	casing, err := passphrase.ParseCasing(flags.String("case"))
	if err != nil {
		return xerrors.Errorf("couldn't parse casing: %v", err)
	}

	list, err := a.loadList(flags)
	if err != nil {
		return err
	}

	gen := passphrase.NewGenerator(list, a.random)
	if flags.Bool("quiet") {
		gen = gen.WithLogger(zerolog.Nop())
	}

	tmpl := passphrase.Template{
		Count:     count,
		Separator: flags.String("separator"),
		Casing:    casing,
		Distinct:  flags.Bool("no-repeat"),
	}

	for i := 0; i < lines; i++ {
		result, err := gen.Generate(tmpl)
		if err != nil {
			return xerrors.Errorf("couldn't generate passphrase: %w", err)
		}

		fmt.Fprintln(a.printer, result)
	}

	return nil
}

func (a action) checkAction(flags cli.Flags) error {
	list, err := a.loadList(flags)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.printer, "%s: %d words\n", flags.Path("wordlist"), len(list))

	return nil
}

func (a action) loadList(flags cli.Flags) (wordlist.List, error) {
	format, err := wordlist.ParseFormat(flags.String("format"))
	if err != nil {
		return nil, xerrors.Errorf("couldn't parse format: %v", err)
	}

	list, err := wordlist.Load(flags.Path("wordlist"), format)
	if err != nil {
		return nil, xerrors.Errorf("couldn't load wordlist: %w", err)
	}

	return list, nil
}
