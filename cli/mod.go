// Package cli defines the Builder type, which allows one to build the
// command-line application in a modular way.
//
//	var builder Builder
//
//	cmd := builder.SetCommand("generate")
//	cmd.SetDescription("generate a passphrase")
//	cmd.SetAction(func(flags Flags) error {
//		fmt.Printf("%d words\n", flags.Int("count"))
//		return nil
//	})
//
//	builder.Build().Run(os.Args)
//
// Modules register their commands through the Initializer interface so that
// the main executable only assembles initializers.
package cli

// Builder is an application builder interface. One can set properties of an
// application then build it.
type Builder interface {
	Provider

	// Build returns the application.
	Build() Application
}

// Provider defines the primitive given to initializers to create their
// commands.
type Provider interface {
	// SetCommand creates a new command with the given name and returns its
	// builder.
	SetCommand(name string) CommandBuilder
}

// Initializer is the interface that a module can implement to set its own
// commands on the application.
type Initializer interface {
	// SetCommands if the function called by the builder to add the commands
	// of the module.
	SetCommands(Provider)
}

// Application is the main interface to run the CLI.
type Application interface {
	Run(arguments []string) error
}

// CommandBuilder is a command builder interface. One can set properties of a
// specific command like its name and description and what it should do when
// invoked.
type CommandBuilder interface {
	// SetDescription sets the value of the description for this command.
	SetDescription(value string)

	// SetFlags sets the flags for this command.
	SetFlags(...Flag)

	// SetAction sets the action for this command.
	SetAction(Action)
}

// Action is a function that will be executed when a command is invoked.
type Action func(Flags) error

// Flag is an identifier for the definition of the flags.
type Flag interface {
	Flag()
}

// Flags provides the primitives to an action to read the flags.
type Flags interface {
	String(name string) string

	Int(name string) int

	Bool(name string) bool

	Path(name string) string
}
