// Package fake provides fake implementations for interfaces commonly used in
// the repository.
// The implementations offer configuration to return errors when it is needed
// by the unit test and it is also possible to record the calls of functions
// of an object in some cases.
package fake

import (
	"golang.org/x/xerrors"
)

var fakeErr = xerrors.New("fake error")

// GetError returns the fake error.
func GetError() error {
	return fakeErr
}

// Err returns the message of the fake error wrapped with the given message.
func Err(msg string) string {
	return msg + ": fake error"
}

// Call is a tool to keep track of a function calls.
type Call struct {
	calls [][]interface{}
}

// Get returns the nth call ith parameter.
func (c *Call) Get(n, i int) interface{} {
	return c.calls[n][i]
}

// Len returns the number of calls.
func (c *Call) Len() int {
	return len(c.calls)
}

// Add adds a call to the list.
func (c *Call) Add(args ...interface{}) {
	c.calls = append(c.calls, args)
}

// Generator is a fake implementation of a random generator that cycles
// through a configured sequence of values.
//
// - implements random.Generator
type Generator struct {
	values []int
	next   int
	err    error

	// Calls records the bounds the generator was called with.
	Calls *Call
}

// NewGenerator returns a fake generator that returns the given values in
// order, starting over when they are exhausted. With no values it always
// returns zero.
func NewGenerator(values ...int) *Generator {
	return &Generator{
		values: values,
		Calls:  &Call{},
	}
}

// NewBadGenerator returns a fake generator that always fails.
func NewBadGenerator() *Generator {
	return &Generator{
		err:   fakeErr,
		Calls: &Call{},
	}
}

// Intn implements random.Generator. It returns the next configured value
// modulo the bound so that the result is always in range.
func (g *Generator) Intn(n int) (int, error) {
	g.Calls.Add(n)

	if g.err != nil {
		return 0, g.err
	}

	if len(g.values) == 0 {
		return 0, nil
	}

	value := g.values[g.next%len(g.values)]
	g.next++

	return value % n, nil
}

// FlagSet is a fake implementation of a flag set filled by the test.
//
// - implements cli.Flags
type FlagSet map[string]interface{}

// String implements cli.Flags.
func (fset FlagSet) String(name string) string {
	switch value := fset[name].(type) {
	case string:
		return value
	default:
		return ""
	}
}

// Int implements cli.Flags.
func (fset FlagSet) Int(name string) int {
	switch value := fset[name].(type) {
	case int:
		return value
	default:
		return 0
	}
}

// Bool implements cli.Flags.
func (fset FlagSet) Bool(name string) bool {
	switch value := fset[name].(type) {
	case bool:
		return value
	default:
		return false
	}
}

// Path implements cli.Flags.
func (fset FlagSet) Path(name string) string {
	return fset.String(name)
}
