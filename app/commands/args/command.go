package args

import (
	"context"
	"fmt"
	"strings"

	"github.com/Guerrilla-Interactive/spacetraders-cli/app"
)

// command adapts a typed handler to the Command interface. bind turns the
// resolved Values into P before run sees them, so handlers never read the
// untyped map.
type command[P any] struct {
	name        string
	description string
	args        []ArgDef
	flags       []FlagDef
	bind        func(Values) (P, error)
	run         func(ctx context.Context, rt *Runtime, p P) (string, error)
}

func (c *command[P]) Name() string             { return c.name }
func (c *command[P]) Description() string      { return c.description }
func (c *command[P]) ExpectedArgs() []ArgDef   { return c.args }
func (c *command[P]) ExpectedFlags() []FlagDef { return c.flags }

// Usage is derived from the argument definitions.
func (c *command[P]) Usage() string {
	parts := make([]string, 0, len(c.args)+len(c.flags))
	for _, a := range c.args {
		if a.Required {
			parts = append(parts, "<"+a.Name+">")
		} else {
			parts = append(parts, "["+a.Name+"]")
		}
	}
	for _, f := range c.flags {
		if f.HasValue {
			parts = append(parts, "[--"+f.Name+" <value>]")
		} else {
			parts = append(parts, "[--"+f.Name+"]")
		}
	}
	return strings.Join(parts, " ")
}

func (c *command[P]) Execute(ctx context.Context, rt *Runtime, values Values) (string, error) {
	p, err := c.bind(values)
	if err != nil {
		return "", &UsageError{Command: c.name, Err: err}
	}
	return c.run(ctx, rt, p)
}

// noParams binds commands that take no arguments.
func noParams(Values) (struct{}, error) {
	return struct{}{}, nil
}

// invoke calls the gateway once and formats the result. Failures become a
// message naming the operation; they never stop the REPL.
func invoke[T any](ctx context.Context, rt *Runtime, op string, call func(context.Context, app.Gateway) (T, error), format func(T) string) string {
	out, err := call(ctx, rt.Session.Gateway())
	if err != nil {
		rt.Session.Logger().Warn("remote call failed", "op", op, "err", err)
		return fmt.Sprintf("Failed to %s: %v", op, err)
	}
	return format(out)
}
