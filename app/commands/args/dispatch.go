package args

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"

	"github.com/Guerrilla-Interactive/spacetraders-cli/app"
	"github.com/Guerrilla-Interactive/spacetraders-cli/app/cli"
	"github.com/Guerrilla-Interactive/spacetraders-cli/app/screens/prompt"
)

// ErrQuit is returned by the exit command. The REPL stops and shuts the
// session down when it sees it.
var ErrQuit = errors.New("quit")

// UsageError reports input that could not be resolved to a command call.
// The REPL prints it and keeps going.
type UsageError struct {
	Command string
	Err     error
}

func (e *UsageError) Error() string {
	if e.Command == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Command, e.Err)
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// Runtime is what a command may touch while it runs.
type Runtime struct {
	Session   *app.Session
	Confirmer prompt.Confirmer
	Clipboard func(string) error
	Now       func() time.Time
}

// Dispatcher resolves REPL lines to registered commands.
type Dispatcher struct {
	rt Runtime
}

// Option configures a Dispatcher.
type Option func(*Runtime)

// WithConfirmer sets the prompt used by commands that ask before acting.
func WithConfirmer(c prompt.Confirmer) Option {
	return func(rt *Runtime) { rt.Confirmer = c }
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write func(string) error) Option {
	return func(rt *Runtime) { rt.Clipboard = write }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(rt *Runtime) { rt.Now = now }
}

// NewDispatcher builds a Dispatcher for session.
func NewDispatcher(session *app.Session, opts ...Option) *Dispatcher {
	rt := Runtime{
		Session:   session,
		Confirmer: prompt.TeaConfirmer{},
		Clipboard: clipboard.WriteAll,
		Now:       time.Now,
	}
	for _, opt := range opts {
		opt(&rt)
	}
	return &Dispatcher{rt: rt}
}

// Session returns the session commands run against.
func (d *Dispatcher) Session() *app.Session {
	return d.rt.Session
}

// Dispatch runs one line of input. Blank lines do nothing. The error is a
// *UsageError for bad input, ErrQuit for exit, or a failure the session
// cannot continue after.
func (d *Dispatcher) Dispatch(ctx context.Context, line string) (string, error) {
	if strings.TrimSpace(line) == "" {
		return "", nil
	}

	parsed, err := cli.ParseLine(line, Registry{})
	if err != nil {
		return "", &UsageError{Err: err}
	}
	if parsed.CommandName == "" {
		name := ""
		if len(parsed.RawArgs) > 0 {
			name = parsed.RawArgs[0]
		}
		return "", &UsageError{Err: fmt.Errorf("unknown command %q, type help to list commands", name)}
	}

	cmd, _ := GetCommand(parsed.CommandName)
	if parsed.HelpRequested {
		return CommandHelp(cmd), nil
	}
	if len(parsed.Errors) > 0 {
		return "", &UsageError{Command: cmd.Name(), Err: errors.Join(parsed.Errors...)}
	}

	values, err := Resolve(cmd, parsed)
	if err != nil {
		return "", &UsageError{Command: cmd.Name(), Err: err}
	}

	d.rt.Session.Logger().Debug("dispatch", "command", cmd.Name())
	return cmd.Execute(ctx, &d.rt, values)
}

// Resolve matches parsed positional arguments and flags against the command
// definition. Arguments can be given by position or as --name value.
func Resolve(cmd Command, parsed cli.CommandArgs) (Values, error) {
	argDefs := cmd.ExpectedArgs()
	flagDefs := cmd.ExpectedFlags()
	values := make(Values, len(argDefs)+len(flagDefs))

	if len(parsed.Variables) > len(argDefs) {
		return nil, fmt.Errorf("too many arguments, usage: %s", usageLine(cmd))
	}

	byName := make(map[string]ArgDef, len(argDefs))
	for _, def := range argDefs {
		byName[def.Name] = def
	}
	flagByName := make(map[string]FlagDef, len(flagDefs))
	for _, def := range flagDefs {
		flagByName[def.Name] = def
		if def.ShortName != "" {
			flagByName[def.ShortName] = def
		}
	}

	for i, v := range parsed.Variables {
		values[argDefs[i].Name] = v
	}

	for name, v := range parsed.Flags {
		if _, ok := byName[name]; ok {
			if _, dup := values[name]; dup {
				return nil, fmt.Errorf("argument %s given twice", name)
			}
			values[name] = v
			continue
		}
		def, ok := flagByName[name]
		if !ok {
			return nil, fmt.Errorf("unknown flag --%s", name)
		}
		if !def.HasValue {
			return nil, fmt.Errorf("flag --%s does not take a value", def.Name)
		}
		values[def.Name] = v
	}

	for name := range parsed.BoolFlags {
		def, ok := flagByName[name]
		if !ok {
			if _, isArg := byName[name]; isArg {
				return nil, fmt.Errorf("argument --%s needs a value", name)
			}
			return nil, fmt.Errorf("unknown flag --%s", name)
		}
		if def.HasValue {
			return nil, fmt.Errorf("flag --%s needs a value", def.Name)
		}
		values[def.Name] = "true"
	}

	for _, def := range argDefs {
		if _, ok := values[def.Name]; ok {
			continue
		}
		if def.Required {
			return nil, fmt.Errorf("missing required argument: %s, usage: %s", def.Name, usageLine(cmd))
		}
		values[def.Name] = def.Default
	}
	for _, def := range flagDefs {
		if _, ok := values[def.Name]; !ok && def.Required {
			return nil, fmt.Errorf("missing required flag --%s", def.Name)
		}
	}

	return values, nil
}

func usageLine(cmd Command) string {
	if u := cmd.Usage(); u != "" {
		return cmd.Name() + " " + u
	}
	return cmd.Name()
}

// CommandHelp describes one command with its arguments and flags.
func CommandHelp(cmd Command) string {
	var b strings.Builder
	b.WriteString(app.TitleStyle.Render(usageLine(cmd)))
	b.WriteString("\n  ")
	b.WriteString(cmd.Description())
	if args := cmd.ExpectedArgs(); len(args) > 0 {
		b.WriteString("\n\nArguments:")
		for _, a := range args {
			line := fmt.Sprintf("\n  %-12s %s", a.Name, a.Description)
			if !a.Required && a.Default != "" {
				line += app.HelpStyle.Render(fmt.Sprintf(" (default %s)", a.Default))
			}
			b.WriteString(line)
		}
	}
	if flags := cmd.ExpectedFlags(); len(flags) > 0 {
		b.WriteString("\n\nFlags:")
		for _, f := range flags {
			name := "--" + f.Name
			if f.ShortName != "" {
				name = "-" + f.ShortName + ", " + name
			}
			b.WriteString(fmt.Sprintf("\n  %-12s %s", name, f.Description))
		}
	}
	return b.String()
}
