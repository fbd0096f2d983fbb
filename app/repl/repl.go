// Package repl reads commands until exit or end of input and prints what
// they return.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Guerrilla-Interactive/spacetraders-cli/app"
	"github.com/Guerrilla-Interactive/spacetraders-cli/app/commands/args"
)

// DefaultPrefix is shown before every input line.
const DefaultPrefix = "spacetraders> "

// Options selects how input is read.
type Options struct {
	// Interactive uses the line editor with completion. It needs a terminal
	// on stdin and stdout.
	Interactive bool
	// In is read in line mode. Share it with anything else reading stdin.
	In *bufio.Reader
	// Out receives prompts and command output.
	Out    io.Writer
	Prefix string
}

func (o *Options) defaults() {
	if o.In == nil {
		o.In = bufio.NewReader(os.Stdin)
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Prefix == "" {
		o.Prefix = DefaultPrefix
	}
}

// Run reads and dispatches lines until the exit command or end of input,
// then shuts the session down so its config is saved. Bad input is printed
// and the loop continues; any other command error ends the loop and is
// returned without saving.
func Run(ctx context.Context, d *args.Dispatcher, opts Options) error {
	opts.defaults()
	session := d.Session()
	logger := session.Logger()
	logger.Debug("repl started", "interactive", opts.Interactive)

	var err error
	if opts.Interactive {
		err = runPrompt(ctx, d, opts)
	} else {
		err = runLines(ctx, d, opts)
	}
	if err != nil {
		return err
	}
	return shutdown(session, opts.Out)
}

func shutdown(s *app.Session, out io.Writer) error {
	if err := s.Shutdown(); err != nil {
		return err
	}
	fmt.Fprintln(out, app.PathStyle.Render("Config saved to "+s.ConfigPath()))
	return nil
}

// execute runs one line and prints its result. It reports whether the loop
// should stop.
func execute(ctx context.Context, d *args.Dispatcher, line string, out io.Writer) (bool, error) {
	result, err := d.Dispatch(ctx, line)
	switch {
	case errors.Is(err, args.ErrQuit):
		return true, nil
	case args.IsUsage(err):
		fmt.Fprintln(out, app.ErrorStyle.Render("Error: "+err.Error()))
		return false, nil
	case err != nil:
		return true, err
	}
	if result != "" {
		fmt.Fprintln(out, result)
	}
	return false, nil
}

func runLines(ctx context.Context, d *args.Dispatcher, opts Options) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		fmt.Fprint(opts.Out, opts.Prefix)

		line, readErr := opts.In.ReadString('\n')
		if line != "" {
			stop, err := execute(ctx, d, line, opts.Out)
			if err != nil {
				return err
			}
			if stop {
				return nil
			}
		}
		if errors.Is(readErr, io.EOF) {
			fmt.Fprintln(opts.Out)
			return nil
		}
		if readErr != nil {
			return fmt.Errorf("read input: %w", readErr)
		}
	}
}
