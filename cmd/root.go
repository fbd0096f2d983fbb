// Package cmd wires the spacetraders binary: flags, logging, the config
// startup lifecycle and the REPL.
package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/Guerrilla-Interactive/spacetraders-cli/app"
	"github.com/Guerrilla-Interactive/spacetraders-cli/app/commands/args"
	"github.com/Guerrilla-Interactive/spacetraders-cli/app/repl"
	"github.com/Guerrilla-Interactive/spacetraders-cli/app/screens/prompt"
	config "github.com/Guerrilla-Interactive/spacetraders-cli/internal"
)

const exitingSuffix = "... Exiting"

// ExitError ends the process with Code after Message has been printed to
// stdout.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

func exitf(code int, format string, a ...any) *ExitError {
	msg := fmt.Sprintf(format, a...)
	if msg != "" {
		msg += "\n "
	}
	return &ExitError{Code: code, Message: msg + exitingSuffix}
}

// runner carries the process streams and the collaborators tests replace.
type runner struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	interactive *bool
	confirmer   prompt.Confirmer
	dial        app.GatewayFactory
	dispatch    []args.Option

	configFile string
	debug      bool
}

// RootOption configures the root command.
type RootOption func(*runner)

// WithIO replaces stdin, stdout and stderr.
func WithIO(in io.Reader, out, errOut io.Writer) RootOption {
	return func(r *runner) {
		r.in = in
		r.out = out
		r.errOut = errOut
	}
}

// WithInteractive forces terminal or line mode instead of detecting it.
func WithInteractive(on bool) RootOption {
	return func(r *runner) { r.interactive = &on }
}

// WithConfirmer replaces the yes/no prompt used at startup and by commands.
func WithConfirmer(c prompt.Confirmer) RootOption {
	return func(r *runner) { r.confirmer = c }
}

// WithGatewayFactory replaces how sessions reach the API.
func WithGatewayFactory(dial app.GatewayFactory) RootOption {
	return func(r *runner) { r.dial = dial }
}

// WithDispatcherOptions passes extra options to the command dispatcher.
func WithDispatcherOptions(opts ...args.Option) RootOption {
	return func(r *runner) { r.dispatch = append(r.dispatch, opts...) }
}

// NewRootCommand creates the root command for the CLI.
func NewRootCommand(version string, opts ...RootOption) *cobra.Command {
	r := &runner{in: os.Stdin, out: os.Stdout, errOut: os.Stderr}
	for _, opt := range opts {
		opt(r)
	}

	env, envErr := config.LoadEnv()
	if envErr != nil {
		env = config.Env{ConfigFile: config.DefaultFileName, LogLevel: "warn"}
	}

	rootCmd := &cobra.Command{
		Use:   "spacetraders",
		Short: "Interactive client for the SpaceTraders API",
		Long: `spacetraders is a REPL for the SpaceTraders API.

It loads your agent's token and call sign from a config file, lets you run
commands such as register, show_ships or accept_contract, and saves the
config when you exit.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if envErr != nil {
				return envErr
			}
			logger, closeLog, err := newLogger(env, r.debug, r.errOut)
			if err != nil {
				return err
			}
			defer closeLog()
			return r.run(cmd.Context(), logger)
		},
	}
	rootCmd.SetIn(r.in)
	rootCmd.SetOut(r.out)
	rootCmd.SetErr(r.errOut)

	rootCmd.Flags().StringVarP(&r.configFile, "config-file", "c", env.ConfigFile,
		"Path to the config file (.json, .yaml or .yml)")
	rootCmd.Flags().BoolVar(&r.debug, "debug", false,
		"Log debug output, including every API request")

	return rootCmd
}

// Execute runs the root command and exits the process on failure.
func Execute(version string) {
	rootCmd := NewRootCommand(version)
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stdout, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// newLogger builds the process logger. Output goes to stderr unless a log
// file is configured, so REPL output stays readable.
func newLogger(env config.Env, debug bool, stderr io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(env.LogLevel)))
	if err != nil {
		return nil, nil, fmt.Errorf("invalid SPACETRADERS_LOG_LEVEL %q: %w", env.LogLevel, err)
	}
	if debug {
		level = log.DebugLevel
	}

	var w io.Writer = stderr
	closeFn := func() {}
	if env.LogFile != "" {
		f, err := os.OpenFile(env.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "spacetraders",
		ReportTimestamp: true,
	})
	return logger, closeFn, nil
}

func (r *runner) isInteractive() bool {
	if r.interactive != nil {
		return *r.interactive
	}
	in, ok := r.in.(*os.File)
	if !ok {
		return false
	}
	out, ok := r.out.(*os.File)
	if !ok {
		return false
	}
	return isTTY(in.Fd()) && isTTY(out.Fd())
}

func isTTY(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// run is the startup lifecycle: load the config or offer to create one,
// then hand a session to the REPL.
func (r *runner) run(ctx context.Context, logger *log.Logger) error {
	interactive := r.isInteractive()
	reader := bufio.NewReader(r.in)

	confirmer := r.confirmer
	if confirmer == nil {
		if interactive {
			confirmer = prompt.TeaConfirmer{In: r.in, Out: r.out}
		} else {
			confirmer = prompt.LineConfirmer{In: reader, Out: r.out}
		}
	}

	path := r.configFile
	logger.Debug("loading config", "path", path)

	cfg, err := config.Load(path)
	switch {
	case errors.Is(err, config.ErrNotFound):
		return r.offerNewConfig(path, confirmer, logger)
	case err != nil:
		logger.Error("config load failed", "path", path, "err", err)
		return exitf(1, "Failed to read config file")
	}

	session := app.NewSession(cfg, path, r.dial, logger)
	dispatchOpts := append([]args.Option{args.WithConfirmer(confirmer)}, r.dispatch...)
	d := args.NewDispatcher(session, dispatchOpts...)

	if cfg.AccessToken == "" {
		fmt.Fprintln(r.out, app.HelpStyle.Render("No access token yet. Run 'register <callsign>' to create an agent."))
	}
	fmt.Fprintln(r.out, app.HelpStyle.Render("Type 'help' to list commands."))

	return repl.Run(ctx, d, repl.Options{
		Interactive: interactive,
		In:          reader,
		Out:         r.out,
	})
}

// offerNewConfig asks to create a default config. Either way the process
// stops: a fresh config has no token, so the user reviews it first.
func (r *runner) offerNewConfig(path string, confirmer prompt.Confirmer, logger *log.Logger) error {
	fmt.Fprintln(r.out, "Config file does not exist")

	ok, err := confirmer.Confirm("Do you want to create a new config file?", true)
	if err != nil {
		logger.Warn("confirmation failed", "err", err)
	}
	if err != nil || !ok {
		return exitf(1, "The %s config file is required", path)
	}

	if _, err := config.CreateDefault(path); err != nil {
		return err
	}
	fmt.Fprintf(r.out, "Creating new config file at %s\n", path)
	fmt.Fprintln(r.out, exitingSuffix)
	return nil
}
