package args

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Guerrilla-Interactive/spacetraders-cli/app"
	"github.com/Guerrilla-Interactive/spacetraders-cli/app/render"
	config "github.com/Guerrilla-Interactive/spacetraders-cli/internal"
)

const newConfigQuestion = "Are you sure you want to create a new config? (Existing config will be backed up)"

func init() {
	RegisterCommand(dumpConfigCommand())
	RegisterCommand(saveConfigCommand())
	RegisterCommand(newConfigCommand())
	RegisterCommand(copyTokenCommand())
	RegisterCommand(exitCommand())
	RegisterCommand(helpCommand())
}

func dumpConfigCommand() Command {
	return &command[struct{}]{
		name:        "dump_config",
		description: "Show current config",
		bind:        noParams,
		run: func(_ context.Context, rt *Runtime, _ struct{}) (string, error) {
			return render.Config(rt.Session.Config())
		},
	}
}

func saveConfigCommand() Command {
	return &command[struct{}]{
		name:        "save_config",
		description: "Save your config",
		bind:        noParams,
		run: func(_ context.Context, rt *Runtime, _ struct{}) (string, error) {
			if err := rt.Session.Save(); err != nil {
				return "", err
			}
			return "Saved Config", nil
		},
	}
}

type newConfigParams struct {
	Yes bool
}

func newConfigCommand() Command {
	return &command[newConfigParams]{
		name:        "new_config",
		description: "Backup the existing config and create a new one",
		flags: []FlagDef{
			{Name: "yes", ShortName: "y", Description: "Do not ask for confirmation"},
		},
		bind: func(v Values) (newConfigParams, error) {
			return newConfigParams{Yes: v["yes"] == "true"}, nil
		},
		run: runNewConfig,
	}
}

func runNewConfig(_ context.Context, rt *Runtime, p newConfigParams) (string, error) {
	if !p.Yes {
		ok, err := rt.Confirmer.Confirm(newConfigQuestion, false)
		if err != nil {
			return fmt.Sprintf("Failed to read prompt: %v", err), nil
		}
		if !ok {
			return "Existing config unchanged", nil
		}
	}

	s := rt.Session
	if err := s.Save(); err != nil {
		return "", err
	}
	backup, err := config.Rotate(s.ConfigPath(), rt.Now())
	if err != nil {
		s.Logger().Warn("rotate failed", "path", s.ConfigPath(), "err", err)
		return fmt.Sprintf("Failed to create new config: %v", err), nil
	}
	s.Replace(config.Default())
	s.Logger().Info("config rotated", "backup", backup)
	return fmt.Sprintf("Success. Previous config backed up to %s", backup), nil
}

func copyTokenCommand() Command {
	return &command[struct{}]{
		name:        "copy_token",
		description: "Copy the access token to the clipboard",
		bind:        noParams,
		run: func(_ context.Context, rt *Runtime, _ struct{}) (string, error) {
			token := rt.Session.Config().AccessToken
			if token == "" {
				return "No access token yet, register first", nil
			}
			if err := rt.Clipboard(token); err != nil {
				return fmt.Sprintf("Failed to copy token: %v", err), nil
			}
			return "Access token copied to clipboard", nil
		},
	}
}

func exitCommand() Command {
	return &command[struct{}]{
		name:        "exit",
		description: "Save the config and exit",
		bind:        noParams,
		run: func(context.Context, *Runtime, struct{}) (string, error) {
			return "", ErrQuit
		},
	}
}

type helpParams struct {
	Command string
}

func helpCommand() Command {
	return &command[helpParams]{
		name:        "help",
		description: "List commands, or describe one",
		args: []ArgDef{
			{Name: "command", Description: "Command to describe"},
		},
		bind: func(v Values) (helpParams, error) {
			name := strings.TrimSpace(v["command"])
			if name != "" && !CommandExists(name) {
				return helpParams{}, fmt.Errorf("unknown command %q", name)
			}
			return helpParams{Command: name}, nil
		},
		run: func(_ context.Context, _ *Runtime, p helpParams) (string, error) {
			if p.Command != "" {
				cmd, _ := GetCommand(p.Command)
				return CommandHelp(cmd), nil
			}
			return Overview(), nil
		},
	}
}

// Overview lists every command with its description.
func Overview() string {
	var b strings.Builder
	b.WriteString(app.TitleStyle.Render("Commands"))
	for _, cmd := range GetAllCommands() {
		fmt.Fprintf(&b, "\n  %-18s %s", cmd.Name(), cmd.Description())
	}
	b.WriteString("\n\n")
	b.WriteString(app.HelpStyle.Render("Run 'help <command>' or '<command> --help' for details."))
	return b.String()
}

// IsUsage reports whether err is bad input the REPL should only print.
func IsUsage(err error) bool {
	var usage *UsageError
	return errors.As(err, &usage)
}
