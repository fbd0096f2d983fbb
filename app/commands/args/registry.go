package args

import (
	"context"
	"fmt"
	"sort"

	"github.com/Guerrilla-Interactive/spacetraders-cli/app/cli"
)

// ArgDef is an alias for cli.ArgDef
type ArgDef = cli.ArgDef

// FlagDef is an alias for cli.FlagDef
type FlagDef = cli.FlagDef

// Values maps argument and flag names to their resolved text. Optional
// arguments that were not given hold their default.
type Values map[string]string

// Command represents a REPL command.
type Command interface {
	// Name returns the command's name (e.g., "show_ship_nav").
	Name() string
	// Description returns a brief help description for the command.
	Description() string
	// Execute runs the command logic with the resolved arguments. The
	// returned string is printed; an empty string prints nothing.
	Execute(ctx context.Context, rt *Runtime, values Values) (string, error)
	// Usage returns a brief usage string (e.g., "<callsign> [faction]").
	Usage() string
	// ExpectedArgs returns definitions for expected positional arguments.
	ExpectedArgs() []ArgDef
	// ExpectedFlags returns definitions for expected flags.
	ExpectedFlags() []FlagDef
}

// commandRegistry holds all registered commands.
var commandRegistry = make(map[string]Command)

// RegisterCommand adds a command to the registry. It is called from init()
// in each command's file.
func RegisterCommand(cmd Command) {
	if _, exists := commandRegistry[cmd.Name()]; exists {
		panic(fmt.Sprintf("Command already registered: %s", cmd.Name()))
	}
	commandRegistry[cmd.Name()] = cmd
}

// GetCommand retrieves a command from the registry by its name.
func GetCommand(name string) (Command, bool) {
	cmd, found := commandRegistry[name]
	return cmd, found
}

// CommandExists checks if a command with the given name is registered.
func CommandExists(name string) bool {
	_, found := commandRegistry[name]
	return found
}

// GetAllCommands returns all registered commands sorted by name.
func GetAllCommands() []Command {
	cmds := make([]Command, 0, len(commandRegistry))
	for _, cmd := range commandRegistry {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool {
		return cmds[i].Name() < cmds[j].Name()
	})
	return cmds
}

// CommandNames returns the sorted names of all registered commands.
func CommandNames() []string {
	cmds := GetAllCommands()
	names := make([]string, 0, len(cmds))
	for _, c := range cmds {
		names = append(names, c.Name())
	}
	return names
}

// Registry adapts the package registry to cli.CommandRegistryChecker.
type Registry struct{}

// CommandExists implements cli.CommandRegistryChecker.
func (Registry) CommandExists(name string) bool {
	return CommandExists(name)
}
