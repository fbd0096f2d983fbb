package cli

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// CommandRegistryChecker defines an interface for checking if a command name exists.
// This avoids a direct dependency cycle between cli and commands packages.
type CommandRegistryChecker interface {
	CommandExists(name string) bool
}

// ArgDef defines the structure for an expected positional argument.
type ArgDef struct {
	Name        string // e.g., "callsign", "contract"
	Description string // Help text for the argument
	Required    bool   // Whether the argument is mandatory
	Default     string // Substituted when an optional argument is missing
}

// FlagDef defines the structure for an expected flag.
type FlagDef struct {
	Name        string // Long name (e.g., "faction")
	ShortName   string // Short name (e.g., "f"), empty if none
	Description string // Help text for the flag
	HasValue    bool   // Whether the flag expects a value (true for --flag=v, false for --flag)
	Required    bool   // Whether the flag is mandatory
}

// CommandArgs holds structured information parsed from one REPL line.
type CommandArgs struct {
	RawArgs       []string          // Tokens of the line, quotes removed
	CommandName   string            // The command specified (e.g., "show_ship_nav")
	Variables     []string          // Positional arguments provided after the command name
	Flags         map[string]string // Flags provided (e.g., --faction=void -> map["faction"]="void")
	BoolFlags     map[string]bool   // Boolean flags (e.g., --help -> map["help"]=true)
	HelpRequested bool              // If a help flag (--help, -h) was detected
	Errors        []error           // Any parsing errors encountered
}

// ErrUnterminatedQuote is returned by Tokenize when a quote is never closed.
var ErrUnterminatedQuote = errors.New("unterminated quote")

// Tokenize splits a line on whitespace. Single or double quotes group words
// into one token and a backslash escapes the next character.
func Tokenize(line string) ([]string, error) {
	var (
		tokens  []string
		current strings.Builder
		inToken bool
		quote   rune
		escaped bool
	)

	for _, r := range line {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case r == '\\' && quote != '\'':
			escaped = true
			inToken = true
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inToken = true
		case unicode.IsSpace(r):
			if inToken {
				tokens = append(tokens, current.String())
				current.Reset()
				inToken = false
			}
		default:
			current.WriteRune(r)
			inToken = true
		}
	}

	if quote != 0 || escaped {
		return nil, ErrUnterminatedQuote
	}
	if inToken {
		tokens = append(tokens, current.String())
	}
	return tokens, nil
}

// ParseLine tokenizes a REPL line and parses it with ParseCommandLineArgs.
func ParseLine(line string, registry CommandRegistryChecker) (CommandArgs, error) {
	tokens, err := Tokenize(line)
	if err != nil {
		return CommandArgs{}, err
	}
	return ParseCommandLineArgs(tokens, registry), nil
}

// ParseCommandLineArgs processes tokens using a command registry checker.
// The first token names the command. An unknown first token leaves
// CommandName empty and is kept as a variable.
func ParseCommandLineArgs(rawArgs []string, registry CommandRegistryChecker) CommandArgs {
	parsed := CommandArgs{
		RawArgs:   rawArgs,
		Variables: make([]string, 0),
		Flags:     make(map[string]string),
		BoolFlags: make(map[string]bool),
		Errors:    make([]error, 0),
	}

	for _, arg := range rawArgs {
		if arg == "--help" || arg == "-h" {
			parsed.HelpRequested = true
		}
	}

	args := rawArgs
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") && registry.CommandExists(args[0]) {
		parsed.CommandName = args[0]
		args = args[1:]
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch {
		case arg == "--":
			parsed.Variables = append(parsed.Variables, args[i+1:]...)
			return parsed

		case strings.HasPrefix(arg, "--"):
			flagPart := strings.TrimPrefix(arg, "--")
			flagName := flagPart
			flagValue := ""
			hasExplicitValue := false

			if name, value, ok := strings.Cut(flagPart, "="); ok {
				flagName = name
				flagValue = value
				hasExplicitValue = true
			} else if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				flagValue = args[i+1]
				hasExplicitValue = true
				i++ // Consume the value argument
			}

			if flagName == "" {
				parsed.Errors = append(parsed.Errors, fmt.Errorf("invalid flag format: %s", arg))
				continue
			}

			if hasExplicitValue {
				if _, exists := parsed.Flags[flagName]; exists {
					parsed.Errors = append(parsed.Errors, fmt.Errorf("flag provided more than once: --%s", flagName))
				}
				parsed.Flags[flagName] = flagValue
			} else {
				if _, exists := parsed.BoolFlags[flagName]; exists {
					parsed.Errors = append(parsed.Errors, fmt.Errorf("boolean flag provided more than once: --%s", flagName))
				}
				parsed.BoolFlags[flagName] = true
			}

		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			flagChars := strings.TrimPrefix(arg, "-")
			for _, flagChar := range flagChars {
				flagName := string(flagChar)
				if _, exists := parsed.BoolFlags[flagName]; exists {
					parsed.Errors = append(parsed.Errors, fmt.Errorf("boolean flag provided more than once: -%s", flagName))
				}
				parsed.BoolFlags[flagName] = true
			}

		default:
			parsed.Variables = append(parsed.Variables, arg)
		}
	}

	return parsed
}
