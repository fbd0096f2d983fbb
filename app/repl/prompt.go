package repl

import (
	"context"
	"strings"

	prompt "github.com/c-bata/go-prompt"

	"github.com/Guerrilla-Interactive/spacetraders-cli/app/commands/args"
	"github.com/Guerrilla-Interactive/spacetraders-cli/app/spacetraders"
)

// runPrompt drives the go-prompt line editor. Commands run with the
// terminal back in cooked mode, so a command may start its own prompt.
func runPrompt(ctx context.Context, d *args.Dispatcher, opts Options) error {
	var (
		quit  bool
		fatal error
	)

	executor := func(line string) {
		stop, err := execute(ctx, d, line, opts.Out)
		if err != nil {
			fatal = err
		}
		if stop {
			quit = true
		}
	}

	p := prompt.New(
		executor,
		func(doc prompt.Document) []prompt.Suggest {
			return Complete(doc.TextBeforeCursor())
		},
		prompt.OptionPrefix(opts.Prefix),
		prompt.OptionPrefixTextColor(prompt.Yellow),
		prompt.OptionTitle("spacetraders"),
		prompt.OptionSetExitCheckerOnInput(func(string, bool) bool { return quit }),
	)
	// Run also returns on ctrl-D at an empty line.
	p.Run()

	return fatal
}

// Complete suggests command names for the first word, faction names for the
// faction argument of register and command names after help.
func Complete(before string) []prompt.Suggest {
	words := strings.Fields(before)
	trailingSpace := before != "" && strings.HasSuffix(before, " ")

	current := ""
	if len(words) > 0 && !trailingSpace {
		current = words[len(words)-1]
		words = words[:len(words)-1]
	}

	if len(words) == 0 {
		return prompt.FilterHasPrefix(commandSuggestions(), current, true)
	}

	switch words[0] {
	case "help":
		if len(words) == 1 {
			return prompt.FilterHasPrefix(commandSuggestions(), current, true)
		}
	case "register":
		if len(words) == 2 || (len(words) > 0 && words[len(words)-1] == "--faction") {
			return prompt.FilterHasPrefix(factionSuggestions(), current, true)
		}
	}
	return nil
}

func commandSuggestions() []prompt.Suggest {
	cmds := args.GetAllCommands()
	out := make([]prompt.Suggest, 0, len(cmds))
	for _, c := range cmds {
		out = append(out, prompt.Suggest{Text: c.Name(), Description: c.Description()})
	}
	return out
}

func factionSuggestions() []prompt.Suggest {
	out := make([]prompt.Suggest, 0, len(spacetraders.Factions))
	for _, f := range spacetraders.Factions {
		out = append(out, prompt.Suggest{Text: f})
	}
	return out
}
