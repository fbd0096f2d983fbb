package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// LineConfirmer asks on a plain line-oriented stream. It is used when stdin
// is not a terminal and shares its reader with the REPL.
type LineConfirmer struct {
	In  *bufio.Reader
	Out io.Writer
}

// Confirm implements Confirmer. An empty answer selects def; unrecognised
// answers ask again until input ends.
func (c LineConfirmer) Confirm(question string, def bool) (bool, error) {
	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}

	for {
		fmt.Fprintf(c.Out, "%s %s ", question, hint)

		line, err := c.In.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(c.Out)
				return false, ErrAborted
			}
			return false, fmt.Errorf("read answer: %w", err)
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(c.Out, "Please answer y or n.")
		if err != nil {
			return false, ErrAborted
		}
	}
}
