package prompt

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Guerrilla-Interactive/spacetraders-cli/app"
)

// ErrAborted is returned when the user cancels a prompt or input ends
// before an answer was given.
var ErrAborted = errors.New("prompt aborted")

// Confirmer asks a yes/no question. def is the answer used when the user
// just presses enter.
type Confirmer interface {
	Confirm(question string, def bool) (bool, error)
}

// ConfirmKeyMap holds the bindings of the confirm screen.
type ConfirmKeyMap struct {
	Yes    key.Binding
	No     key.Binding
	Toggle key.Binding
	Accept key.Binding
	Abort  key.Binding
}

// DefaultConfirmKeyMap returns the standard bindings.
func DefaultConfirmKeyMap() ConfirmKeyMap {
	return ConfirmKeyMap{
		Yes: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "yes"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "N"),
			key.WithHelp("n", "no"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("left", "right", "h", "l", "tab"),
			key.WithHelp("←/→", "switch"),
		),
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Abort: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k ConfirmKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Yes, k.No, k.Toggle, k.Accept, k.Abort}
}

// FullHelp implements help.KeyMap.
func (k ConfirmKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// ConfirmModel is a one-question yes/no screen.
type ConfirmModel struct {
	question string
	selected bool
	done     bool
	aborted  bool

	keys ConfirmKeyMap
	help help.Model
}

// NewConfirmModel starts with def selected.
func NewConfirmModel(question string, def bool) ConfirmModel {
	return ConfirmModel{
		question: question,
		selected: def,
		keys:     DefaultConfirmKeyMap(),
		help:     help.New(),
	}
}

// Answer reports the chosen value and whether the user completed the prompt.
func (m ConfirmModel) Answer() (bool, bool) {
	return m.selected, m.done && !m.aborted
}

func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Abort):
		m.aborted = true
		m.done = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Yes):
		m.selected = true
		m.done = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.No):
		m.selected = false
		m.done = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Toggle):
		m.selected = !m.selected
	case key.Matches(keyMsg, m.keys.Accept):
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m ConfirmModel) View() string {
	if m.done {
		answer := "No"
		if m.selected {
			answer = "Yes"
		}
		if m.aborted {
			answer = "cancelled"
		}
		return fmt.Sprintf("%s %s\n", m.question, app.PathStyle.Render(answer))
	}

	yes, no := "Yes", "No"
	if m.selected {
		yes = app.HighlightStyle.Render("[Yes]")
	} else {
		no = app.HighlightStyle.Render("[No]")
	}
	return fmt.Sprintf("%s %s  %s\n%s\n", m.question, yes, no, m.help.View(m.keys))
}

// TeaConfirmer runs ConfirmModel as a bubbletea program.
type TeaConfirmer struct {
	In  io.Reader
	Out io.Writer
}

// Confirm implements Confirmer.
func (c TeaConfirmer) Confirm(question string, def bool) (bool, error) {
	var opts []tea.ProgramOption
	if c.In != nil {
		opts = append(opts, tea.WithInput(c.In))
	}
	if c.Out != nil {
		opts = append(opts, tea.WithOutput(c.Out))
	}

	final, err := tea.NewProgram(NewConfirmModel(question, def), opts...).Run()
	if err != nil {
		return false, fmt.Errorf("confirm prompt: %w", err)
	}
	m, ok := final.(ConfirmModel)
	if !ok {
		return false, fmt.Errorf("confirm prompt: unexpected model %T", final)
	}
	answer, completed := m.Answer()
	if !completed {
		return false, ErrAborted
	}
	return answer, nil
}
