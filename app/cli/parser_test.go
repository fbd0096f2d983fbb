package cli

import (
	"errors"
	"reflect"
	"testing"
)

// MockRegistryChecker provides a mock implementation for testing.
type MockRegistryChecker struct {
	KnownCommands map[string]bool
}

// CommandExists checks if a command name exists in the mock registry.
func (m MockRegistryChecker) CommandExists(name string) bool {
	_, exists := m.KnownCommands[name]
	return exists
}

func TestTokenize(t *testing.T) {
	testCases := []struct {
		name     string
		line     string
		expected []string
	}{
		{"Empty", "", nil},
		{"Blank", "   \t ", nil},
		{"Single word", "get_agent", []string{"get_agent"}},
		{"Extra spaces", "  show_ship_nav    BADGER-1  ", []string{"show_ship_nav", "BADGER-1"}},
		{"Double quotes", `register "BADGER"`, []string{"register", "BADGER"}},
		{"Quoted spaces", `register "BIG BADGER" void`, []string{"register", "BIG BADGER", "void"}},
		{"Single quotes", `register 'it''s'`, []string{"register", "its"}},
		{"Empty quoted", `register ""`, []string{"register", ""}},
		{"Escaped quote", `register BAD\"GER`, []string{"register", `BAD"GER`}},
		{"Adjacent quote", `--faction="void"`, []string{"--faction=void"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Tokenize(tc.line)
			if err != nil {
				t.Fatalf("Tokenize(%q) error: %v", tc.line, err)
			}
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Tokenize(%q) = %#v, want %#v", tc.line, got, tc.expected)
			}
		})
	}
}

func TestTokenizeUnterminated(t *testing.T) {
	for _, line := range []string{`register "BADGER`, `register 'x`, `register x\`} {
		if _, err := Tokenize(line); !errors.Is(err, ErrUnterminatedQuote) {
			t.Errorf("Tokenize(%q) error = %v, want ErrUnterminatedQuote", line, err)
		}
	}
}

// TestParseCommandLineArgs tests the argument parser.
func TestParseCommandLineArgs(t *testing.T) {
	mockRegistry := MockRegistryChecker{
		KnownCommands: map[string]bool{
			"register":         true,
			"get_agent":        true,
			"show_ship_nav":    true,
			"system_waypoints": true,
			"help":             true,
		},
	}

	testCases := []struct {
		name     string
		args     []string
		expected CommandArgs
	}{
		{
			name: "No Args",
			args: []string{},
			expected: CommandArgs{
				RawArgs:   []string{},
				Variables: []string{},
				Flags:     map[string]string{},
				BoolFlags: map[string]bool{},
				Errors:    []error{},
			},
		},
		{
			name: "Simple Command",
			args: []string{"get_agent"},
			expected: CommandArgs{
				RawArgs:     []string{"get_agent"},
				CommandName: "get_agent",
				Variables:   []string{},
				Flags:       map[string]string{},
				BoolFlags:   map[string]bool{},
				Errors:      []error{},
			},
		},
		{
			name: "Command With Positional Args",
			args: []string{"register", "BADGER", "void"},
			expected: CommandArgs{
				RawArgs:     []string{"register", "BADGER", "void"},
				CommandName: "register",
				Variables:   []string{"BADGER", "void"},
				Flags:       map[string]string{},
				BoolFlags:   map[string]bool{},
				Errors:      []error{},
			},
		},
		{
			name: "Flag With Equals",
			args: []string{"register", "--callsign=BADGER", "--faction=void"},
			expected: CommandArgs{
				RawArgs:     []string{"register", "--callsign=BADGER", "--faction=void"},
				CommandName: "register",
				Variables:   []string{},
				Flags:       map[string]string{"callsign": "BADGER", "faction": "void"},
				BoolFlags:   map[string]bool{},
				Errors:      []error{},
			},
		},
		{
			name: "Flag With Separate Value",
			args: []string{"register", "--faction", "void", "BADGER"},
			expected: CommandArgs{
				RawArgs:     []string{"register", "--faction", "void", "BADGER"},
				CommandName: "register",
				Variables:   []string{"BADGER"},
				Flags:       map[string]string{"faction": "void"},
				BoolFlags:   map[string]bool{},
				Errors:      []error{},
			},
		},
		{
			name: "Command Specific Help",
			args: []string{"show_ship_nav", "--help"},
			expected: CommandArgs{
				RawArgs:       []string{"show_ship_nav", "--help"},
				CommandName:   "show_ship_nav",
				HelpRequested: true,
				Variables:     []string{},
				Flags:         map[string]string{},
				BoolFlags:     map[string]bool{"help": true},
				Errors:        []error{},
			},
		},
		{
			name: "Short Help",
			args: []string{"register", "-h"},
			expected: CommandArgs{
				RawArgs:       []string{"register", "-h"},
				CommandName:   "register",
				HelpRequested: true,
				Variables:     []string{},
				Flags:         map[string]string{},
				BoolFlags:     map[string]bool{"h": true},
				Errors:        []error{},
			},
		},
		{
			name: "Unknown Command",
			args: []string{"warp", "X1"},
			expected: CommandArgs{
				RawArgs:   []string{"warp", "X1"},
				Variables: []string{"warp", "X1"},
				Flags:     map[string]string{},
				BoolFlags: map[string]bool{},
				Errors:    []error{},
			},
		},
		{
			name: "Double Dash Ends Flags",
			args: []string{"register", "--", "--BADGER"},
			expected: CommandArgs{
				RawArgs:     []string{"register", "--", "--BADGER"},
				CommandName: "register",
				Variables:   []string{"--BADGER"},
				Flags:       map[string]string{},
				BoolFlags:   map[string]bool{},
				Errors:      []error{},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := ParseCommandLineArgs(tc.args, mockRegistry)
			if !reflect.DeepEqual(actual, tc.expected) {
				t.Errorf("ParseCommandLineArgs(%v)\nExpected: %+v\nActual:   %+v", tc.args, tc.expected, actual)
			}
		})
	}
}

func TestParseCommandLineArgsDuplicateFlag(t *testing.T) {
	registry := MockRegistryChecker{KnownCommands: map[string]bool{"register": true}}
	parsed := ParseCommandLineArgs([]string{"register", "--faction=void", "--faction=cosmic"}, registry)
	if len(parsed.Errors) != 1 {
		t.Fatalf("expected 1 error, got %v", parsed.Errors)
	}
	if parsed.Flags["faction"] != "cosmic" {
		t.Errorf("last value should win, got %q", parsed.Flags["faction"])
	}
}

func TestParseLine(t *testing.T) {
	registry := MockRegistryChecker{KnownCommands: map[string]bool{"register": true}}
	parsed, err := ParseLine(`register "BIG BADGER" --faction void`, registry)
	if err != nil {
		t.Fatalf("ParseLine: %v", err)
	}
	if parsed.CommandName != "register" {
		t.Errorf("CommandName = %q", parsed.CommandName)
	}
	if !reflect.DeepEqual(parsed.Variables, []string{"BIG BADGER"}) {
		t.Errorf("Variables = %#v", parsed.Variables)
	}
	if parsed.Flags["faction"] != "void" {
		t.Errorf("faction = %q", parsed.Flags["faction"])
	}

	if _, err := ParseLine(`register "BADGER`, registry); err == nil {
		t.Error("expected error for unterminated quote")
	}
}
