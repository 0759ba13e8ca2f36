package cli

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	automaton "github.com/geange/dfalgebra"
)

type fixture struct {
	description string
	build       func() *automaton.DFA
}

var fixtures = map[string]fixture{
	"abc": {
		description: `accepts "a", "b" and "aa"; E is a dead state`,
		build: func() *automaton.DFA {
			return automaton.NewDFA(
				automaton.NewStateSet("A", "B", "C", "E"),
				automaton.AlphabetOf("ab"),
				automaton.Transitions{
					"A": {'a': "C", 'b': "B"},
					"B": {'a': "E", 'b': "E"},
					"C": {'a': "B", 'b': "E"},
					"E": {'a': "E", 'b': "E"},
				},
				"A",
				automaton.NewStateSet("B", "C"),
			)
		},
	},
	"xyz": {
		description: "rejects the words that end in Z",
		build: func() *automaton.DFA {
			return automaton.NewDFA(
				automaton.NewStateSet("X", "Y", "Z"),
				automaton.AlphabetOf("ab"),
				automaton.Transitions{
					"X": {'a': "Y", 'b': "X"},
					"Y": {'a': "Z", 'b': "Y"},
					"Z": {'a': "Y", 'b': "X"},
				},
				"X",
				automaton.NewStateSet("X", "Y"),
			)
		},
	},
}

func fixtureNames() []string {
	names := make([]string, 0, len(fixtures))
	for name := range fixtures {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func loadFixture(name string) (*automaton.DFA, error) {
	f, ok := fixtures[name]
	if !ok {
		return nil, NewExitError(ExitCommandError,
			fmt.Sprintf("unknown fixture %q: must be one of %v", name, fixtureNames()))
	}
	return f.build(), nil
}

// FixtureInfo describes a built-in fixture.
type FixtureInfo struct {
	Name         string   `json:"name" yaml:"name"`
	Description  string   `json:"description" yaml:"description"`
	States       []string `json:"states" yaml:"states"`
	Start        string   `json:"start" yaml:"start"`
	AcceptStates []string `json:"accept_states" yaml:"accept_states"`
}

// FixtureList is the result of the fixtures command.
type FixtureList []FixtureInfo

func (l FixtureList) RenderText(w io.Writer) error {
	for _, f := range l {
		if _, err := fmt.Fprintf(w, "%s: %s (states %s, start %s, accept %s)\n",
			f.Name, f.Description, strings.Join(f.States, " "), f.Start, strings.Join(f.AcceptStates, " ")); err != nil {
			return err
		}
	}
	return nil
}

// NewFixturesCommand creates the fixtures command.
func NewFixturesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "fixtures",
		Short:         "List the built-in automata",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			list := make(FixtureList, 0, len(fixtures))
			for _, name := range fixtureNames() {
				d := fixtures[name].build()
				list = append(list, FixtureInfo{
					Name:         name,
					Description:  fixtures[name].description,
					States:       stateNames(d.States()),
					Start:        string(d.Start()),
					AcceptStates: stateNames(d.AcceptStates()),
				})
			}
			return rootOpts.formatter(cmd).Success(list)
		},
	}
}

func stateNames(states []automaton.State) []string {
	names := make([]string, len(states))
	for i, state := range states {
		names[i] = string(state)
	}
	return names
}
