package automaton

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

var defaultAutomata = &Automata{}

// newABC accepts exactly "a", "b" and "aa"; E is a dead state.
func newABC() *DFA {
	return NewDFA(
		NewStateSet("A", "B", "C", "E"),
		AlphabetOf("ab"),
		Transitions{
			"A": {'a': "C", 'b': "B"},
			"B": {'a': "E", 'b': "E"},
			"C": {'a': "B", 'b': "E"},
			"E": {'a': "E", 'b': "E"},
		},
		"A",
		NewStateSet("B", "C"),
	)
}

// newXYZ rejects exactly the words that end in Z.
func newXYZ() *DFA {
	return NewDFA(
		NewStateSet("X", "Y", "Z"),
		AlphabetOf("ab"),
		Transitions{
			"X": {'a': "Y", 'b': "X"},
			"Y": {'a': "Z", 'b': "Y"},
			"Z": {'a': "Y", 'b': "X"},
		},
		"X",
		NewStateSet("X", "Y"),
	)
}

// newPartial has no transition from p on b.
func newPartial() *DFA {
	return NewDFA(
		NewStateSet("p", "q"),
		AlphabetOf("ab"),
		Transitions{
			"p": {'a': "q"},
			"q": {'a': "q", 'b': "p"},
		},
		"p",
		NewStateSet("q"),
	)
}

// newCycle reads a unary alphabet around a cycle of n states and accepts after
// acceptAt symbols modulo n.
func newCycle(prefix string, n, acceptAt int) *DFA {
	name := func(i int) State { return State(fmt.Sprintf("%s%d", prefix, i)) }
	states := NewStateSet()
	for i := 0; i < n; i++ {
		states.Add(name(i))
	}
	d := NewDFA(states, AlphabetOf("a"), nil, name(0), NewStateSet(name(acceptAt)))
	for i := 0; i < n; i++ {
		d.AddTransition(name(i), 'a', name((i+1)%n))
	}
	return d
}

// allWords returns every word over alphabet of length 0 through maxLength.
func allWords(alphabet Alphabet, maxLength int) []string {
	var words []string
	for length := 0; length <= maxLength; length++ {
		for word := range GenerateStrings(alphabet, length) {
			words = append(words, word)
		}
	}
	return words
}

func mustAccept(t *testing.T, d *DFA, word string) bool {
	t.Helper()
	ok, err := d.Accepts(word)
	require.NoError(t, err, "Accepts(%q)", word)
	return ok
}
