package automaton

import (
	"fmt"
)

// Automata builds common automata over a given alphabet. Every automaton it returns is total.
type Automata struct {
}

// MakeEmpty
// Returns a new automaton with the empty language.
func (*Automata) MakeEmpty(alphabet Alphabet) *DFA {
	return loop(alphabet, "q0", false)
}

// MakeEmptyString
// Returns a new automaton that accepts only the empty string.
func (*Automata) MakeEmptyString(alphabet Alphabet) *DFA {
	d := NewDFA(NewStateSet("q0", DefaultSinkState), alphabet, nil, "q0", NewStateSet("q0"))
	for symbol := range alphabet {
		d.AddTransition("q0", symbol, DefaultSinkState)
		d.AddTransition(DefaultSinkState, symbol, DefaultSinkState)
	}
	return d
}

// MakeAnyString
// Returns a new automaton that accepts all strings over alphabet.
func (*Automata) MakeAnyString(alphabet Alphabet) *DFA {
	return loop(alphabet, "q0", true)
}

// MakeString
// Returns a new automaton that accepts only word. Every symbol of word must be in alphabet.
func (*Automata) MakeString(alphabet Alphabet, word string) (*DFA, error) {
	symbols := []rune(word)
	states := NewStateSet(DefaultSinkState)
	for i := 0; i <= len(symbols); i++ {
		states.Add(numbered(i))
	}

	d := NewDFA(states, alphabet, nil, numbered(0), NewStateSet(numbered(len(symbols))))
	for i, symbol := range symbols {
		if !alphabet.Contains(symbol) {
			return nil, fmt.Errorf("symbol %q of %q is not in the alphabet", symbol, word)
		}
		d.AddTransition(numbered(i), symbol, numbered(i+1))
	}
	for _, state := range d.States() {
		for symbol := range alphabet {
			if _, err := d.Step(state, symbol); err != nil {
				d.AddTransition(state, symbol, DefaultSinkState)
			}
		}
	}
	return d, nil
}

func numbered(i int) State {
	return State(fmt.Sprintf("q%d", i))
}

// loop returns a one-state automaton looping on every symbol.
func loop(alphabet Alphabet, state State, accept bool) *DFA {
	acceptStates := NewStateSet()
	if accept {
		acceptStates.Add(state)
	}
	d := NewDFA(NewStateSet(state), alphabet, nil, state, acceptStates)
	for symbol := range alphabet {
		d.AddTransition(state, symbol, state)
	}
	return d
}
