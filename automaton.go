package automaton

import (
	"errors"
	"fmt"
	"maps"
)

// State identifies a state of a DFA. States carry no structure beyond identity.
type State string

// Symbol is a single letter of an alphabet. Words are strings whose runes are symbols.
type Symbol = rune

// Transitions maps a source state to its outgoing transitions, one per symbol.
type Transitions map[State]map[Symbol]State

// Clone returns a deep copy of t.
func (t Transitions) Clone() Transitions {
	out := make(Transitions, len(t))
	for state, row := range t {
		out[state] = maps.Clone(row)
	}
	return out
}

// DFA Represents a deterministic finite automaton: a set of states, an alphabet, a transition
// function, a start state and a set of accept states. A DFA is built with NewDFA, which copies
// its inputs and performs no consistency check; use Validate when the structure must be checked
// up front. Otherwise a missing transition surfaces lazily as an *UndefinedTransitionError the
// first time an algorithm looks it up. AddTransition is the only mutation and must not run
// concurrently with any read of the same DFA.
type DFA struct {
	states      StateSet
	alphabet    Alphabet
	transitions Transitions

	start  State
	accept StateSet
}

func NewDFA(states StateSet, alphabet Alphabet, transitions Transitions, start State, accept StateSet) *DFA {
	return &DFA{
		states:      states.Clone(),
		alphabet:    alphabet.Clone(),
		transitions: transitions.Clone(),
		start:       start,
		accept:      accept.Clone(),
	}
}

// States returns the states in ascending order.
func (d *DFA) States() []State {
	return d.states.Sorted()
}

// NumStates How many states this automaton has.
func (d *DFA) NumStates() int {
	return d.states.Len()
}

// Alphabet returns a copy of the alphabet.
func (d *DFA) Alphabet() Alphabet {
	return d.alphabet.Clone()
}

// Start returns the initial state.
func (d *DFA) Start() State {
	return d.start
}

// AcceptStates returns the accept states in ascending order.
func (d *DFA) AcceptStates() []State {
	return d.accept.Sorted()
}

// IsAccept Returns true if this state is an accept state.
func (d *DFA) IsAccept(state State) bool {
	return d.accept.Contains(state)
}

// Transitions returns a deep copy of the transition table.
func (d *DFA) Transitions() Transitions {
	return d.transitions.Clone()
}

// AddTransition Add a transition from state on symbol to next. A state without transitions gets
// a new row; an existing entry for symbol is overwritten.
func (d *DFA) AddTransition(state State, symbol Symbol, next State) {
	row, ok := d.transitions[state]
	if !ok {
		d.transitions[state] = map[Symbol]State{symbol: next}
		return
	}
	row[symbol] = next
}

// Step Performs a single transition lookup.
// Returns the destination state, or an *UndefinedTransitionError if there is no entry.
func (d *DFA) Step(state State, symbol Symbol) (State, error) {
	next, ok := d.transitions[state][symbol]
	if !ok {
		return "", &UndefinedTransitionError{State: state, Symbol: symbol}
	}
	return next, nil
}

// Accepts Runs input through the transition function from the start state. A symbol outside
// the alphabet rejects the input immediately; this is a plain false, not an error.
func (d *DFA) Accepts(input string) (bool, error) {
	current := d.start
	for _, symbol := range input {
		if !d.alphabet.Contains(symbol) {
			return false, nil
		}
		next, err := d.Step(current, symbol)
		if err != nil {
			return false, err
		}
		current = next
	}
	return d.accept.Contains(current), nil
}

// LanguageAccepts reports whether input is a word of the language of d.
func (d *DFA) LanguageAccepts(input string) (bool, error) {
	return d.Accepts(input)
}

// IsTotal Returns true if every state has a transition for every symbol of the alphabet.
func (d *DFA) IsTotal() bool {
	return d.isTotalOver(d.alphabet.Sorted())
}

func (d *DFA) isTotalOver(symbols []Symbol) bool {
	for state := range d.states {
		row := d.transitions[state]
		for _, symbol := range symbols {
			if _, ok := row[symbol]; !ok {
				return false
			}
		}
	}
	return true
}

// Validate checks the structural invariants of d: the start state and accept states belong to
// the state set, every transition target is a state, and the transition function is total over
// states × alphabet. All violations are reported together.
func (d *DFA) Validate() error {
	var errs []error

	if !d.states.Contains(d.start) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrStartNotInStates, d.start))
	}
	for _, state := range d.accept.Sorted() {
		if !d.states.Contains(state) {
			errs = append(errs, fmt.Errorf("%w: %q", ErrAcceptNotInStates, state))
		}
	}

	symbols := d.alphabet.Sorted()
	for _, state := range d.states.Sorted() {
		for _, symbol := range symbols {
			next, err := d.Step(state, symbol)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			if !d.states.Contains(next) {
				errs = append(errs, fmt.Errorf("%w: %q on %q goes to %q", ErrTargetNotInStates, state, symbol, next))
			}
		}
	}

	return errors.Join(errs...)
}

// Reachable returns the states reachable from the start state.
func (d *DFA) Reachable() (StateSet, error) {
	r, err := Compile(d)
	if err != nil {
		return nil, err
	}
	return r.StateSet(), nil
}
