package automaton

import (
	"maps"
	"slices"
)

// StateSet is a set of states keyed by identity.
type StateSet map[State]struct{}

func NewStateSet(states ...State) StateSet {
	s := make(StateSet, len(states))
	for _, state := range states {
		s[state] = struct{}{}
	}
	return s
}

func (s StateSet) Add(state State) {
	s[state] = struct{}{}
}

func (s StateSet) Contains(state State) bool {
	_, ok := s[state]
	return ok
}

func (s StateSet) Len() int {
	return len(s)
}

// Sorted returns the members in ascending order.
func (s StateSet) Sorted() []State {
	return slices.Sorted(maps.Keys(s))
}

// Clone returns an independent copy; the copy of a nil set is empty, not nil.
func (s StateSet) Clone() StateSet {
	out := make(StateSet, len(s))
	for state := range s {
		out[state] = struct{}{}
	}
	return out
}

// Difference returns the members of s that are not in other.
func (s StateSet) Difference(other StateSet) StateSet {
	out := make(StateSet, len(s))
	for state := range s {
		if !other.Contains(state) {
			out[state] = struct{}{}
		}
	}
	return out
}

// Intersect returns the members of s that are also in other.
func (s StateSet) Intersect(other StateSet) StateSet {
	out := make(StateSet)
	for state := range s {
		if other.Contains(state) {
			out[state] = struct{}{}
		}
	}
	return out
}

func (s StateSet) Equal(other StateSet) bool {
	if len(s) != len(other) {
		return false
	}
	for state := range s {
		if !other.Contains(state) {
			return false
		}
	}
	return true
}

// Alphabet is a finite set of symbols. Every enumeration in this package walks an
// alphabet in ascending code point order, see Sorted.
type Alphabet map[Symbol]struct{}

func NewAlphabet(symbols ...Symbol) Alphabet {
	a := make(Alphabet, len(symbols))
	for _, symbol := range symbols {
		a[symbol] = struct{}{}
	}
	return a
}

// AlphabetOf returns the alphabet made of the runes of letters.
func AlphabetOf(letters string) Alphabet {
	return NewAlphabet([]rune(letters)...)
}

func (a Alphabet) Contains(symbol Symbol) bool {
	_, ok := a[symbol]
	return ok
}

func (a Alphabet) Len() int {
	return len(a)
}

// Sorted returns the symbols in ascending code point order.
func (a Alphabet) Sorted() []Symbol {
	return slices.Sorted(maps.Keys(a))
}

func (a Alphabet) Clone() Alphabet {
	out := make(Alphabet, len(a))
	for symbol := range a {
		out[symbol] = struct{}{}
	}
	return out
}

// Union returns the symbols of both alphabets.
func (a Alphabet) Union(other Alphabet) Alphabet {
	out := a.Clone()
	for symbol := range other {
		out[symbol] = struct{}{}
	}
	return out
}
