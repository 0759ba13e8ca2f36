package automaton

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// RunAutomaton is a dense, int-indexed form of the part of a DFA that is reachable from its
// start state. State 0 is always the initial state; the others are numbered in breadth-first
// discovery order, walking the alphabet in ascending order.
type RunAutomaton struct {
	states []State
	index  map[State]int

	// Sorted alphabet; a symbol is addressed by its position here.
	alphabet []Symbol

	// Holds the successor of state s on alphabet[i] at s*len(alphabet)+i.
	transitions []int

	accept *bitset.BitSet
}

// Compile builds the RunAutomaton of d. It fails with an *UndefinedTransitionError if a
// reachable state misses a transition; unreachable states are never inspected.
func Compile(d *DFA) (*RunAutomaton, error) {
	r := &RunAutomaton{
		index:    make(map[State]int, d.NumStates()),
		alphabet: d.alphabet.Sorted(),
		accept:   bitset.New(uint(d.NumStates())),
	}
	r.transitions = make([]int, 0, d.NumStates()*len(r.alphabet))

	r.addState(d, d.start)
	for s := 0; s < len(r.states); s++ {
		for _, symbol := range r.alphabet {
			next, err := d.Step(r.states[s], symbol)
			if err != nil {
				return nil, err
			}
			r.transitions = append(r.transitions, r.addState(d, next))
		}
	}
	return r, nil
}

func (r *RunAutomaton) addState(d *DFA, state State) int {
	if s, ok := r.index[state]; ok {
		return s
	}
	s := len(r.states)
	r.states = append(r.states, state)
	r.index[state] = s
	if d.IsAccept(state) {
		r.accept.Set(uint(s))
	}
	return s
}

// GetNumStates How many reachable states this automaton has.
func (r *RunAutomaton) GetNumStates() int {
	return len(r.states)
}

// State returns the label of state s.
func (r *RunAutomaton) State(s int) State {
	return r.states[s]
}

// Index returns the number assigned to a state label.
func (r *RunAutomaton) Index(state State) (int, bool) {
	s, ok := r.index[state]
	return s, ok
}

// StateSet returns the labels of all reachable states.
func (r *RunAutomaton) StateSet() StateSet {
	return NewStateSet(r.states...)
}

// IsAccept Returns true if state s is an accept state.
func (r *RunAutomaton) IsAccept(s int) bool {
	return r.accept.Test(uint(s))
}

// Step Returns the destination of state s on symbol, or -1 if symbol is not in the alphabet.
func (r *RunAutomaton) Step(s int, symbol Symbol) int {
	i, ok := slices.BinarySearch(r.alphabet, symbol)
	if !ok {
		return -1
	}
	return r.successor(s, i)
}

func (r *RunAutomaton) successor(s, i int) int {
	return r.transitions[s*len(r.alphabet)+i]
}

// Run Returns true if the given word is accepted by this automaton.
func (r *RunAutomaton) Run(word string) bool {
	p := 0
	for _, symbol := range word {
		p = r.Step(p, symbol)
		if p == -1 {
			return false
		}
	}
	return r.IsAccept(p)
}

// liveStates returns the states from which some accept state can be reached.
func (r *RunAutomaton) liveStates() *bitset.BitSet {
	numStates := len(r.states)
	preds := make([][]int, numStates)
	for s := 0; s < numStates; s++ {
		for i := range r.alphabet {
			dest := r.successor(s, i)
			preds[dest] = append(preds[dest], s)
		}
	}

	live := bitset.New(uint(numStates))
	workList := make([]int, 0, numStates)
	for s, ok := r.accept.NextSet(0); ok; s, ok = r.accept.NextSet(s + 1) {
		live.Set(s)
		workList = append(workList, int(s))
	}

	for len(workList) > 0 {
		s := workList[0]
		workList = workList[1:]
		for _, p := range preds[s] {
			if !live.Test(uint(p)) {
				live.Set(uint(p))
				workList = append(workList, p)
			}
		}
	}
	return live
}

// hasLiveCycle reports whether a cycle through live states can be reached from state.
// path holds the states on the current DFS branch; visited the ones fully explored without
// finding a cycle.
func (r *RunAutomaton) hasLiveCycle(state int, live, path, visited *bitset.BitSet) bool {
	path.Set(uint(state))
	for i := range r.alphabet {
		dest := r.successor(state, i)
		if !live.Test(uint(dest)) {
			continue
		}
		if path.Test(uint(dest)) || (!visited.Test(uint(dest)) && r.hasLiveCycle(dest, live, path, visited)) {
			return true
		}
	}
	path.Clear(uint(state))
	visited.Set(uint(state))
	return false
}
