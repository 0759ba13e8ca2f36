package automaton

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
)

// StatePair is an ordered pair of states.
type StatePair struct {
	P, Q State
}

func comparePairs(x, y StatePair) int {
	if c := cmp.Compare(x.P, y.P); c != 0 {
		return c
	}
	return cmp.Compare(x.Q, y.Q)
}

// successorTable looks up every transition of d once, in States order and alphabet order.
func successorTable(d *DFA) (map[State][]State, error) {
	symbols := d.alphabet.Sorted()
	table := make(map[State][]State, d.NumStates())
	for _, state := range d.states.Sorted() {
		row := make([]State, len(symbols))
		for i, symbol := range symbols {
			next, err := d.Step(state, symbol)
			if err != nil {
				return nil, err
			}
			if !d.states.Contains(next) {
				return nil, fmt.Errorf("%w: %q on %q goes to %q", ErrTargetNotInStates, state, symbol, next)
			}
			row[i] = next
		}
		table[state] = row
	}
	return table, nil
}

// DistinguishablePairs Returns every ordered pair of distinguishable states of d, sorted. Pairs
// that disagree on acceptance are marked first; then a pair is marked when some symbol leads it
// to an already marked pair, until a pass marks nothing new. The result is the complement of
// the Myhill–Nerode equivalence, each pair present in both orientations.
// d must be total and closed over its states.
func DistinguishablePairs(d *DFA) ([]StatePair, error) {
	succ, err := successorTable(d)
	if err != nil {
		return nil, err
	}
	states := d.states.Sorted()

	marked := make(map[StatePair]struct{})
	for _, p := range states {
		for _, q := range states {
			if d.IsAccept(p) != d.IsAccept(q) {
				marked[StatePair{p, q}] = struct{}{}
			}
		}
	}

	for changed := true; changed; {
		changed = false
		// Each pass reads the previous marking and writes a new one.
		next := maps.Clone(marked)
		for _, p := range states {
			for _, q := range states {
				if _, ok := marked[StatePair{p, q}]; ok {
					continue
				}
				for i := range succ[p] {
					if _, ok := marked[StatePair{succ[p][i], succ[q][i]}]; ok {
						next[StatePair{p, q}] = struct{}{}
						next[StatePair{q, p}] = struct{}{}
						changed = true
						break
					}
				}
			}
		}
		marked = next
	}

	return slices.SortedFunc(maps.Keys(marked), comparePairs), nil
}

// Partition Returns the Myhill–Nerode equivalence classes of the states of d. Starting from the
// accept/reject split, blocks are refined by the blocks of their successors until the number of
// blocks stops growing. Blocks are sorted internally and ordered by their least state.
// d must be total and closed over its states.
func Partition(d *DFA) ([][]State, error) {
	succ, err := successorTable(d)
	if err != nil {
		return nil, err
	}
	states := d.states.Sorted()
	if len(states) == 0 {
		return nil, nil
	}

	block := make(map[State]int, len(states))
	numBlocks := renumber(states, block, func(state State) string {
		return fmt.Sprint(d.IsAccept(state))
	})

	for {
		previous := maps.Clone(block)
		n := renumber(states, block, func(state State) string {
			signature := make([]int, 0, len(succ[state])+1)
			signature = append(signature, previous[state])
			for _, next := range succ[state] {
				signature = append(signature, previous[next])
			}
			return fmt.Sprint(signature)
		})
		if n == numBlocks {
			break
		}
		numBlocks = n
	}

	blocks := make([][]State, numBlocks)
	for _, state := range states {
		blocks[block[state]] = append(blocks[block[state]], state)
	}
	return blocks, nil
}

// renumber assigns block numbers to states by signature, in order of first appearance, and
// returns the number of blocks.
func renumber(states []State, block map[State]int, signature func(State) string) int {
	ids := make(map[string]int)
	for _, state := range states {
		key := signature(state)
		id, ok := ids[key]
		if !ok {
			id = len(ids)
			ids[key] = id
		}
		block[state] = id
	}
	return len(ids)
}

// Minimize Returns the minimal DFA equivalent to d. States unreachable from the start state
// are dropped, the remaining ones are merged by Partition, and every merged state is labeled
// by the least state of its class.
func Minimize(d *DFA) (*DFA, error) {
	reachable, err := d.Reachable()
	if err != nil {
		return nil, err
	}
	trimmed := NewDFA(reachable, d.alphabet, d.transitions, d.start, d.accept.Intersect(reachable))

	blocks, err := Partition(trimmed)
	if err != nil {
		return nil, err
	}

	representative := make(map[State]State, reachable.Len())
	for _, b := range blocks {
		for _, state := range b {
			representative[state] = b[0]
		}
	}

	result := &DFA{
		states:      make(StateSet, len(blocks)),
		alphabet:    d.alphabet.Clone(),
		transitions: make(Transitions, len(blocks)),
		start:       representative[d.start],
		accept:      make(StateSet),
	}
	for _, b := range blocks {
		label := b[0]
		result.states.Add(label)
		if trimmed.IsAccept(label) {
			result.accept.Add(label)
		}
		row := make(map[Symbol]State, d.alphabet.Len())
		for symbol := range d.alphabet {
			next, err := trimmed.Step(label, symbol)
			if err != nil {
				return nil, err
			}
			row[symbol] = representative[next]
		}
		result.transitions[label] = row
	}
	return result, nil
}
