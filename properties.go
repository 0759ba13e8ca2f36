package automaton

import (
	"github.com/bits-and-blooms/bitset"
)

// IsEmpty Returns true if no word of length 1 through NumStates() is accepted. If any longer word
// were accepted, a state would repeat on its path and a shorter accepted word would exist, so
// the scan is sufficient for languages reachable over the alphabet. The empty word is not
// inspected.
// Worst case complexity: O(|alphabet|^NumStates()).
func (d *DFA) IsEmpty() (bool, error) {
	for length := 1; length <= d.NumStates(); length++ {
		for word := range GenerateStrings(d.alphabet, length) {
			ok, err := d.Accepts(word)
			if err != nil {
				return false, err
			}
			if ok {
				return false, nil
			}
		}
	}
	return true, nil
}

// IsInfinite Returns true if the language of d is infinite, that is some cycle reachable from
// the start state can itself reach an accept state. Only the reachable part of d is inspected
// and it must be total.
func (d *DFA) IsInfinite() (bool, error) {
	r, err := Compile(d)
	if err != nil {
		return false, err
	}

	live := r.liveStates()
	if !live.Test(0) {
		return false, nil
	}

	path := bitset.New(uint(r.GetNumStates()))
	visited := bitset.New(uint(r.GetNumStates()))
	return r.hasLiveCycle(0, live, path, visited), nil
}

// IsDisjoint Returns true if no word over the alphabet of a is accepted by both automata.
// The pairs of states reachable by reading the same word in a and b are explored breadth
// first, so the first common word found is a shortest one; no more than
// a.NumStates()*b.NumStates() pairs are visited.
func IsDisjoint(a, b *DFA) (bool, error) {
	type pair struct {
		p, q State
	}

	symbols := a.alphabet.Sorted()
	start := pair{a.start, b.start}
	seen := map[pair]struct{}{start: {}}
	workList := []pair{start}

	for len(workList) > 0 {
		cur := workList[0]
		workList = workList[1:]

		if a.IsAccept(cur.p) && b.IsAccept(cur.q) {
			return false, nil
		}

		for _, symbol := range symbols {
			if !b.alphabet.Contains(symbol) {
				// b rejects every word containing symbol.
				continue
			}
			p, err := a.Step(cur.p, symbol)
			if err != nil {
				return false, err
			}
			q, err := b.Step(cur.q, symbol)
			if err != nil {
				return false, err
			}
			next := pair{p, q}
			if _, ok := seen[next]; !ok {
				seen[next] = struct{}{}
				workList = append(workList, next)
			}
		}
	}
	return true, nil
}

// IsEquivalent Returns true if a and b agree on every word over the union of their alphabets of
// length 0 through a.NumStates()+b.NumStates(). The automata may use unrelated state names.
func IsEquivalent(a, b *DFA) (bool, error) {
	alphabet := a.alphabet.Union(b.alphabet)
	maxLength := a.NumStates() + b.NumStates()
	for length := 0; length <= maxLength; length++ {
		for word := range GenerateStrings(alphabet, length) {
			inA, err := a.Accepts(word)
			if err != nil {
				return false, err
			}
			inB, err := b.Accepts(word)
			if err != nil {
				return false, err
			}
			if inA != inB {
				return false, nil
			}
		}
	}
	return true, nil
}
