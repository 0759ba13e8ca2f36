package automaton

import (
	"fmt"
	"iter"
	"unicode/utf8"
)

// GenerateStrings Returns every word of exactly length symbols over alphabet, in lexicographic
// order of Alphabet.Sorted. The sequence is lazy and can be ranged over more than once; each
// pass enumerates from scratch. A zero length yields the empty word once, a negative length
// yields nothing.
func GenerateStrings(alphabet Alphabet, length int) iter.Seq[string] {
	symbols := alphabet.Sorted()
	return func(yield func(string) bool) {
		if length < 0 || (length > 0 && len(symbols) == 0) {
			return
		}

		// Odometer over symbol positions; the last position turns fastest.
		digits := make([]int, length)
		word := make([]rune, length)
		for {
			for i, d := range digits {
				word[i] = symbols[d]
			}
			if !yield(string(word)) {
				return
			}

			i := length - 1
			for ; i >= 0; i-- {
				digits[i]++
				if digits[i] < len(symbols) {
					break
				}
				digits[i] = 0
			}
			if i < 0 {
				return
			}
		}
	}
}

// CountMembers Returns the number of accepted words of length 1 through maxLength and the
// words themselves, ordered by length and then by alphabet order.
// Worst case complexity: O(|alphabet|^maxLength); every candidate word is built and run
// through Accepts.
func (d *DFA) CountMembers(maxLength int) (int, []string, error) {
	e := &memberExpander{dfa: d, symbols: d.alphabet.Sorted()}
	var members []string
	for length := 1; length <= maxLength; length++ {
		var err error
		members, err = e.expand(length, make([]rune, 0, length), members)
		if err != nil {
			return 0, nil, err
		}
	}
	return len(members), members, nil
}

type memberExpander struct {
	dfa     *DFA
	symbols []Symbol
}

// expand appends to members every accepted word made of prefix followed by remaining symbols.
func (e *memberExpander) expand(remaining int, prefix []rune, members []string) ([]string, error) {
	if remaining == 0 {
		word := string(prefix)
		ok, err := e.dfa.Accepts(word)
		if err != nil {
			return nil, err
		}
		if ok {
			members = append(members, word)
		}
		return members, nil
	}

	var err error
	for _, symbol := range e.symbols {
		members, err = e.expand(remaining-1, append(prefix, symbol), members)
		if err != nil {
			return nil, err
		}
	}
	return members, nil
}

// StringsOfLength Returns the accepted words of exactly length symbols, in alphabet order.
// Unlike CountMembers it walks the transition function directly, carrying the current state
// along with the word built so far.
func (d *DFA) StringsOfLength(length int) ([]string, error) {
	if length < 0 {
		return nil, nil
	}
	w := &lengthWalker{dfa: d, symbols: d.alphabet.Sorted(), length: length}
	return w.words(d.start, make([]rune, 0, length), nil)
}

// CountStringsOfLength Returns how many words of exactly length symbols are accepted.
func (d *DFA) CountStringsOfLength(length int) (int, error) {
	if length < 0 {
		return 0, nil
	}
	w := &lengthWalker{dfa: d, symbols: d.alphabet.Sorted(), length: length}
	return w.count(d.start, 0)
}

type lengthWalker struct {
	dfa     *DFA
	symbols []Symbol
	length  int
}

func (w *lengthWalker) words(state State, prefix []rune, out []string) ([]string, error) {
	if len(prefix) == w.length {
		if w.dfa.IsAccept(state) {
			out = append(out, string(prefix))
		}
		return out, nil
	}

	for _, symbol := range w.symbols {
		next, err := w.dfa.Step(state, symbol)
		if err != nil {
			return nil, err
		}
		out, err = w.words(next, append(prefix, symbol), out)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (w *lengthWalker) count(state State, depth int) (int, error) {
	if depth == w.length {
		if w.dfa.IsAccept(state) {
			return 1, nil
		}
		return 0, nil
	}

	total := 0
	for _, symbol := range w.symbols {
		next, err := w.dfa.Step(state, symbol)
		if err != nil {
			return 0, err
		}
		n, err := w.count(next, depth+1)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

// ShortestWord Returns the length in symbols of the shortest word, or 0 for no words.
func ShortestWord(words []string) int {
	if len(words) == 0 {
		return 0
	}
	shortest := utf8.RuneCountInString(words[0])
	for _, word := range words[1:] {
		shortest = min(shortest, utf8.RuneCountInString(word))
	}
	return shortest
}

// LongestWord Returns the length in symbols of the longest word, or 0 for no words.
func LongestWord(words []string) int {
	longest := 0
	for _, word := range words {
		longest = max(longest, utf8.RuneCountInString(word))
	}
	return longest
}

// LanguageExamples Returns the first two accepted and the first two rejected words found by
// scanning lengths 1 through NumStates()+1 in enumeration order. If the scan ends before both
// pairs are complete, the error wraps ErrNotEnoughExamples and no words are returned.
func (d *DFA) LanguageExamples() (accepted, rejected []string, err error) {
	maxLength := d.NumStates() + 1
	for length := 1; length <= maxLength; length++ {
		for word := range GenerateStrings(d.alphabet, length) {
			ok, err := d.Accepts(word)
			if err != nil {
				return nil, nil, err
			}
			if ok && len(accepted) < 2 {
				accepted = append(accepted, word)
			} else if !ok && len(rejected) < 2 {
				rejected = append(rejected, word)
			}
			if len(accepted) == 2 && len(rejected) == 2 {
				return accepted, rejected, nil
			}
		}
	}
	return nil, nil, fmt.Errorf("%w: %d accepted and %d rejected words up to length %d",
		ErrNotEnoughExamples, len(accepted), len(rejected), maxLength)
}
