package automaton

// DefaultSinkState labels the non-accepting state that Union, Difference and Complete route
// undefined transitions to.
const DefaultSinkState State = "∅"

type productOptions struct {
	sink State
}

type ProductOption func(options *productOptions)

// WithSinkState sets the label of the sink state. If an operand already has a state with this
// label, that state is reused as the sink.
func WithSinkState(sink State) ProductOption {
	return func(options *productOptions) {
		options.sink = sink
	}
}

func newProductOptions(opts ...ProductOption) *productOptions {
	options := &productOptions{
		sink: DefaultSinkState,
	}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// PairState Returns the label of the product state made of s1 and s2, "(s1, s2)".
func PairState(s1, s2 State) State {
	return "(" + s1 + ", " + s2 + ")"
}

// Complement Returns an automaton with the same states, alphabet, transitions and start state as
// d, accepting exactly the states d rejects. d must be total over its alphabet, otherwise the
// words that hit a missing transition are rejected by both d and its complement; use Complete
// first.
func Complement(d *DFA) *DFA {
	return NewDFA(d.states, d.alphabet, d.transitions, d.start, d.states.Difference(d.accept))
}

// Complete Returns a copy of d in which every missing transition over the alphabet of d goes to
// the sink state. The sink loops on every symbol and never accepts, unless WithSinkState names
// an existing state. A total d is returned as an equal copy without a sink.
func Complete(d *DFA, opts ...ProductOption) *DFA {
	options := newProductOptions(opts...)
	c := complete(d, d.alphabet.Sorted(), options.sink)
	if c == d {
		return NewDFA(d.states, d.alphabet, d.transitions, d.start, d.accept)
	}
	return c
}

// complete returns d itself when it is total over symbols and a totalized copy otherwise.
func complete(d *DFA, symbols []Symbol, sink State) *DFA {
	if d.isTotalOver(symbols) {
		return d
	}

	result := NewDFA(d.states, d.alphabet, d.transitions, d.start, d.accept)
	result.states.Add(sink)
	for _, state := range result.states.Sorted() {
		for _, symbol := range symbols {
			if _, err := result.Step(state, symbol); err != nil {
				result.AddTransition(state, symbol, sink)
			}
		}
	}
	return result
}

// Intersection Returns the product automaton accepting the words accepted by both a and b.
// Every pair of states is materialized, reachable or not, so the result has exactly
// a.NumStates()*b.NumStates() states over the alphabet of a. Both operands must be total: a
// missing transition fails with an *UndefinedTransitionError.
func Intersection(a, b *DFA) (*DFA, error) {
	return product(a, b, func(x, y bool) bool { return x && y })
}

// Union Returns the product automaton accepting the words accepted by a or b, over the alphabet
// of a. Unlike Intersection, a missing transition in either operand is routed to the sink
// state, which then joins that operand's states in the product. Total operands give exactly
// a.NumStates()*b.NumStates() states.
func Union(a, b *DFA, opts ...ProductOption) (*DFA, error) {
	return sinkProduct(a, b, func(x, y bool) bool { return x || y }, opts...)
}

// Difference Returns the product automaton accepting the words accepted by a and not by b. It
// is built like Union, with the same sink fallback for missing transitions.
func Difference(a, b *DFA, opts ...ProductOption) (*DFA, error) {
	return sinkProduct(a, b, func(x, y bool) bool { return x && !y }, opts...)
}

func sinkProduct(a, b *DFA, accept func(x, y bool) bool, opts ...ProductOption) (*DFA, error) {
	options := newProductOptions(opts...)
	symbols := a.alphabet.Sorted()
	return product(complete(a, symbols, options.sink), complete(b, symbols, options.sink), accept)
}

func product(a, b *DFA, accept func(x, y bool) bool) (*DFA, error) {
	symbols := a.alphabet.Sorted()
	left := a.states.Sorted()
	right := b.states.Sorted()

	result := &DFA{
		states:      make(StateSet, len(left)*len(right)),
		alphabet:    a.alphabet.Clone(),
		transitions: make(Transitions, len(left)*len(right)),
		start:       PairState(a.start, b.start),
		accept:      make(StateSet),
	}

	for _, s1 := range left {
		for _, s2 := range right {
			state := PairState(s1, s2)
			result.states.Add(state)
			if accept(a.IsAccept(s1), b.IsAccept(s2)) {
				result.accept.Add(state)
			}

			row := make(map[Symbol]State, len(symbols))
			for _, symbol := range symbols {
				next1, err := a.Step(s1, symbol)
				if err != nil {
					return nil, err
				}
				next2, err := b.Step(s2, symbol)
				if err != nil {
					return nil, err
				}
				row[symbol] = PairState(next1, next2)
			}
			result.transitions[state] = row
		}
	}
	return result, nil
}
