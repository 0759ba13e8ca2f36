package automaton

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplement(t *testing.T) {
	d := newABC()
	c := Complement(d)

	assert.Equal(t, []State{"A", "E"}, c.AcceptStates())
	assert.Equal(t, d.States(), c.States())
	assert.Equal(t, d.Start(), c.Start())

	for _, word := range allWords(d.Alphabet(), 6) {
		assert.Equal(t, !mustAccept(t, d, word), mustAccept(t, c, word), "word %q", word)
	}

	t.Run("double complement", func(t *testing.T) {
		cc := Complement(c)
		assert.Equal(t, d.AcceptStates(), cc.AcceptStates())
		for _, word := range allWords(d.Alphabet(), 6) {
			assert.Equal(t, mustAccept(t, d, word), mustAccept(t, cc, word), "word %q", word)
		}
	})

	t.Run("does not alias the operand", func(t *testing.T) {
		c.AddTransition("A", 'a', "A")
		next, err := d.Step("A", 'a')
		require.NoError(t, err)
		assert.Equal(t, State("C"), next)
	})
}

func TestPairState(t *testing.T) {
	assert.Equal(t, State("(A, X)"), PairState("A", "X"))
	assert.Equal(t, PairState("A", "X"), PairState("A", "X"))
	assert.NotEqual(t, PairState("A", "X"), PairState("X", "A"))
}

func TestProducts(t *testing.T) {
	a, b := newABC(), newXYZ()

	intersection, err := Intersection(a, b)
	require.NoError(t, err)
	union, err := Union(a, b)
	require.NoError(t, err)
	difference, err := Difference(a, b)
	require.NoError(t, err)

	for _, d := range []*DFA{intersection, union, difference} {
		assert.Equal(t, 12, d.NumStates())
		assert.Equal(t, PairState("A", "X"), d.Start())
		assert.NoError(t, d.Validate())
	}

	assert.Equal(t, []State{"(B, X)", "(B, Y)", "(C, X)", "(C, Y)"}, intersection.AcceptStates())

	for _, word := range allWords(a.Alphabet(), 6) {
		inA, inB := mustAccept(t, a, word), mustAccept(t, b, word)
		assert.Equal(t, inA && inB, mustAccept(t, intersection, word), "intersection %q", word)
		assert.Equal(t, inA || inB, mustAccept(t, union, word), "union %q", word)
		assert.Equal(t, inA && !inB, mustAccept(t, difference, word), "difference %q", word)
	}

	count, members, err := difference.CountMembers(5)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, []string{"aa"}, members)
}

func TestProducts_PartialOperand(t *testing.T) {
	a, p := newABC(), newPartial()

	t.Run("intersection requires total operands", func(t *testing.T) {
		_, err := Intersection(a, p)
		var undefined *UndefinedTransitionError
		require.True(t, errors.As(err, &undefined))
		assert.Equal(t, State("p"), undefined.State)
		assert.Equal(t, 'b', undefined.Symbol)
	})

	t.Run("union falls back to the sink", func(t *testing.T) {
		union, err := Union(a, p)
		require.NoError(t, err)
		assert.Equal(t, 4*3, union.NumStates())
		assert.NoError(t, union.Validate())

		assert.True(t, mustAccept(t, union, "a"))
		assert.True(t, mustAccept(t, union, "b"))
		assert.True(t, mustAccept(t, union, "aba"))
		assert.False(t, mustAccept(t, union, "bb"))
		assert.False(t, mustAccept(t, union, "abb"))
	})

	t.Run("difference falls back to the sink", func(t *testing.T) {
		difference, err := Difference(p, a)
		require.NoError(t, err)
		assert.Equal(t, 3*4, difference.NumStates())

		assert.True(t, mustAccept(t, difference, "aba"))
		assert.False(t, mustAccept(t, difference, "a"))
		assert.False(t, mustAccept(t, difference, "b"))
	})

	t.Run("custom sink", func(t *testing.T) {
		union, err := Union(a, p, WithSinkState("dead"))
		require.NoError(t, err)
		assert.Contains(t, union.States(), PairState("E", "dead"))
		assert.NotContains(t, union.States(), PairState("E", DefaultSinkState))
	})
}

func TestComplete(t *testing.T) {
	c := Complete(newPartial())
	assert.True(t, c.IsTotal())
	assert.Equal(t, []State{"p", "q", DefaultSinkState}, c.States())
	assert.False(t, c.IsAccept(DefaultSinkState))

	ok, err := c.Accepts("b")
	require.NoError(t, err)
	assert.False(t, ok)

	t.Run("existing state as sink", func(t *testing.T) {
		c := Complete(newPartial(), WithSinkState("q"))
		assert.Equal(t, []State{"p", "q"}, c.States())
		assert.True(t, mustAccept(t, c, "b"))
	})

	t.Run("total automaton is unchanged", func(t *testing.T) {
		c := Complete(newABC())
		assert.Equal(t, newABC().States(), c.States())
		assert.Equal(t, newABC().Transitions(), c.Transitions())
	})

	t.Run("complement after completion", func(t *testing.T) {
		p := newPartial()
		cc := Complement(Complete(p))
		for _, word := range allWords(p.Alphabet(), 5) {
			assert.Equal(t, !Run(p, word), mustAccept(t, cc, word), "word %q", word)
		}
	})
}
