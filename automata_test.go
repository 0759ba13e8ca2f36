package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutomata(t *testing.T) {
	ab := AlphabetOf("ab")

	t.Run("MakeEmpty", func(t *testing.T) {
		d := defaultAutomata.MakeEmpty(ab)
		assert.True(t, d.IsTotal())
		for _, word := range allWords(ab, 4) {
			assert.False(t, mustAccept(t, d, word), "word %q", word)
		}
	})

	t.Run("MakeEmptyString", func(t *testing.T) {
		d := defaultAutomata.MakeEmptyString(ab)
		assert.True(t, d.IsTotal())
		for _, word := range allWords(ab, 4) {
			assert.Equal(t, word == "", mustAccept(t, d, word), "word %q", word)
		}
	})

	t.Run("MakeAnyString", func(t *testing.T) {
		d := defaultAutomata.MakeAnyString(ab)
		for _, word := range allWords(ab, 4) {
			assert.True(t, mustAccept(t, d, word), "word %q", word)
		}
	})

	t.Run("MakeString", func(t *testing.T) {
		d, err := defaultAutomata.MakeString(ab, "aba")
		require.NoError(t, err)
		assert.NoError(t, d.Validate())
		for _, word := range allWords(ab, 5) {
			assert.Equal(t, word == "aba", mustAccept(t, d, word), "word %q", word)
		}

		_, err = defaultAutomata.MakeString(ab, "abc")
		assert.Error(t, err)
	})
}
