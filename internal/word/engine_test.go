package word

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prince5723/scribble-backend/internal/apperr"
	"github.com/Prince5723/scribble-backend/internal/game"
)

func TestPoolDedupesAndMerges(t *testing.T) {
	t.Parallel()
	pool := Pool([]string{"cat", "CAT", "  dragon  ", ""})
	seen := make(map[string]int)
	for _, w := range pool {
		seen[w]++
	}
	assert.Equal(t, 1, seen["cat"], "builtin and custom duplicates must collapse to one entry")
	assert.Equal(t, 1, seen["dragon"])
	assert.NotContains(t, pool, "")
}

func TestGenerateOptionsUniqueAndBounded(t *testing.T) {
	t.Parallel()
	pool := []string{"cat", "dog", "bird", "fish"}
	options, err := GenerateOptions(pool)
	require.NoError(t, err)
	assert.Len(t, options, 3)

	seen := make(map[string]bool)
	for _, w := range options {
		assert.False(t, seen[w], "options must be distinct")
		seen[w] = true
		assert.Contains(t, pool, w)
	}
}

func TestGenerateOptionsSmallerPool(t *testing.T) {
	t.Parallel()
	options, err := GenerateOptions([]string{"only"})
	require.NoError(t, err)
	assert.Equal(t, []string{"only"}, options)
}

func TestMask(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "_ _ _", Mask("cat"))
	assert.Equal(t, "_ _ _  _ _ _ _ _", Mask("ice cream"))
}

func TestSelectWord(t *testing.T) {
	t.Parallel()

	t.Run("success transitions to drawing", func(t *testing.T) {
		t.Parallel()
		s, err := game.StartGame([]string{"drawer", "guesser"}, 1)
		require.NoError(t, err)

		err = SelectWord(s, "drawer", "  Cat  ", time.Now())
		require.NoError(t, err)
		assert.Equal(t, game.PhaseDrawing, s.Phase)
		word, ok := s.SelectedWordFor("drawer")
		require.True(t, ok)
		assert.Equal(t, "cat", word)
		assert.Equal(t, "_ _ _", s.MaskedWord)
	})

	t.Run("rejects non-drawer", func(t *testing.T) {
		t.Parallel()
		s, err := game.StartGame([]string{"drawer", "guesser"}, 1)
		require.NoError(t, err)

		err = SelectWord(s, "guesser", "cat", time.Now())
		require.Error(t, err)
		assert.True(t, apperr.Is(err, apperr.NotDrawer))
	})

	t.Run("second select in same round fails", func(t *testing.T) {
		t.Parallel()
		s, err := game.StartGame([]string{"drawer", "guesser"}, 1)
		require.NoError(t, err)
		require.NoError(t, SelectWord(s, "drawer", "cat", time.Now()))

		err = SelectWord(s, "drawer", "dog", time.Now())
		require.Error(t, err)
		assert.True(t, apperr.Is(err, apperr.WrongPhase))
	})
}

func TestAutoSelectWord(t *testing.T) {
	t.Parallel()
	s, err := game.StartGame([]string{"drawer", "guesser"}, 1)
	require.NoError(t, err)

	picked, err := AutoSelectWord(s, []string{"cat", "dog"}, time.Now())
	require.NoError(t, err)
	assert.Contains(t, []string{"cat", "dog"}, picked)
	assert.Equal(t, game.PhaseDrawing, s.Phase)
}
