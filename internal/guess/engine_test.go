package guess

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prince5723/scribble-backend/internal/apperr"
	"github.com/Prince5723/scribble-backend/internal/game"
)

func newDrawingState(t *testing.T, word string) *game.State {
	t.Helper()
	s, err := game.StartGame([]string{"drawer", "guesser"}, 1)
	require.NoError(t, err)
	s.SetSelectedWord(word, "_ _ _", time.Now())
	require.NoError(t, s.TransitionPhase(game.PhaseDrawing))
	return s
}

func TestAdjudicateCorrectGuess(t *testing.T) {
	t.Parallel()
	s := newDrawingState(t, "cat")

	outcome, err := Adjudicate(s, "guesser", "  Cat ")
	require.NoError(t, err)
	assert.True(t, outcome.Correct)
	assert.True(t, s.GuessedPlayers["guesser"])
}

func TestAdjudicateDuplicateGuess(t *testing.T) {
	t.Parallel()
	s := newDrawingState(t, "cat")
	_, err := Adjudicate(s, "guesser", "cat")
	require.NoError(t, err)

	_, err = Adjudicate(s, "guesser", "cat")
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.AlreadyGuessed))
}

func TestAdjudicateDrawerCannotGuess(t *testing.T) {
	t.Parallel()
	s := newDrawingState(t, "cat")
	_, err := Adjudicate(s, "drawer", "cat")
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.DrawerCannotGuess))
}

func TestAdjudicateWrongPhase(t *testing.T) {
	t.Parallel()
	s, err := game.StartGame([]string{"drawer", "guesser"}, 1)
	require.NoError(t, err)

	_, err = Adjudicate(s, "guesser", "cat")
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.WrongPhase))
}

func TestAdjudicateCloseGuess(t *testing.T) {
	t.Parallel()
	s := newDrawingState(t, "cat")

	outcome, err := Adjudicate(s, "guesser", "cot")
	require.NoError(t, err)
	assert.False(t, outcome.Correct)
	assert.True(t, outcome.IsClose)
	assert.Equal(t, 1, outcome.EditDistance)
}

func TestAdjudicateFormat(t *testing.T) {
	t.Parallel()
	s := newDrawingState(t, "cat")

	_, err := Adjudicate(s, "guesser", "")
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.TooShort))

	long := make([]byte, 51)
	for i := range long {
		long[i] = 'a'
	}
	_, err = Adjudicate(s, "guesser", string(long))
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.TooLong))
}

func TestAllGuessersGuessed(t *testing.T) {
	t.Parallel()
	assert.False(t, AllGuessersGuessed(map[string]bool{"a": true}, 3))
	assert.True(t, AllGuessersGuessed(map[string]bool{"a": true, "b": true}, 3))
}
