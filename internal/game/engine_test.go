package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prince5723/scribble-backend/internal/apperr"
)

func TestStartGame(t *testing.T) {
	t.Parallel()

	t.Run("too few players", func(t *testing.T) {
		t.Parallel()
		_, err := StartGame([]string{"p1"}, 3)
		require.Error(t, err)
		assert.True(t, apperr.Is(err, apperr.TooFewPlayers))
	})

	t.Run("freezes player order", func(t *testing.T) {
		t.Parallel()
		order := []string{"p1", "p2", "p3"}
		s, err := StartGame(order, 2)
		require.NoError(t, err)
		order[0] = "mutated"
		assert.Equal(t, "p1", s.PlayerOrder[0], "StartGame must copy the order, not alias it")
		assert.Equal(t, PhaseWordSelect, s.Phase)
		assert.Equal(t, 1, s.CurrentRound)
		assert.Equal(t, "p1", s.DrawerID)
		assert.Empty(t, s.GuessedPlayers)
	})
}

func TestProgressToNextDrawer(t *testing.T) {
	t.Parallel()
	s, err := StartGame([]string{"p1", "p2"}, 2)
	require.NoError(t, err)

	res := s.ProgressToNextDrawer()
	assert.False(t, res.RoundIncremented)
	assert.Equal(t, "p2", s.DrawerID)
	assert.Equal(t, 1, s.CurrentRound)

	res = s.ProgressToNextDrawer()
	assert.True(t, res.RoundIncremented)
	assert.Equal(t, "p1", s.DrawerID)
	assert.Equal(t, 2, s.CurrentRound)
}

func TestEndRound(t *testing.T) {
	t.Parallel()
	s, err := StartGame([]string{"p1", "p2"}, 1)
	require.NoError(t, err)

	res := s.EndRound()
	assert.False(t, res.IsLastDrawer)
	assert.False(t, res.GameEnded)
	assert.Equal(t, PhaseRoundEnd, s.Phase)

	s.ProgressToNextDrawer()
	res = s.EndRound()
	assert.True(t, res.IsLastDrawer)
	assert.True(t, res.IsLastRound)
	assert.True(t, res.GameEnded)
}

func TestWordSecrecy(t *testing.T) {
	t.Parallel()
	s, err := StartGame([]string{"drawer", "guesser"}, 1)
	require.NoError(t, err)

	s.SetSelectedWord("cat", "_ _ _", time.Now())

	word, ok := s.SelectedWordFor("drawer")
	assert.True(t, ok)
	assert.Equal(t, "cat", word)

	word, ok = s.SelectedWordFor("guesser")
	assert.False(t, ok)
	assert.Empty(t, word)

	assert.True(t, s.HasSelectedWord())
	assert.True(t, s.IsCorrectGuess("cat"))
	assert.False(t, s.IsCorrectGuess("dog"))
	assert.Equal(t, 0, s.DistanceTo("cat"))
	assert.Greater(t, s.DistanceTo("cot"), -1)

	s.ClearSelection()
	assert.False(t, s.HasSelectedWord())
	assert.Equal(t, -1, s.DistanceTo("cat"))
}

func TestRevealBypassesSecrecyGate(t *testing.T) {
	t.Parallel()
	s, err := StartGame([]string{"drawer", "guesser"}, 1)
	require.NoError(t, err)
	s.SetSelectedWord("cat", "_ _ _", time.Now())

	assert.Equal(t, "cat", s.Reveal(), "Reveal is for the spec's explicit correct_guess/round_ended broadcast points")
}

func TestTransitionPhaseRejectsUnknown(t *testing.T) {
	t.Parallel()
	s, err := StartGame([]string{"p1", "p2"}, 1)
	require.NoError(t, err)

	err = s.TransitionPhase(Phase("not_a_phase"))
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.UnknownPhase))
}
