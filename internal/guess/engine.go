// Package guess implements the Guess Engine: normalization, validation,
// and strict-equality adjudication of guesses (spec.md §4.7), plus a
// supplemental close-guess hint that never weakens word secrecy.
package guess

import (
	"github.com/Prince5723/scribble-backend/internal/apperr"
	"github.com/Prince5723/scribble-backend/internal/game"
	"github.com/Prince5723/scribble-backend/internal/word"
)

const (
	minLength              = 1
	maxLength              = 50
	closeDistanceThreshold = 2
)

// Normalize trims and lowercases a raw guess.
func Normalize(raw string) string {
	return word.Normalize(raw)
}

// Outcome is the result of adjudicating one guess.
type Outcome struct {
	Correct      bool
	IsClose      bool // within closeDistanceThreshold but not correct
	EditDistance int  // only meaningful when IsClose
}

// Validate checks every precondition from spec.md §4.7 other than the
// guess's own format, which ValidateFormat covers separately so callers can
// distinguish too_short/too_long from the phase/identity errors.
func Validate(s *game.State, playerID string) error {
	if s.Phase != game.PhaseDrawing {
		return apperr.New(apperr.WrongPhase)
	}
	if playerID == s.DrawerID {
		return apperr.New(apperr.DrawerCannotGuess)
	}
	if s.GuessedPlayers[playerID] {
		return apperr.New(apperr.AlreadyGuessed)
	}
	if !s.HasSelectedWord() {
		return apperr.New(apperr.NoWord)
	}
	return nil
}

// ValidateFormat checks the normalized guess's length.
func ValidateFormat(normalized string) error {
	if len(normalized) < minLength {
		return apperr.New(apperr.TooShort)
	}
	if len(normalized) > maxLength {
		return apperr.New(apperr.TooLong)
	}
	return nil
}

// Adjudicate validates and scores one guess against the room's current game
// state. On a correct guess, playerID is added to s.GuessedPlayers exactly
// once. Format or precondition failures are returned as errors and never
// mutate state.
func Adjudicate(s *game.State, playerID, rawGuess string) (Outcome, error) {
	normalized := Normalize(rawGuess)
	if err := ValidateFormat(normalized); err != nil {
		return Outcome{}, err
	}
	if err := Validate(s, playerID); err != nil {
		return Outcome{}, err
	}

	if s.IsCorrectGuess(normalized) {
		s.GuessedPlayers[playerID] = true
		return Outcome{Correct: true}, nil
	}

	dist := s.DistanceTo(normalized)
	if dist >= 0 && dist <= closeDistanceThreshold {
		return Outcome{IsClose: true, EditDistance: dist}, nil
	}
	return Outcome{}, nil
}

// AllGuessersGuessed reports whether every non-drawer member has guessed
// correctly this round.
func AllGuessersGuessed(guessedPlayers map[string]bool, totalPlayers int) bool {
	return len(guessedPlayers) >= totalPlayers-1
}
