// Package game implements the Game Engine: the per-room phase state
// machine described in spec.md §4.3. All operations are synchronous, pure
// with respect to I/O, and intended to be called only from the single
// goroutine that owns a room (see internal/router).
package game

import (
	"time"

	"github.com/agnivade/levenshtein"

	"github.com/Prince5723/scribble-backend/internal/apperr"
)

// Phase is one of the four states a game can be in.
type Phase string

const (
	PhaseWordSelect Phase = "word_select"
	PhaseDrawing    Phase = "drawing"
	PhaseRoundEnd   Phase = "round_end"
	PhaseGameEnd    Phase = "game_end"
)

// State is the authoritative per-room game state. selectedWord is
// unexported: the only ways to read it are SelectedWordFor, which enforces
// spec.md §3's secrecy invariant by construction, and Reveal, for the
// round's reveal broadcasts — no package outside game can reach the field
// directly.
type State struct {
	Phase          Phase
	CurrentRound   int
	TotalRounds    int
	PlayerOrder    []string // frozen at StartGame; see DESIGN.md "Drawer rotation"
	DrawerIndex    int
	DrawerID       string
	RoundStartTime time.Time
	MaskedWord     string
	GuessedPlayers map[string]bool

	selectedWord string
}

// StartGame begins a new game for a room currently in "waiting" status.
// Callers (the Room Registry / Event Router) are responsible for checking
// ownership and status before calling this; StartGame itself re-validates
// the player-count precondition since that's intrinsic to the engine.
func StartGame(playerOrder []string, totalRounds int) (*State, error) {
	if len(playerOrder) < 2 {
		return nil, apperr.New(apperr.TooFewPlayers)
	}
	order := make([]string, len(playerOrder))
	copy(order, playerOrder)
	s := &State{
		Phase:          PhaseWordSelect,
		CurrentRound:   1,
		TotalRounds:    totalRounds,
		PlayerOrder:    order,
		DrawerIndex:    0,
		DrawerID:       order[0],
		GuessedPlayers: make(map[string]bool),
	}
	return s, nil
}

// StartRound resets guessedPlayers and sets phase to word_select, keeping
// the current round number and drawer index (set by the prior rotation).
func (s *State) StartRound() {
	s.GuessedPlayers = make(map[string]bool)
	s.MaskedWord = ""
	s.selectedWord = ""
	s.Phase = PhaseWordSelect
}

// EndRoundResult reports the rotation facts the caller needs to decide
// whether to progress to the next drawer or end the game.
type EndRoundResult struct {
	IsLastDrawer bool
	IsLastRound  bool
	GameEnded    bool
}

// EndRound transitions to round_end and reports whether this was the last
// drawer of the last round.
func (s *State) EndRound() EndRoundResult {
	s.Phase = PhaseRoundEnd
	isLastDrawer := s.DrawerIndex == len(s.PlayerOrder)-1
	isLastRound := s.CurrentRound >= s.TotalRounds
	return EndRoundResult{
		IsLastDrawer: isLastDrawer,
		IsLastRound:  isLastRound,
		GameEnded:    isLastDrawer && isLastRound,
	}
}

// ProgressResult reports whether advancing the drawer wrapped into a new
// round.
type ProgressResult struct {
	RoundIncremented bool
}

// ProgressToNextDrawer advances the drawer index, wrapping into a new round
// when it runs past the end of PlayerOrder, then starts the next round.
func (s *State) ProgressToNextDrawer() ProgressResult {
	s.DrawerIndex++
	incremented := false
	if s.DrawerIndex >= len(s.PlayerOrder) {
		s.DrawerIndex = 0
		s.CurrentRound++
		incremented = true
	}
	s.DrawerID = s.PlayerOrder[s.DrawerIndex]
	s.StartRound()
	return ProgressResult{RoundIncremented: incremented}
}

// EndGame transitions to game_end and reports the number of rounds
// actually played.
func (s *State) EndGame() int {
	s.Phase = PhaseGameEnd
	return s.CurrentRound
}

// TransitionPhase is the internal guard the Word Engine uses to move from
// word_select to drawing. It rejects unknown phase names.
func (s *State) TransitionPhase(to Phase) error {
	switch to {
	case PhaseWordSelect, PhaseDrawing, PhaseRoundEnd, PhaseGameEnd:
		s.Phase = to
		return nil
	default:
		return apperr.New(apperr.UnknownPhase)
	}
}

// SetSelectedWord stores the server-only secret word and its masked display
// form, and starts the round-start clock. This is the only entry point
// that ever writes selectedWord.
func (s *State) SetSelectedWord(word, masked string, at time.Time) {
	s.selectedWord = word
	s.MaskedWord = masked
	s.RoundStartTime = at
}

// SelectedWordFor returns the secret word, but only to the drawer; every
// other caller gets ("", false). This is the enforcement point for
// spec.md §3 invariant 3 ("selectedWord is readable only by the Word
// Engine and never serialized to any client except the drawer").
func (s *State) SelectedWordFor(requesterID string) (string, bool) {
	if requesterID != s.DrawerID {
		return "", false
	}
	return s.selectedWord, true
}

// Reveal returns the secret word unconditionally. Unlike SelectedWordFor,
// it has no requester gate — callers must only use it at the two points
// the spec explicitly marks as reveals to every member (correct_guess,
// round_ended), never for an ordinary serialization.
func (s *State) Reveal() string {
	return s.selectedWord
}

// HasSelectedWord reports whether a word has been chosen this round,
// without revealing it.
func (s *State) HasSelectedWord() bool {
	return s.selectedWord != ""
}

// ClearSelection nulls the secret word and its mask without changing phase
// or round bookkeeping — used by the Word Engine's clearWordSelection.
func (s *State) ClearSelection() {
	s.selectedWord = ""
	s.MaskedWord = ""
}

// IsCorrectGuess compares an already-normalized guess against the secret
// word without ever exposing selectedWord itself outside this package —
// this is the Guess Engine's only way to adjudicate correctness.
func (s *State) IsCorrectGuess(normalizedGuess string) bool {
	return s.selectedWord != "" && normalizedGuess == s.selectedWord
}

// DistanceTo returns the Levenshtein edit distance between an
// already-normalized guess and the secret word, without ever exposing the
// word itself — the Guess Engine uses this only to offer a supplemental
// "close guess" hint to the guesser, never to reveal the word.
func (s *State) DistanceTo(normalizedGuess string) int {
	if s.selectedWord == "" {
		return -1
	}
	return levenshtein.ComputeDistance(normalizedGuess, s.selectedWord)
}
