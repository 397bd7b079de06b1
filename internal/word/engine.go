// Package word implements the Word Engine: pool composition, unbiased
// option generation, selection with secrecy, and masking (spec.md §4.4).
package word

import (
	"crypto/rand"
	"math/big"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/Prince5723/scribble-backend/internal/apperr"
	"github.com/Prince5723/scribble-backend/internal/game"
)

const optionCount = 3

// Pool returns the word pool for a room: the builtin list union the room's
// custom words (already normalized by settings validation), deduplicated.
func Pool(customWords []string) []string {
	seen := make(map[string]bool, len(builtinWords)+len(customWords))
	pool := make([]string, 0, len(builtinWords)+len(customWords))
	for _, w := range builtinWords {
		if !seen[w] {
			seen[w] = true
			pool = append(pool, w)
		}
	}
	for _, w := range customWords {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" && !seen[w] {
			seen[w] = true
			pool = append(pool, w)
		}
	}
	return pool
}

// GenerateOptions samples up to optionCount distinct words uniformly
// without replacement from pool. Sampling never persists the pool or the
// picked options anywhere outside the returned slice.
func GenerateOptions(pool []string) ([]string, error) {
	n := optionCount
	if len(pool) < n {
		n = len(pool)
	}
	remaining := append([]string(nil), pool...)
	options := make([]string, 0, n)
	for i := 0; i < n; i++ {
		idx, err := randIndex(len(remaining))
		if err != nil {
			return nil, err
		}
		options = append(options, remaining[idx])
		remaining = lo.Filter(remaining, func(_ string, i int) bool { return i != idx })
	}
	return options, nil
}

func randIndex(n int) (int, error) {
	if n <= 0 {
		return 0, nil
	}
	idx, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(idx.Int64()), nil
}

// Normalize trims and lowercases a raw word/guess.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// SelectWord is called when the drawer picks a word. Requires phase ==
// word_select and requesterID == the game's drawer.
func SelectWord(s *game.State, requesterID, rawWord string, at time.Time) error {
	if s.Phase != game.PhaseWordSelect {
		return apperr.New(apperr.WrongPhase)
	}
	if requesterID != s.DrawerID {
		return apperr.New(apperr.NotDrawer)
	}
	word := Normalize(rawWord)
	s.SetSelectedWord(word, Mask(word), at)
	return s.TransitionPhase(game.PhaseDrawing)
}

// AutoSelectWord is called by the Timer Service when word selection expires
// without the drawer choosing. It mirrors SelectWord but skips the phase
// and drawer checks (the caller is trusted, not a client) and picks the
// first generated option; it fails only when no option can be generated.
func AutoSelectWord(s *game.State, pool []string, at time.Time) (string, error) {
	options, err := GenerateOptions(pool)
	if err != nil {
		return "", err
	}
	if len(options) == 0 {
		return "", apperr.New(apperr.NoWord)
	}
	word := options[0]
	s.SetSelectedWord(word, Mask(word), at)
	if err := s.TransitionPhase(game.PhaseDrawing); err != nil {
		return "", err
	}
	return word, nil
}

// ClearWordSelection nulls the secret word and mask without changing phase.
func ClearWordSelection(s *game.State) {
	s.ClearSelection()
}

// Mask renders the client-safe display form of word: each space-separated
// word is masked to one underscore per letter joined by single spaces, and
// the words themselves are joined by a double space, so a preserved word
// boundary contributes exactly one extra space (e.g. "ice cream" ->
// "_ _ _  _ _ _ _ _").
func Mask(word string) string {
	words := strings.Split(word, " ")
	masked := make([]string, len(words))
	for i, w := range words {
		letters := make([]string, len([]rune(w)))
		for j := range letters {
			letters[j] = "_"
		}
		masked[i] = strings.Join(letters, " ")
	}
	return strings.Join(masked, "  ")
}
