// Package score implements the Score Engine: time-weighted guesser awards,
// the drawer's end-of-round award, and the leaderboard (spec.md §4.8).
package score

import (
	"math"
	"sort"
	"sync"
)

const drawerAwardPerGuesser = 50

// Engine tracks, per room and per round, which players have already been
// awarded — so a duplicate award request (e.g. a retried correct_guess
// dispatch) returns the previously computed value instead of double-paying
// a player.
type Engine struct {
	mu            sync.Mutex
	guesserAwards map[string]map[int]map[string]int // room -> round -> player -> score
	drawerAwards  map[string]map[int]int            // room -> round -> score
}

// NewEngine constructs an empty Score Engine.
func NewEngine() *Engine {
	return &Engine{
		guesserAwards: make(map[string]map[int]map[string]int),
		drawerAwards:  make(map[string]map[int]int),
	}
}

// AwardGuesser computes (or retrieves the already-computed) score for a
// correct guess at elapsedSeconds into a round with the given draw time.
// alreadyAwarded is true when this playerID/round had already been scored,
// in which case score is the previously computed value.
func (e *Engine) AwardGuesser(roomCode string, round int, playerID string, elapsedSeconds float64, drawTimeSeconds int) (score int, alreadyAwarded bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	byRound, ok := e.guesserAwards[roomCode]
	if !ok {
		byRound = make(map[int]map[string]int)
		e.guesserAwards[roomCode] = byRound
	}
	byPlayer, ok := byRound[round]
	if !ok {
		byPlayer = make(map[string]int)
		byRound[round] = byPlayer
	}
	if prior, ok := byPlayer[playerID]; ok {
		return prior, true
	}

	computed := guesserScore(elapsedSeconds, drawTimeSeconds)
	byPlayer[playerID] = computed
	return computed, false
}

// AwardDrawer computes (or retrieves) the drawer's end-of-round award:
// 50 points per player who guessed correctly, awarded once per round.
func (e *Engine) AwardDrawer(roomCode string, round, guesserCount int) (score int, alreadyAwarded bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	byRound, ok := e.drawerAwards[roomCode]
	if !ok {
		byRound = make(map[int]int)
		e.drawerAwards[roomCode] = byRound
	}
	if prior, ok := byRound[round]; ok {
		return prior, true
	}

	computed := drawerAwardPerGuesser * guesserCount
	byRound[round] = computed
	return computed, false
}

// ResetRoom discards all award history for a room — called on startGame
// and resetGame so a fresh game can't be blocked by a stale "already
// awarded" entry from a previous game (spec.md §8 invariant 7).
func (e *Engine) ResetRoom(roomCode string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.guesserAwards, roomCode)
	delete(e.drawerAwards, roomCode)
}

func guesserScore(elapsedSeconds float64, drawTimeSeconds int) int {
	ratio := elapsedSeconds / float64(drawTimeSeconds)
	ratio = clamp(ratio, 0, 1)
	raw := math.Floor(100 + 100*(1-ratio))
	score := int(raw)
	if score < 10 {
		score = 10
	}
	return score
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Entry is one leaderboard row.
type Entry struct {
	PlayerID string
	Name     string
	Score    int
}

// Leaderboard sorts entries by score descending; ties are stable in the
// order they appear in entries (which callers should pass in player
// insertion order, per spec.md §4.8).
func Leaderboard(entries []Entry) []Entry {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})
	return sorted
}
