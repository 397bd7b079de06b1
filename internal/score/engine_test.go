package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAwardGuesserFormula(t *testing.T) {
	t.Parallel()
	e := NewEngine()

	// spec.md §8 scenario 2: 10s into an 80s draw time -> 187.
	got, already := e.AwardGuesser("room1", 1, "p2", 10, 80)
	assert.False(t, already)
	assert.Equal(t, 187, got)
}

func TestAwardGuesserFloor(t *testing.T) {
	t.Parallel()
	e := NewEngine()
	got, _ := e.AwardGuesser("room1", 1, "p1", 1000, 80)
	assert.Equal(t, 100, got, "elapsed time past drawTime clamps the ratio to 1, the lowest award")
}

func TestAwardGuesserOncePerRound(t *testing.T) {
	t.Parallel()
	e := NewEngine()
	first, already := e.AwardGuesser("room1", 1, "p1", 5, 80)
	assert.False(t, already)

	second, already := e.AwardGuesser("room1", 1, "p1", 75, 80)
	assert.True(t, already)
	assert.Equal(t, first, second, "a duplicate award must return the original value, not recompute")
}

func TestAwardGuesserResetsAcrossRounds(t *testing.T) {
	t.Parallel()
	e := NewEngine()
	e.AwardGuesser("room1", 1, "p1", 5, 80)
	_, already := e.AwardGuesser("room1", 2, "p1", 5, 80)
	assert.False(t, already, "a new round must allow a fresh award for the same player")
}

func TestAwardDrawer(t *testing.T) {
	t.Parallel()
	e := NewEngine()
	got, already := e.AwardDrawer("room1", 1, 3)
	assert.False(t, already)
	assert.Equal(t, 150, got)

	got, already = e.AwardDrawer("room1", 1, 99)
	assert.True(t, already)
	assert.Equal(t, 150, got)
}

func TestResetRoom(t *testing.T) {
	t.Parallel()
	e := NewEngine()
	e.AwardGuesser("room1", 1, "p1", 5, 80)
	e.AwardDrawer("room1", 1, 1)

	e.ResetRoom("room1")

	_, already := e.AwardGuesser("room1", 1, "p1", 5, 80)
	assert.False(t, already, "resetting a room must clear prior award history")
}

func TestLeaderboardStableSort(t *testing.T) {
	t.Parallel()
	entries := []Entry{
		{PlayerID: "p1", Name: "Alice", Score: 50},
		{PlayerID: "p2", Name: "Bob", Score: 187},
		{PlayerID: "p3", Name: "Carl", Score: 187},
	}
	board := Leaderboard(entries)
	assert.Equal(t, "p2", board[0].PlayerID)
	assert.Equal(t, "p3", board[1].PlayerID, "ties must keep original insertion order")
	assert.Equal(t, "p1", board[2].PlayerID)
}
