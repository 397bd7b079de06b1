// Package room implements the Room Registry: room lifecycle, membership,
// settings, and the drawer-safe/spectator-safe serializations (spec.md
// §3, §4.2). Game-phase mutation is delegated to internal/game; Room's own
// wrapper methods are the only places Status and Game.Phase are allowed to
// move together, keeping spec.md §3's
// "status=in_game ⇔ game≠null ⇔ phase∈{...}" invariant true by
// construction — nothing outside these wrappers assigns Status.
package room

import (
	"github.com/Prince5723/scribble-backend/internal/apperr"
	"github.com/Prince5723/scribble-backend/internal/game"
)

// Status is a room's coarse lifecycle state.
type Status string

const (
	StatusWaiting  Status = "waiting"
	StatusInGame   Status = "in_game"
	StatusFinished Status = "finished"
)

// Room is one game room's authoritative state.
type Room struct {
	Code      string
	OwnerID   string
	PlayerIDs []string
	Settings  Settings
	Status    Status
	Game      *game.State
}

func newRoom(code, ownerID string, settings Settings) *Room {
	return &Room{
		Code:      code,
		OwnerID:   ownerID,
		PlayerIDs: []string{ownerID},
		Settings:  settings,
		Status:    StatusWaiting,
	}
}

func (r *Room) setPhase(phase game.Phase) {
	if phase == game.PhaseGameEnd {
		r.Status = StatusFinished
		return
	}
	r.Status = StatusInGame
}

// HasMember reports whether playerID is currently a member of the room.
func (r *Room) HasMember(playerID string) bool {
	for _, id := range r.PlayerIDs {
		if id == playerID {
			return true
		}
	}
	return false
}

// IndexOf returns the index of playerID in PlayerIDs, or -1.
func (r *Room) IndexOf(playerID string) int {
	for i, id := range r.PlayerIDs {
		if id == playerID {
			return i
		}
	}
	return -1
}

func (r *Room) removeMember(playerID string) {
	idx := r.IndexOf(playerID)
	if idx < 0 {
		return
	}
	r.PlayerIDs = append(r.PlayerIDs[:idx], r.PlayerIDs[idx+1:]...)
}

// StartGame begins a new game (spec.md §4.3). Requires waiting status,
// owner-only, and at least 2 members.
func (r *Room) StartGame(requesterID string) error {
	if r.Status != StatusWaiting {
		return apperr.New(apperr.NotWaiting)
	}
	if requesterID != r.OwnerID {
		return apperr.New(apperr.NotOwner)
	}
	gs, err := game.StartGame(r.PlayerIDs, r.Settings.Rounds)
	if err != nil {
		return err
	}
	r.Game = gs
	r.setPhase(gs.Phase)
	return nil
}

// EndRound transitions the game to round_end.
func (r *Room) EndRound() game.EndRoundResult {
	res := r.Game.EndRound()
	r.setPhase(r.Game.Phase)
	return res
}

// ProgressToNextDrawer advances the drawer (and round, on wrap) and starts
// the next round's word_select phase.
func (r *Room) ProgressToNextDrawer() game.ProgressResult {
	res := r.Game.ProgressToNextDrawer()
	r.setPhase(r.Game.Phase)
	return res
}

// EndGame transitions to game_end and finishes the room.
func (r *Room) EndGame() int {
	rounds := r.Game.EndGame()
	r.setPhase(r.Game.Phase)
	return rounds
}

// ResetGame clears game state and returns the room to waiting, ready for a
// play-again (spec.md §4.3 resetGame).
func (r *Room) ResetGame() {
	r.Game = nil
	r.Status = StatusWaiting
}
