// Package player implements the Player Registry: the process-wide mapping
// from a transport session handle to a player identity, and from a player
// id to the same identity. Two indices are maintained so both lookup
// directions stay O(1), matching spec.md §4.1.
package player

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/Prince5723/scribble-backend/internal/apperr"
	"github.com/Prince5723/scribble-backend/internal/identity"
)

const maxNameLength = 20

// Player is one connected client's identity and metadata. RoomCode is
// empty when the player belongs to no room.
type Player struct {
	ID       string
	Name     string
	RoomCode string
	Score    int

	// session is the opaque transport-session handle (a *transportws.Conn
	// in production, any comparable value in tests). It is compared by
	// identity only and never serialized.
	session any
}

// Registry is the process-wide Player Registry. All operations are
// safe for concurrent use; read-only lookups may run concurrently with
// each other.
type Registry struct {
	mu        sync.RWMutex
	bySession map[any]*Player
	byID      map[string]*Player
}

// NewRegistry constructs an empty Player Registry.
func NewRegistry() *Registry {
	return &Registry{
		bySession: make(map[any]*Player),
		byID:      make(map[string]*Player),
	}
}

// CreateOnConnect mints a new player for a freshly connected transport
// session, with a randomly suffixed default name.
func (r *Registry) CreateOnConnect(session any) *Player {
	p := &Player{
		ID:      identity.NewPlayerID(),
		Name:    defaultName(),
		session: session,
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bySession[session] = p
	r.byID[p.ID] = p
	return p
}

// SetName validates and updates a player's display name. The input is
// trimmed; it must be non-empty and at most 20 characters after trimming.
func (r *Registry) SetName(playerID, rawName string) error {
	trimmed := strings.TrimSpace(rawName)
	if trimmed == "" || utf8.RuneCountInString(trimmed) > maxNameLength {
		return apperr.New(apperr.InvalidName)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[playerID]
	if !ok {
		return nil
	}
	p.Name = trimmed
	return nil
}

// SetRoom records which room a player currently belongs to. Internal to the
// Room Registry; not part of the public event contract.
func (r *Registry) SetRoom(playerID, roomCode string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.byID[playerID]; ok {
		p.RoomCode = roomCode
	}
}

// SetScore overwrites a player's running score (used by the Score Engine
// and by startGame/resetGame to zero every member's score).
func (r *Registry) SetScore(playerID string, score int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.byID[playerID]; ok {
		p.Score = score
	}
}

// AddScore adds delta to a player's running score and returns the new total.
func (r *Registry) AddScore(playerID string, delta int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[playerID]
	if !ok {
		return 0
	}
	p.Score += delta
	return p.Score
}

// Remove deletes a player from both indices. Removing a player that is not
// present is a no-op.
func (r *Registry) Remove(playerID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[playerID]
	if !ok {
		return
	}
	delete(r.byID, playerID)
	for session, candidate := range r.bySession {
		if candidate == p {
			delete(r.bySession, session)
			break
		}
	}
}

// SessionFor returns the transport session handle for a player id, so the
// Event Router can direct-send to one specific member (e.g. word_options to
// the drawer) without holding a reference of its own.
func (r *Registry) SessionFor(playerID string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[playerID]
	if !ok {
		return nil, false
	}
	return p.session, true
}

// BySession looks up a player by their transport session handle.
func (r *Registry) BySession(session any) (*Player, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.bySession[session]
	return p, ok
}

// ByID looks up a player by id.
func (r *Registry) ByID(playerID string) (*Player, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[playerID]
	return p, ok
}

// Snapshot returns a shallow copy of a player's current state, safe to read
// without holding the registry lock further.
func (r *Registry) Snapshot(playerID string) (Player, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[playerID]
	if !ok {
		return Player{}, false
	}
	return *p, true
}

func defaultName() string {
	return fmt.Sprintf("Player%03d", randomSuffix())
}

func randomSuffix() int64 {
	n, err := rand.Int(rand.Reader, big.NewInt(1000))
	if err != nil {
		return 0
	}
	return n.Int64()
}
