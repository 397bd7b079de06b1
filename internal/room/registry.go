package room

import (
	"strings"
	"sync"

	"github.com/Prince5723/scribble-backend/internal/apperr"
	"github.com/Prince5723/scribble-backend/internal/identity"
)

// Registry holds every live room, keyed by uppercase room code.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string]*Room
}

// NewRegistry constructs an empty Room Registry.
func NewRegistry() *Registry {
	return &Registry{rooms: make(map[string]*Room)}
}

func canonical(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Create mints a fresh room code, applies the given settings over the
// defaults, and inserts ownerID as the first (and owning) member.
func (reg *Registry) Create(ownerID string, in SettingsInput) (*Room, error) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	code, err := identity.NewRoomCode(func(c string) bool {
		_, exists := reg.rooms[c]
		return exists
	})
	if err != nil {
		return nil, err
	}

	settings := ApplySettings(DefaultSettings(), in)
	r := newRoom(code, ownerID, settings)
	reg.rooms[code] = r
	return r, nil
}

// Get looks up a room by code, case-insensitively.
func (reg *Registry) Get(code string) (*Room, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	r, ok := reg.rooms[canonical(code)]
	return r, ok
}

// Join adds playerID to the room at code (spec.md §4.2 join_room). Rejoining
// the same room is apperr.Duplicate; a player already a member of a
// different room is the caller's responsibility to reject as
// apperr.AlreadyIn before ever reaching this room's code, since Join has no
// way to see the rest of the registry from here.
func (reg *Registry) Join(playerID, code string) (*Room, error) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	r, ok := reg.rooms[canonical(code)]
	if !ok {
		return nil, apperr.New(apperr.NotFound)
	}
	if r.Status != StatusWaiting {
		return nil, apperr.New(apperr.NotWaiting)
	}
	if r.HasMember(playerID) {
		return nil, apperr.New(apperr.Duplicate)
	}
	if len(r.PlayerIDs) >= r.Settings.MaxPlayers {
		return nil, apperr.New(apperr.Full)
	}
	r.PlayerIDs = append(r.PlayerIDs, playerID)
	return r, nil
}

// LeaveResult reports the consequences of a player leaving, which the
// Event Router needs to decide what to broadcast.
type LeaveResult struct {
	RoomDeleted  bool
	OwnerChanged bool
	NewOwnerID   string
}

// Leave removes playerID from the room at code. If the room becomes empty
// it is deleted; if the departing player was the owner, ownership passes
// to the next remaining member in join order.
func (reg *Registry) Leave(playerID, code string) (*Room, LeaveResult, error) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	r, ok := reg.rooms[canonical(code)]
	if !ok {
		return nil, LeaveResult{}, apperr.New(apperr.NotFound)
	}
	if !r.HasMember(playerID) {
		return nil, LeaveResult{}, apperr.New(apperr.NotFound)
	}

	r.removeMember(playerID)

	if len(r.PlayerIDs) == 0 {
		delete(reg.rooms, r.Code)
		return r, LeaveResult{RoomDeleted: true}, nil
	}

	res := LeaveResult{}
	if r.OwnerID == playerID {
		r.OwnerID = r.PlayerIDs[0]
		res.OwnerChanged = true
		res.NewOwnerID = r.OwnerID
	}
	return r, res, nil
}

// UpdateSettings applies a partial settings update. Only the owner may
// call this, and only while the room is waiting; if the new maxPlayers
// would be smaller than the current membership, the update is rejected
// with apperr.TooSmall rather than silently clamped, since shrinking below
// the live count has no safe automatic resolution.
func (reg *Registry) UpdateSettings(requesterID, code string, in SettingsInput) (*Room, error) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	r, ok := reg.rooms[canonical(code)]
	if !ok {
		return nil, apperr.New(apperr.NotFound)
	}
	if requesterID != r.OwnerID {
		return nil, apperr.New(apperr.NotOwner)
	}
	if r.Status != StatusWaiting {
		return nil, apperr.New(apperr.NotWaiting)
	}

	next := ApplySettings(r.Settings, in)
	if next.MaxPlayers < len(r.PlayerIDs) {
		return nil, apperr.New(apperr.TooSmall)
	}
	r.Settings = next
	return r, nil
}

// Delete removes a room outright, whatever its membership. The Event Router
// does not call it; rooms it tears down are removed by Leave.
func (reg *Registry) Delete(code string) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	delete(reg.rooms, canonical(code))
}
