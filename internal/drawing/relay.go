// Package drawing implements the Drawing Relay: stateless with respect to
// stroke content, it only validates, throttles, and batches draw_move
// events before the Event Router fans them out (spec.md §4.6). It retains
// no canvas state.
package drawing

import (
	"encoding/json"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/Prince5723/scribble-backend/internal/apperr"
	"github.com/Prince5723/scribble-backend/internal/game"
)

const (
	moveRatePerSecond = 30
	batchWindow       = 50 * time.Millisecond
)

// Validate checks the originator/phase preconditions common to every
// drawing event.
func Validate(phase game.Phase, isDrawer bool) error {
	if !isDrawer {
		return apperr.New(apperr.NotDrawer)
	}
	if phase != game.PhaseDrawing {
		return apperr.New(apperr.WrongPhase)
	}
	return nil
}

// Relay holds the per-room throttle and batch state for draw_move events.
type Relay struct {
	mu            sync.Mutex
	limiters      map[string]*rate.Limiter
	pending       map[string][]json.RawMessage
	batchPending  map[string]bool
	scheduleFlush func(roomCode string, after time.Duration)
}

// NewRelay constructs a Relay. scheduleFlush is called when a room's first
// buffered move starts a batch window; it must arrange for the caller to
// invoke FlushPending(roomCode) again after the given delay (via the room's
// own actor inbox, so the flush stays serialized with everything else
// happening in that room).
func NewRelay(scheduleFlush func(roomCode string, after time.Duration)) *Relay {
	return &Relay{
		limiters:      make(map[string]*rate.Limiter),
		pending:       make(map[string][]json.RawMessage),
		batchPending:  make(map[string]bool),
		scheduleFlush: scheduleFlush,
	}
}

func (r *Relay) limiterFor(roomCode string) *rate.Limiter {
	lim, ok := r.limiters[roomCode]
	if !ok {
		lim = rate.NewLimiter(rate.Every(time.Second/moveRatePerSecond), 1)
		r.limiters[roomCode] = lim
	}
	return lim
}

// HandleMove records a draw_move payload. If the room's throttle allows an
// emit right now, it returns the full ordered batch (any previously
// buffered moves plus this one) to flush immediately. Otherwise the move is
// buffered and, if it is the first buffered move since the last flush, a
// batch-window flush is scheduled.
func (r *Relay) HandleMove(roomCode string, payload json.RawMessage) (batch []json.RawMessage, shouldFlush bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lim := r.limiterFor(roomCode)
	pending := append(r.pending[roomCode], payload)
	r.pending[roomCode] = pending

	if lim.Allow() {
		r.pending[roomCode] = nil
		r.batchPending[roomCode] = false
		return pending, true
	}

	if len(pending) == 1 {
		r.batchPending[roomCode] = true
		if r.scheduleFlush != nil {
			r.scheduleFlush(roomCode, batchWindow)
		}
	}
	return nil, false
}

// FlushPending returns and clears any buffered moves for roomCode — called
// when a room's batch-window timer fires. ok is false if nothing was
// pending (the window timer lost a race with a throttle-allowed flush).
func (r *Relay) FlushPending(roomCode string) (batch []json.RawMessage, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	pending := r.pending[roomCode]
	if len(pending) == 0 {
		return nil, false
	}
	r.pending[roomCode] = nil
	r.batchPending[roomCode] = false
	return pending, true
}

// ResetRoom discards pending batches and throttling state for a room —
// called on round_end (spec.md §4.6 "Round reset").
func (r *Relay) ResetRoom(roomCode string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.limiters, roomCode)
	delete(r.pending, roomCode)
	delete(r.batchPending, roomCode)
}
