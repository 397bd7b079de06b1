package drawing

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prince5723/scribble-backend/internal/apperr"
	"github.com/Prince5723/scribble-backend/internal/game"
)

func TestValidate(t *testing.T) {
	t.Parallel()
	assert.NoError(t, Validate(game.PhaseDrawing, true))

	err := Validate(game.PhaseDrawing, false)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.NotDrawer))

	err = Validate(game.PhaseWordSelect, true)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.WrongPhase))
}

func TestHandleMoveFirstMoveFlushesImmediately(t *testing.T) {
	t.Parallel()
	r := NewRelay(nil)
	batch, flush := r.HandleMove("room1", json.RawMessage(`{"x":1}`))
	assert.True(t, flush)
	assert.Len(t, batch, 1)
}

func TestHandleMoveThrottlesAndSchedulesFlush(t *testing.T) {
	t.Parallel()
	var scheduled []time.Duration
	r := NewRelay(func(roomCode string, after time.Duration) {
		scheduled = append(scheduled, after)
	})

	// Burst past the limiter's single-token capacity so later moves in the
	// same instant must buffer rather than flush immediately.
	var sawBuffered bool
	for i := 0; i < 50; i++ {
		batch, flush := r.HandleMove("room1", json.RawMessage(`{"x":1}`))
		if !flush {
			sawBuffered = true
			assert.Nil(t, batch)
		}
	}
	assert.True(t, sawBuffered, "a rapid burst must eventually exceed the throttle and buffer")
	assert.NotEmpty(t, scheduled, "the first buffered move in a window must schedule exactly one flush")
}

func TestFlushPendingReturnsAndClearsBuffer(t *testing.T) {
	t.Parallel()
	r := NewRelay(func(string, time.Duration) {})

	lim := r.limiterFor("room1")
	// Drain the limiter's token so the next HandleMove call buffers.
	lim.Allow()

	_, flush := r.HandleMove("room1", json.RawMessage(`{"x":1}`))
	require.False(t, flush)

	batch, ok := r.FlushPending("room1")
	require.True(t, ok)
	assert.Len(t, batch, 1)

	_, ok = r.FlushPending("room1")
	assert.False(t, ok, "flushing an empty buffer reports nothing pending")
}

func TestResetRoomClearsThrottleAndBuffer(t *testing.T) {
	t.Parallel()
	r := NewRelay(func(string, time.Duration) {})
	lim := r.limiterFor("room1")
	lim.Allow()
	r.HandleMove("room1", json.RawMessage(`{"x":1}`))

	r.ResetRoom("room1")

	_, ok := r.FlushPending("room1")
	assert.False(t, ok, "reset must drop any buffered moves")

	// A fresh limiter is minted on next use, so an immediate move flushes again.
	_, flush := r.HandleMove("room1", json.RawMessage(`{"x":1}`))
	assert.True(t, flush)
}
