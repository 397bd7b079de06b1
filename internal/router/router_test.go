package router

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Prince5723/scribble-backend/internal/player"
	"github.com/Prince5723/scribble-backend/internal/room"
	"github.com/Prince5723/scribble-backend/internal/timersvc"
)

// recordedEvent is one call to fakeSender.Send, captured for assertions.
type recordedEvent struct {
	eventType string
	payload   any
}

// fakeSender is an in-memory EventSender recorder, keyed by session handle,
// standing in for a real transport in integration tests.
type fakeSender struct {
	mu     sync.Mutex
	events map[any][]recordedEvent
}

func newFakeSender() *fakeSender {
	return &fakeSender{events: make(map[any][]recordedEvent)}
}

func (f *fakeSender) Send(session any, eventType string, payload any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events[session] = append(f.events[session], recordedEvent{eventType, payload})
}

func (f *fakeSender) find(session any, eventType string) (recordedEvent, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.events[session] {
		if e.eventType == eventType {
			return e, true
		}
	}
	return recordedEvent{}, false
}

func waitForEvent(t *testing.T, f *fakeSender, session any, eventType string) recordedEvent {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if e, ok := f.find(session, eventType); ok {
			return e
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("timed out waiting for event %q on session %v", eventType, session)
	return recordedEvent{}
}

func newTestRouter() (*Router, *fakeSender) {
	sender := newFakeSender()
	r := NewRouter(player.NewRegistry(), room.NewRegistry(), timersvc.NewService(), sender)
	return r, sender
}

func dispatchJSON(t *testing.T, r *Router, session any, eventType string, payload any) {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	r.Dispatch(session, eventType, raw)
}

func TestCreateJoinStartRoundFlow(t *testing.T) {
	r, sender := newTestRouter()
	owner, guesser := "owner-sess", "guesser-sess"

	r.OnConnect(owner)
	r.OnConnect(guesser)

	waitForEvent(t, sender, owner, "connected")

	dispatchJSON(t, r, owner, "create_room", map[string]any{
		"settings": map[string]any{"maxPlayers": 4, "rounds": 1, "drawTime": 30},
	})
	created := waitForEvent(t, sender, owner, "room_created")
	view := created.payload.(struct {
		Room any `json:"room"`
	}).Room.(room.View)
	code := view.Code

	dispatchJSON(t, r, guesser, "join_room", map[string]any{"roomId": code})
	waitForEvent(t, sender, guesser, "room_joined")

	r.Dispatch(owner, "start_game", nil)

	started := waitForEvent(t, sender, owner, "word_options")
	options := started.payload.(struct {
		Options []string `json:"options"`
		Timeout int      `json:"timeout"`
	}).Options
	require.NotEmpty(t, options)
	word := options[0]

	dispatchJSON(t, r, owner, "select_word", map[string]any{"word": word})

	drawingStarted := waitForEvent(t, sender, owner, "drawing_started")
	drawerWord := drawingStarted.payload.(struct {
		Word string        `json:"word"`
		Game room.GameView `json:"game"`
	}).Word
	require.Equal(t, word, drawerWord)

	dispatchJSON(t, r, guesser, "guess", map[string]any{"guess": word})

	correct := waitForEvent(t, sender, owner, "correct_guess")
	payload := correct.payload.(struct {
		PlayerID   string `json:"playerId"`
		PlayerName string `json:"playerName"`
		Score      int    `json:"score"`
		Word       string `json:"word"`
	})
	require.Equal(t, word, payload.Word)
	require.Greater(t, payload.Score, 0)
}

func TestNonDrawerDrawMoveRejected(t *testing.T) {
	r, sender := newTestRouter()
	owner, guesser := "owner-sess2", "guesser-sess2"
	r.OnConnect(owner)
	r.OnConnect(guesser)

	dispatchJSON(t, r, owner, "create_room", map[string]any{
		"settings": map[string]any{"maxPlayers": 4, "rounds": 1, "drawTime": 30},
	})
	created := waitForEvent(t, sender, owner, "room_created")
	view := created.payload.(struct {
		Room any `json:"room"`
	}).Room.(room.View)
	code := view.Code

	dispatchJSON(t, r, guesser, "join_room", map[string]any{"roomId": code})
	waitForEvent(t, sender, guesser, "room_joined")

	r.Dispatch(owner, "start_game", nil)
	waitForEvent(t, sender, owner, "word_options")

	dispatchJSON(t, r, guesser, "draw_move", map[string]any{"x": 1, "y": 2})
	errEvt := waitForEvent(t, sender, guesser, "game_error")
	require.Equal(t, "not_drawer", errEvt.payload.(errorPayload).Error)
}
