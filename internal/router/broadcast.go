package router

import "github.com/Prince5723/scribble-backend/internal/apperr"

// broadcastTo sends event to every current member of code.
func (r *Router) broadcastTo(code, eventType string, payload any) {
	rm, ok := r.rooms.Get(code)
	if !ok {
		return
	}
	for _, id := range rm.PlayerIDs {
		if sess, ok := r.players.SessionFor(id); ok {
			r.sender.Send(sess, eventType, payload)
		}
	}
}

// broadcastToExcept sends event to every current member of code other than
// exceptID — used for drawing fan-out, which never echoes back to the
// drawer.
func (r *Router) broadcastToExcept(code, exceptID, eventType string, payload any) {
	rm, ok := r.rooms.Get(code)
	if !ok {
		return
	}
	for _, id := range rm.PlayerIDs {
		if id == exceptID {
			continue
		}
		if sess, ok := r.players.SessionFor(id); ok {
			r.sender.Send(sess, eventType, payload)
		}
	}
}

// broadcastRoomUpdated re-serializes and re-sends the room's public View —
// the spec's "broadcast whenever membership, ownership, names, or settings
// change" rule (§4.9).
func (r *Router) broadcastRoomUpdated(code string) {
	rm, ok := r.rooms.Get(code)
	if !ok {
		return
	}
	r.broadcastTo(code, "room_updated", struct {
		Room any `json:"room"`
	}{rm.Serialize(r.players)})
}

type errorPayload struct {
	Error string `json:"error"`
}

// toErrorPayload extracts an apperr.Kind from err for a `*_error` event.
// Errors outside the apperr vocabulary (which should never reach this
// layer) fall back to invalid_payload rather than leaking a raw message.
func toErrorPayload(err error) errorPayload {
	kind, ok := apperr.KindOf(err)
	if !ok {
		kind = apperr.InvalidPayload
	}
	return errorPayload{Error: string(kind)}
}

type tickPayload struct {
	Remaining int    `json:"remaining"`
	Type      string `json:"type"`
}

type chatMessagePayload struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	Message    string `json:"message"`
	IsCorrect  bool   `json:"isCorrect"`
}
