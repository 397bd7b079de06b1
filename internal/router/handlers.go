package router

import (
	"encoding/json"

	"github.com/Prince5723/scribble-backend/internal/apperr"
	"github.com/Prince5723/scribble-backend/internal/drawing"
	"github.com/Prince5723/scribble-backend/internal/guess"
	"github.com/Prince5723/scribble-backend/internal/room"
	"github.com/Prince5723/scribble-backend/logger"
)

// OnConnect registers a freshly connected transport session as a new
// player and greets it directly — there is no room yet for this to race
// against, so it does not go through a room actor.
func (r *Router) OnConnect(session any) {
	p := r.players.CreateOnConnect(session)
	r.sender.Send(session, "connected", struct {
		PlayerID string `json:"playerId"`
		Name     string `json:"name"`
	}{p.ID, p.Name})
}

// OnDisconnect removes a player from the registry and, if they were in a
// room, runs the same leave path a voluntary leave_room would (spec.md §3
// lifecycle: "destroyed on transport disconnect"). Per the drawer-disconnect
// decision in DESIGN.md, a disconnecting drawer gets no special treatment:
// the drawing timer simply expires on schedule.
func (r *Router) OnDisconnect(session any) {
	p, ok := r.players.BySession(session)
	if !ok {
		return
	}
	snap, _ := r.players.Snapshot(p.ID)
	r.players.Remove(p.ID)
	if snap.RoomCode == "" {
		return
	}
	code := snap.RoomCode
	r.postToRoom(code, func() {
		rm, lr, err := r.rooms.Leave(p.ID, code)
		if err != nil {
			return
		}
		if lr.RoomDeleted {
			r.cleanupRoom(code)
			return
		}
		r.broadcastRoomUpdated(rm.Code)
	})
}

// Dispatch routes one decoded inbound event to its handler (spec.md §6).
// Unknown event types and malformed payloads are logged and dropped,
// never disturbing state (§7).
func (r *Router) Dispatch(session any, eventType string, data json.RawMessage) {
	switch eventType {
	case "set_player_name":
		r.handleSetPlayerName(session, data)
	case "create_room":
		r.handleCreateRoom(session, data)
	case "join_room":
		r.handleJoinRoom(session, data)
	case "leave_room":
		r.handleLeaveRoom(session)
	case "update_room_settings":
		r.handleUpdateSettings(session, data)
	case "start_game":
		r.handleStartGame(session)
	case "select_word":
		r.handleSelectWord(session, data)
	case "draw_start":
		r.handleDrawEdge(session, "draw_start", data)
	case "draw_move":
		r.handleDrawMove(session, data)
	case "draw_end":
		r.handleDrawEdge(session, "draw_end", data)
	case "clear_canvas":
		r.handleDrawEdge(session, "clear_canvas", data)
	case "guess":
		r.handleGuess(session, data)
	case "play_again":
		r.handlePlayAgain(session)
	default:
		logger.Info("router: dropping unknown event type=%s", eventType)
	}
}

func (r *Router) handleSetPlayerName(session any, data json.RawMessage) {
	var payload struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		logger.Info("router: set_player_name invalid payload err=%v", err)
		return
	}
	p, ok := r.players.BySession(session)
	if !ok {
		return
	}
	if err := r.players.SetName(p.ID, payload.Name); err != nil {
		r.sender.Send(session, "game_error", toErrorPayload(err))
		return
	}
	snap, _ := r.players.Snapshot(p.ID)
	r.sender.Send(session, "player_updated", struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}{snap.ID, snap.Name})
	if snap.RoomCode != "" {
		code := snap.RoomCode
		r.postToRoom(code, func() { r.broadcastRoomUpdated(code) })
	}
}

func (r *Router) handleCreateRoom(session any, data json.RawMessage) {
	var payload struct {
		Settings *room.SettingsInput `json:"settings"`
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &payload); err != nil {
			logger.Info("router: create_room invalid payload err=%v", err)
			return
		}
	}
	p, ok := r.players.BySession(session)
	if !ok {
		return
	}
	var input room.SettingsInput
	if payload.Settings != nil {
		input = *payload.Settings
	}
	rm, err := r.rooms.Create(p.ID, input)
	if err != nil {
		r.sender.Send(session, "room_error", toErrorPayload(err))
		return
	}
	r.players.SetRoom(p.ID, rm.Code)
	r.sender.Send(session, "room_created", struct {
		Room any `json:"room"`
	}{rm.Serialize(r.players)})
}

func (r *Router) handleJoinRoom(session any, data json.RawMessage) {
	var payload struct {
		RoomID string `json:"roomId"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		logger.Info("router: join_room invalid payload err=%v", err)
		return
	}
	p, ok := r.players.BySession(session)
	if !ok {
		return
	}
	target, ok := r.rooms.Get(payload.RoomID)
	if !ok {
		r.sender.Send(session, "room_error", toErrorPayload(apperr.New(apperr.NotFound)))
		return
	}
	code := target.Code
	if snap, ok := r.players.Snapshot(p.ID); ok && snap.RoomCode != "" && snap.RoomCode != code {
		r.sender.Send(session, "room_error", toErrorPayload(apperr.New(apperr.AlreadyIn)))
		return
	}
	r.postToRoom(code, func() {
		rm, err := r.rooms.Join(p.ID, code)
		if err != nil {
			r.sender.Send(session, "room_error", toErrorPayload(err))
			return
		}
		r.players.SetRoom(p.ID, code)
		r.sender.Send(session, "room_joined", struct {
			Room any `json:"room"`
		}{rm.Serialize(r.players)})
		r.broadcastRoomUpdated(code)
	})
}

func (r *Router) handleLeaveRoom(session any) {
	p, ok := r.players.BySession(session)
	if !ok {
		return
	}
	snap, ok := r.players.Snapshot(p.ID)
	if !ok || snap.RoomCode == "" {
		return
	}
	code := snap.RoomCode
	r.postToRoom(code, func() {
		rm, lr, err := r.rooms.Leave(p.ID, code)
		if err != nil {
			return
		}
		r.players.SetRoom(p.ID, "")
		r.sender.Send(session, "room_left", struct{}{})
		if lr.RoomDeleted {
			r.cleanupRoom(code)
			return
		}
		r.broadcastRoomUpdated(rm.Code)
	})
}

func (r *Router) handleUpdateSettings(session any, data json.RawMessage) {
	var payload struct {
		Settings room.SettingsInput `json:"settings"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		logger.Info("router: update_room_settings invalid payload err=%v", err)
		return
	}
	p, ok := r.players.BySession(session)
	if !ok {
		return
	}
	snap, ok := r.players.Snapshot(p.ID)
	if !ok || snap.RoomCode == "" {
		r.sender.Send(session, "room_settings_error", toErrorPayload(apperr.New(apperr.NotFound)))
		return
	}
	code := snap.RoomCode
	r.postToRoom(code, func() {
		rm, err := r.rooms.UpdateSettings(p.ID, code, payload.Settings)
		if err != nil {
			r.sender.Send(session, "room_settings_error", toErrorPayload(err))
			return
		}
		r.sender.Send(session, "room_settings_updated", struct {
			Settings room.Settings `json:"settings"`
		}{rm.Settings})
		r.broadcastRoomUpdated(rm.Code)
	})
}

func (r *Router) handleStartGame(session any) {
	p, ok := r.players.BySession(session)
	if !ok {
		return
	}
	snap, ok := r.players.Snapshot(p.ID)
	if !ok || snap.RoomCode == "" {
		r.sender.Send(session, "game_error", toErrorPayload(apperr.New(apperr.NotFound)))
		return
	}
	code := snap.RoomCode
	r.postToRoom(code, func() {
		rm, ok := r.rooms.Get(code)
		if !ok {
			return
		}
		if err := rm.StartGame(p.ID); err != nil {
			r.sender.Send(session, "game_error", toErrorPayload(err))
			return
		}
		r.scores.ResetRoom(code)
		for _, id := range rm.PlayerIDs {
			r.players.SetScore(id, 0)
		}
		r.broadcastTo(code, "game_started", struct {
			Game room.GameView `json:"game"`
		}{rm.SerializeGame()})
		r.broadcastRoomUpdated(code)
		r.beginWordSelection(rm)
	})
}

func (r *Router) handleSelectWord(session any, data json.RawMessage) {
	var payload struct {
		Word string `json:"word"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		logger.Info("router: select_word invalid payload err=%v", err)
		return
	}
	p, ok := r.players.BySession(session)
	if !ok {
		return
	}
	snap, ok := r.players.Snapshot(p.ID)
	if !ok || snap.RoomCode == "" {
		return
	}
	code := snap.RoomCode
	r.postToRoom(code, func() {
		rm, ok := r.rooms.Get(code)
		if !ok || rm.Game == nil {
			r.sender.Send(session, "game_error", toErrorPayload(apperr.New(apperr.NotFound)))
			return
		}
		if err := r.selectWord(rm, p.ID, payload.Word); err != nil {
			r.sender.Send(session, "game_error", toErrorPayload(err))
		}
	})
}

func (r *Router) handleDrawEdge(session any, eventType string, data json.RawMessage) {
	p, ok := r.players.BySession(session)
	if !ok {
		return
	}
	snap, ok := r.players.Snapshot(p.ID)
	if !ok || snap.RoomCode == "" {
		return
	}
	code := snap.RoomCode
	r.postToRoom(code, func() {
		rm, ok := r.rooms.Get(code)
		if !ok || rm.Game == nil {
			return
		}
		if err := drawing.Validate(rm.Game.Phase, p.ID == rm.Game.DrawerID); err != nil {
			r.sender.Send(session, "game_error", toErrorPayload(err))
			return
		}
		if batch, ok := r.relay.FlushPending(code); ok {
			r.broadcastToExcept(code, rm.Game.DrawerID, "draw_move", batch)
		}
		r.broadcastToExcept(code, rm.Game.DrawerID, eventType, json.RawMessage(data))
	})
}

func (r *Router) handleDrawMove(session any, data json.RawMessage) {
	p, ok := r.players.BySession(session)
	if !ok {
		return
	}
	snap, ok := r.players.Snapshot(p.ID)
	if !ok || snap.RoomCode == "" {
		return
	}
	code := snap.RoomCode
	r.postToRoom(code, func() {
		rm, ok := r.rooms.Get(code)
		if !ok || rm.Game == nil {
			return
		}
		if err := drawing.Validate(rm.Game.Phase, p.ID == rm.Game.DrawerID); err != nil {
			r.sender.Send(session, "game_error", toErrorPayload(err))
			return
		}
		batch, shouldFlush := r.relay.HandleMove(code, data)
		if shouldFlush {
			r.broadcastToExcept(code, rm.Game.DrawerID, "draw_move", batch)
		}
	})
}

func (r *Router) flushDrawingBatch(code string) {
	rm, ok := r.rooms.Get(code)
	if !ok || rm.Game == nil {
		return
	}
	if batch, ok := r.relay.FlushPending(code); ok {
		r.broadcastToExcept(code, rm.Game.DrawerID, "draw_move", batch)
	}
}

func (r *Router) handleGuess(session any, data json.RawMessage) {
	var payload struct {
		Guess string `json:"guess"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		logger.Info("router: guess invalid payload err=%v", err)
		return
	}
	p, ok := r.players.BySession(session)
	if !ok {
		return
	}
	snap, ok := r.players.Snapshot(p.ID)
	if !ok || snap.RoomCode == "" {
		return
	}
	code := snap.RoomCode
	r.postToRoom(code, func() {
		rm, ok := r.rooms.Get(code)
		if !ok || rm.Game == nil {
			return
		}
		outcome, err := guess.Adjudicate(rm.Game, p.ID, payload.Guess)
		if err != nil {
			r.sender.Send(session, "game_error", toErrorPayload(err))
			return
		}
		r.handleGuessOutcome(rm, session, p.ID, snap.Name, payload.Guess, outcome)
	})
}

func (r *Router) handlePlayAgain(session any) {
	p, ok := r.players.BySession(session)
	if !ok {
		return
	}
	snap, ok := r.players.Snapshot(p.ID)
	if !ok || snap.RoomCode == "" {
		return
	}
	code := snap.RoomCode
	r.postToRoom(code, func() {
		rm, ok := r.rooms.Get(code)
		if !ok {
			return
		}
		if rm.Status != room.StatusFinished {
			r.sender.Send(session, "game_error", toErrorPayload(apperr.New(apperr.NotWaiting)))
			return
		}
		if p.ID != rm.OwnerID {
			r.sender.Send(session, "game_error", toErrorPayload(apperr.New(apperr.NotOwner)))
			return
		}
		r.timers.StopTimer(code)
		r.relay.ResetRoom(code)
		r.scores.ResetRoom(code)
		for _, id := range rm.PlayerIDs {
			r.players.SetScore(id, 0)
		}
		rm.ResetGame()
		r.broadcastTo(code, "game_reset", struct {
			Room any `json:"room"`
		}{rm.Serialize(r.players)})
		r.broadcastRoomUpdated(code)
	})
}
