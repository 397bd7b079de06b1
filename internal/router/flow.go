package router

import (
	"strings"
	"time"

	"github.com/Prince5723/scribble-backend/internal/guess"
	"github.com/Prince5723/scribble-backend/internal/room"
	"github.com/Prince5723/scribble-backend/internal/score"
	"github.com/Prince5723/scribble-backend/internal/timersvc"
	"github.com/Prince5723/scribble-backend/internal/word"
)

const interRoundPause = 3 * time.Second

// beginWordSelection sends the current drawer their three word options,
// announces the round to everyone, and starts the 15s word-selection timer
// (spec.md §4.4, §4.5).
func (r *Router) beginWordSelection(rm *room.Room) {
	code := rm.Code
	pool := word.Pool(rm.Settings.CustomWords)
	options, err := word.GenerateOptions(pool)
	if err != nil || len(options) == 0 {
		return
	}
	drawerID := rm.Game.DrawerID
	if sess, ok := r.players.SessionFor(drawerID); ok {
		r.sender.Send(sess, "word_options", struct {
			Options []string `json:"options"`
			Timeout int      `json:"timeout"`
		}{options, int(timersvc.WordSelectionDuration.Seconds())})
	}
	r.broadcastTo(code, "round_started", struct {
		Game room.GameView `json:"game"`
	}{rm.SerializeGame()})

	r.timers.StartTimer(code, timersvc.KindWordSelection, timersvc.WordSelectionDuration,
		func(remaining int) {
			r.postToRoom(code, func() {
				r.broadcastTo(code, "timer_tick", tickPayload{remaining, "word_selection"})
			})
		},
		func() {
			r.postToRoom(code, func() { r.autoSelectWord(code) })
		},
	)
}

// selectWord is the drawer-initiated path: validate and store the word,
// stop the word-selection timer only on success (a rejected pick must not
// cancel an otherwise-still-running timer).
func (r *Router) selectWord(rm *room.Room, requesterID, rawWord string) error {
	if err := word.SelectWord(rm.Game, requesterID, rawWord, time.Now()); err != nil {
		return err
	}
	r.timers.StopTimer(rm.Code)
	r.onWordSelected(rm, false)
	return nil
}

// autoSelectWord is the Timer Service's expiry path: word selection timed
// out, so the Word Engine picks for the drawer.
func (r *Router) autoSelectWord(code string) {
	rm, ok := r.rooms.Get(code)
	if !ok || rm.Game == nil {
		return
	}
	pool := word.Pool(rm.Settings.CustomWords)
	if _, err := word.AutoSelectWord(rm.Game, pool, time.Now()); err != nil {
		return
	}
	r.onWordSelected(rm, true)
}

// onWordSelected announces the pick and starts the drawing-phase timer.
// drawing_started is directed per spec.md §4.9: the drawer receives the
// unmasked word, everyone else only the game view (which carries
// maskedWord, never selectedWord).
func (r *Router) onWordSelected(rm *room.Room, autoSelected bool) {
	code := rm.Code
	r.broadcastTo(code, "word_selected", struct {
		MaskedWord   string `json:"maskedWord"`
		AutoSelected bool   `json:"autoSelected"`
	}{rm.Game.MaskedWord, autoSelected})

	if sess, ok := r.players.SessionFor(rm.Game.DrawerID); ok {
		secret, _ := rm.Game.SelectedWordFor(rm.Game.DrawerID)
		r.sender.Send(sess, "drawing_started", struct {
			Word string        `json:"word"`
			Game room.GameView `json:"game"`
		}{secret, rm.SerializeGame()})
	}
	r.broadcastToExcept(code, rm.Game.DrawerID, "drawing_started", struct {
		Game room.GameView `json:"game"`
	}{rm.SerializeGame()})

	r.timers.StartTimer(code, timersvc.KindDrawing, time.Duration(rm.Settings.DrawTimeSeconds)*time.Second,
		func(remaining int) {
			r.postToRoom(code, func() {
				r.broadcastTo(code, "timer_tick", tickPayload{remaining, "drawing"})
			})
		},
		func() {
			r.postToRoom(code, func() { r.endRound(code) })
		},
	)
}

// handleGuessOutcome composes the broadcasts for one adjudicated guess
// (spec.md §8 scenario 2 and 6).
func (r *Router) handleGuessOutcome(rm *room.Room, session any, playerID, playerName, rawGuess string, outcome guess.Outcome) {
	code := rm.Code

	if outcome.Correct {
		r.broadcastTo(code, "chat_message", chatMessagePayload{
			PlayerID: playerID, PlayerName: playerName, Message: rawGuess, IsCorrect: true,
		})

		elapsed := time.Since(rm.Game.RoundStartTime).Seconds()
		awarded, _ := r.scores.AwardGuesser(code, rm.Game.CurrentRound, playerID, elapsed, rm.Settings.DrawTimeSeconds)
		r.players.AddScore(playerID, awarded)

		r.broadcastTo(code, "correct_guess", struct {
			PlayerID   string `json:"playerId"`
			PlayerName string `json:"playerName"`
			Score      int    `json:"score"`
			Word       string `json:"word"`
		}{playerID, playerName, awarded, rm.Game.Reveal()})

		r.broadcastTo(code, "leaderboard_update", r.leaderboard(rm))

		if guess.AllGuessersGuessed(rm.Game.GuessedPlayers, len(rm.PlayerIDs)) {
			r.endRound(code)
		}
		return
	}

	if outcome.IsClose {
		r.sender.Send(session, "close_guess", struct {
			EditDistance int `json:"editDistance"`
		}{outcome.EditDistance})
	}

	r.broadcastTo(code, "chat_message", chatMessagePayload{
		PlayerID: playerID, PlayerName: playerName, Message: strings.Repeat("*", len([]rune(rawGuess))), IsCorrect: false,
	})
}

// endRound closes out the current drawer's turn: stop the drawing timer (a
// no-op if it already expired), award the drawer, reveal the word, and
// either finish the game or schedule the 3s inter-round pause.
func (r *Router) endRound(code string) {
	rm, ok := r.rooms.Get(code)
	if !ok || rm.Game == nil {
		return
	}
	r.timers.StopTimer(code)
	r.relay.ResetRoom(code)

	guesserCount := len(rm.Game.GuessedPlayers)
	drawerAward, _ := r.scores.AwardDrawer(code, rm.Game.CurrentRound, guesserCount)
	r.players.AddScore(rm.Game.DrawerID, drawerAward)

	word := rm.Game.Reveal()
	result := rm.EndRound()

	r.broadcastTo(code, "round_ended", struct {
		Word        string        `json:"word"`
		DrawerScore int           `json:"drawerScore"`
		GameEnded   bool          `json:"gameEnded"`
		Game        room.GameView `json:"game"`
	}{word, drawerAward, result.GameEnded, rm.SerializeGame()})
	r.broadcastTo(code, "leaderboard_update", r.leaderboard(rm))

	if result.GameEnded {
		r.finishGame(rm)
		return
	}

	r.timers.StartTimer(code, timersvc.KindInterRound, interRoundPause,
		func(int) {},
		func() {
			r.postToRoom(code, func() { r.advanceDrawer(code) })
		},
	)
}

func (r *Router) advanceDrawer(code string) {
	rm, ok := r.rooms.Get(code)
	if !ok || rm.Game == nil {
		return
	}
	rm.ProgressToNextDrawer()
	r.beginWordSelection(rm)
}

func (r *Router) finishGame(rm *room.Room) {
	code := rm.Code
	rounds := rm.EndGame()
	r.broadcastTo(code, "game_ended", struct {
		Rounds      int           `json:"rounds"`
		Leaderboard []score.Entry `json:"leaderboard"`
	}{rounds, r.leaderboard(rm)})
	r.broadcastRoomUpdated(code)
	r.timers.StopTimer(code)
	r.relay.ResetRoom(code)
}

func (r *Router) leaderboard(rm *room.Room) []score.Entry {
	entries := make([]score.Entry, 0, len(rm.PlayerIDs))
	for _, id := range rm.PlayerIDs {
		snap, ok := r.players.Snapshot(id)
		if !ok {
			continue
		}
		entries = append(entries, score.Entry{PlayerID: snap.ID, Name: snap.Name, Score: snap.Score})
	}
	return score.Leaderboard(entries)
}
