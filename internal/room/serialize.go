package room

import "github.com/Prince5723/scribble-backend/internal/player"

// PlayerView is one member's public representation inside a room payload.
type PlayerView struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	IsOwner bool   `json:"isOwner"`
	Score   int    `json:"score"`
}

// View is a room's public representation, sent to every member on
// room_updated. It never carries the game's secret word.
type View struct {
	Code     string       `json:"code"`
	OwnerID  string       `json:"ownerId"`
	Players  []PlayerView `json:"players"`
	Settings Settings     `json:"settings"`
	Status   Status       `json:"status"`
}

// Serialize builds a room's public View using names from players. Members
// the player registry no longer knows about (a narrow race with a
// just-completed disconnect) are skipped rather than rendered with blank
// names.
func (r *Room) Serialize(players *player.Registry) View {
	views := make([]PlayerView, 0, len(r.PlayerIDs))
	for _, id := range r.PlayerIDs {
		p, ok := players.Snapshot(id)
		if !ok {
			continue
		}
		views = append(views, PlayerView{
			ID:      p.ID,
			Name:    p.Name,
			IsOwner: id == r.OwnerID,
			Score:   p.Score,
		})
	}
	return View{
		Code:     r.Code,
		OwnerID:  r.OwnerID,
		Players:  views,
		Settings: r.Settings,
		Status:   r.Status,
	}
}

// GameView is a game's public representation. maskedWord reflects the
// drawer's secrecy rule: every recipient gets the same underscore mask,
// since the word itself never leaves internal/game except through
// game.State.SelectedWordFor for the drawer's own client and
// game.State.Reveal for the correct_guess/round_ended reveals.
type GameView struct {
	Phase          string          `json:"phase"`
	CurrentRound   int             `json:"currentRound"`
	TotalRounds    int             `json:"totalRounds"`
	DrawerID       string          `json:"drawerId"`
	DrawerIndex    int             `json:"drawerIndex"`
	GuessedPlayers map[string]bool `json:"guessedPlayers"`
	MaskedWord     string          `json:"maskedWord"`
}

// SerializeGame builds the public GameView for r.Game. Callers must check
// r.Game != nil first; there is no game to serialize while waiting.
func (r *Room) SerializeGame() GameView {
	g := r.Game
	return GameView{
		Phase:          string(g.Phase),
		CurrentRound:   g.CurrentRound,
		TotalRounds:    g.TotalRounds,
		DrawerID:       g.DrawerID,
		DrawerIndex:    g.DrawerIndex,
		GuessedPlayers: g.GuessedPlayers,
		MaskedWord:     g.MaskedWord,
	}
}
