package response

import (
	"time"

	"github.com/Johnpaulreju/Digit-duel/internal/model"
)

// Guess represents a scored guess in API responses
type Guess struct {
	Value     string    `json:"value"`
	Feedback  []string  `json:"feedback"`
	CreatedAt time.Time `json:"created_at"`
}

// GuessFromModel converts a model.Guess
func GuessFromModel(g model.Guess) Guess {
	feedback := make([]string, len(g.Feedback))
	for i, v := range g.Feedback {
		feedback[i] = string(v)
	}
	return Guess{
		Value:     g.Value,
		Feedback:  feedback,
		CreatedAt: g.CreatedAt,
	}
}

// Player represents a player in API responses. Secret is populated only
// when the room service's view projection chose to reveal it.
type Player struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Avatar       string  `json:"avatar"`
	Ready        bool    `json:"ready"`
	Secret       string  `json:"secret,omitempty"`
	Guesses      []Guess `json:"guesses"`
	LastReaction string  `json:"last_reaction,omitempty"`
}

// PlayerFromModel converts a model.Player
func PlayerFromModel(p model.Player) Player {
	guesses := make([]Guess, len(p.Guesses))
	for i, g := range p.Guesses {
		guesses[i] = GuessFromModel(g)
	}
	return Player{
		ID:           string(p.ID),
		Name:         p.Name,
		Avatar:       p.Avatar,
		Ready:        p.Ready,
		Secret:       p.Secret,
		Guesses:      guesses,
		LastReaction: p.LastReaction,
	}
}

// Reaction represents the room's last reaction
type Reaction struct {
	Emoji    string    `json:"emoji"`
	PlayerID string    `json:"player_id"`
	SentAt   time.Time `json:"sent_at"`
}

// Room represents a room in API responses
type Room struct {
	ID           string    `json:"id"`
	Status       string    `json:"status"`
	DigitCount   int       `json:"digit_count"`
	Round        int       `json:"round"`
	Players      []Player  `json:"players"`
	WinnerID     *string   `json:"winner_id"`
	LastReaction *Reaction `json:"last_reaction,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RoomFromModel converts a model.Room. Callers are expected to pass an
// already-redacted view when the response crosses the player boundary.
func RoomFromModel(r *model.Room) Room {
	players := make([]Player, len(r.Players))
	for i, p := range r.Players {
		players[i] = PlayerFromModel(p)
	}

	var winner *string
	if r.WinnerID != "" {
		w := string(r.WinnerID)
		winner = &w
	}

	var reaction *Reaction
	if r.LastReaction != nil {
		reaction = &Reaction{
			Emoji:    r.LastReaction.Emoji,
			PlayerID: string(r.LastReaction.PlayerID),
			SentAt:   r.LastReaction.SentAt,
		}
	}

	return Room{
		ID:           string(r.ID),
		Status:       string(r.Status),
		DigitCount:   r.DigitCount,
		Round:        r.Round,
		Players:      players,
		WinnerID:     winner,
		LastReaction: reaction,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// CreateRoomResponse is the response for room creation and joining
type CreateRoomResponse struct {
	Room     Room   `json:"room"`
	PlayerID string `json:"player_id"`
}

// GuessResponse is the response after submitting a guess
type GuessResponse struct {
	Room     Room     `json:"room"`
	Feedback []string `json:"feedback"`
	IsWin    bool     `json:"is_win"`
}
