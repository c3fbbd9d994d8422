package model

import "time"

// RoomID is the human-shareable code players use to join a room
type RoomID string

// RoomStatus represents the current phase of a room's round
type RoomStatus string

const (
	// RoomStatusWaiting is the initial phase, before the second player joins
	RoomStatusWaiting RoomStatus = "waiting_for_players"
	// RoomStatusSettingSecret is the phase where players lock in secrets
	RoomStatusSettingSecret RoomStatus = "setting_secret"
	// RoomStatusInProgress is the guessing phase
	RoomStatusInProgress RoomStatus = "in_progress"
	// RoomStatusFinished is the resolved phase; terminal for the round,
	// reopened by a rematch
	RoomStatusFinished RoomStatus = "finished"
)

// MaxPlayers is the fixed room capacity
const MaxPlayers = 2

// AllowedDigitCounts are the secret lengths a room may be created with
var AllowedDigitCounts = []int{4, 5, 6}

// DefaultDigitCount is used when no digit count is requested at creation
const DefaultDigitCount = 4

// IsAllowedDigitCount reports whether n is a supported secret length
func IsAllowedDigitCount(n int) bool {
	for _, c := range AllowedDigitCounts {
		if n == c {
			return true
		}
	}
	return false
}

// Room is the shared record representing one duel between up to two players
type Room struct {
	ID RoomID

	// Players in join order; index 0 is the creator/host
	Players []Player

	// DigitCount is the secret length for this room, fixed at creation
	DigitCount int

	Status RoomStatus

	// WinnerID references the player who resolved the round, empty until
	// a round finishes with a winner. Cleared on rematch.
	WinnerID PlayerID

	// Round increments on each rematch
	Round int

	// LastReaction is the most recent social reaction in the room (cosmetic)
	LastReaction *Reaction

	CreatedAt time.Time
	UpdatedAt time.Time
}

// GetPlayer returns the player with the given ID, or nil if not present
func (r *Room) GetPlayer(id PlayerID) *Player {
	for i := range r.Players {
		if r.Players[i].ID == id {
			return &r.Players[i]
		}
	}
	return nil
}

// Opponent returns the other player relative to the given ID, or nil if
// the room has no second player
func (r *Room) Opponent(id PlayerID) *Player {
	for i := range r.Players {
		if r.Players[i].ID != id {
			return &r.Players[i]
		}
	}
	return nil
}

// IsFull reports whether the room has reached capacity
func (r *Room) IsFull() bool {
	return len(r.Players) >= MaxPlayers
}

// AllReady reports whether every player has locked in a secret. Only
// meaningful with a full room.
func (r *Room) AllReady() bool {
	for i := range r.Players {
		if !r.Players[i].Ready {
			return false
		}
	}
	return len(r.Players) == MaxPlayers
}

// Clone returns a deep copy of the room. Storage backends and view
// projection work on clones so callers never share mutable state.
func (r *Room) Clone() *Room {
	clone := *r

	clone.Players = make([]Player, len(r.Players))
	for i, p := range r.Players {
		cp := p
		cp.Guesses = make([]Guess, len(p.Guesses))
		for j, g := range p.Guesses {
			cg := g
			cg.Feedback = append([]Verdict(nil), g.Feedback...)
			cp.Guesses[j] = cg
		}
		clone.Players[i] = cp
	}

	if r.LastReaction != nil {
		reaction := *r.LastReaction
		clone.LastReaction = &reaction
	}

	return &clone
}
