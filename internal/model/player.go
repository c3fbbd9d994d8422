package model

import "time"

// PlayerID uniquely identifies a player within a room
type PlayerID string

// Player represents one participant in a duel
type Player struct {
	ID     PlayerID
	Name   string
	Avatar string

	// Secret is the digit string this player locked in for the current
	// round. Empty until set; cleared only by a rematch. Never sent to
	// the opponent while the round is unresolved.
	Secret string

	// Ready is true iff Secret is set for the current round
	Ready bool

	// Guesses this player has submitted against the opponent's secret,
	// in submission order. Cleared on rematch.
	Guesses []Guess

	// Last reaction sent by this player (cosmetic)
	LastReaction   string
	LastReactionAt time.Time

	JoinedAt time.Time
}

// HasSecret reports whether the player has locked in a secret this round
func (p *Player) HasSecret() bool {
	return p.Secret != ""
}
