package model

import "time"

// Reaction is an ephemeral social reaction shown to both players.
// It never affects gameplay.
type Reaction struct {
	Emoji    string
	PlayerID PlayerID
	SentAt   time.Time
}

// allowedReactions is the fixed emoji allow-list for SendReaction
var allowedReactions = map[string]struct{}{
	"👍": {},
	"👎": {},
	"😂": {},
	"😮": {},
	"😢": {},
	"🔥": {},
	"🎉": {},
}

// IsAllowedReaction reports whether the emoji is in the reaction allow-list
func IsAllowedReaction(emoji string) bool {
	_, ok := allowedReactions[emoji]
	return ok
}
