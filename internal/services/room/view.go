package room

import (
	"github.com/Johnpaulreju/Digit-duel/internal/model"
)

// ViewForPlayer projects a room into the requesting player's view as a
// redacted deep copy. The requester's own secret is never included (it
// is write-only to its holder); the opponent's secret is included only
// once the round is finished. The returned room must never be persisted.
func (c *Controller) ViewForPlayer(room *model.Room, playerID model.PlayerID) (*model.Room, error) {
	if room.GetPlayer(playerID) == nil {
		return nil, model.ErrNotRoomMember
	}

	view := room.Clone()
	for i := range view.Players {
		p := &view.Players[i]
		if p.ID == playerID {
			p.Secret = ""
			continue
		}
		if view.Status != model.RoomStatusFinished {
			p.Secret = ""
		}
	}
	return view, nil
}
