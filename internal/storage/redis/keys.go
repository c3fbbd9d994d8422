package redis

import (
	"fmt"

	"github.com/Johnpaulreju/Digit-duel/internal/model"
)

// Key prefix for all duel data
const keyPrefix = "digitduel"

// roomKey returns the Redis key for a Room
func roomKey(id model.RoomID) string {
	return fmt.Sprintf("%s:room:%s", keyPrefix, id)
}
