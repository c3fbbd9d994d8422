package storage

import (
	"context"

	"github.com/Johnpaulreju/Digit-duel/internal/model"
)

// Storage defines the interface for room persistence.
//
// Rooms are never explicitly deleted; backends expire them a bounded
// duration after the most recent write.
type Storage interface {
	// SaveRoom persists a room, refreshing its time-to-live
	SaveRoom(ctx context.Context, room *model.Room) error

	// GetRoom retrieves a room by code, returning model.ErrRoomNotFound
	// if it does not exist or has expired
	GetRoom(ctx context.Context, id model.RoomID) (*model.Room, error)

	// RoomExists reports whether a live room holds the given code
	RoomExists(ctx context.Context, id model.RoomID) (bool, error)

	// UpdateRoom atomically applies mutate to the stored room. The load,
	// mutation and save are serialized against concurrent UpdateRoom
	// calls for the same code, so two racing writers can never silently
	// overwrite each other. mutate receives a private copy; if it returns
	// an error nothing is saved and the error is returned unchanged.
	// The saved room's time-to-live is refreshed.
	UpdateRoom(ctx context.Context, id model.RoomID, mutate func(*model.Room) error) (*model.Room, error)
}
