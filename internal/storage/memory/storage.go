package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Johnpaulreju/Digit-duel/internal/dependencies/clock"
	"github.com/Johnpaulreju/Digit-duel/internal/model"
	"github.com/Johnpaulreju/Digit-duel/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Useful for local development and tests.
type Storage struct {
	mu sync.RWMutex

	rooms map[model.RoomID]*roomEntry

	ttl   time.Duration
	clock clock.Clock
}

type roomEntry struct {
	room      *model.Room
	expiresAt time.Time
}

// Option configures the in-memory storage
type Option func(*Storage)

// WithTTL sets the room time-to-live (default one hour)
func WithTTL(ttl time.Duration) Option {
	return func(s *Storage) { s.ttl = ttl }
}

// WithClock sets the clock used for expiry (default system clock)
func WithClock(c clock.Clock) Option {
	return func(s *Storage) { s.clock = c }
}

// New creates a new in-memory storage instance
func New(opts ...Option) *Storage {
	s := &Storage{
		rooms: make(map[model.RoomID]*roomEntry),
		ttl:   time.Hour,
		clock: clock.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// live returns the entry for id if it exists and has not expired.
// Caller must hold at least a read lock.
func (s *Storage) live(id model.RoomID) *roomEntry {
	entry, ok := s.rooms[id]
	if !ok {
		return nil
	}
	if s.clock.Now().After(entry.expiresAt) {
		return nil
	}
	return entry
}

// purgeExpired drops every expired entry so the map does not grow
// without bound in a long-lived process. Caller must hold the write lock.
func (s *Storage) purgeExpired() {
	now := s.clock.Now()
	for id, entry := range s.rooms {
		if now.After(entry.expiresAt) {
			delete(s.rooms, id)
		}
	}
}

func (s *Storage) SaveRoom(ctx context.Context, room *model.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeExpired()
	s.rooms[room.ID] = &roomEntry{
		room:      room.Clone(),
		expiresAt: s.clock.Now().Add(s.ttl),
	}
	return nil
}

func (s *Storage) GetRoom(ctx context.Context, id model.RoomID) (*model.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry := s.live(id)
	if entry == nil {
		return nil, model.ErrRoomNotFound
	}
	return entry.room.Clone(), nil
}

func (s *Storage) RoomExists(ctx context.Context, id model.RoomID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.live(id) != nil, nil
}

// UpdateRoom holds the write lock across the whole load-mutate-save
// sequence, so updates to a room are totally ordered.
func (s *Storage) UpdateRoom(ctx context.Context, id model.RoomID, mutate func(*model.Room) error) (*model.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeExpired()

	entry := s.live(id)
	if entry == nil {
		return nil, model.ErrRoomNotFound
	}

	room := entry.room.Clone()
	if err := mutate(room); err != nil {
		return nil, err
	}

	s.rooms[id] = &roomEntry{
		room:      room,
		expiresAt: s.clock.Now().Add(s.ttl),
	}
	return room.Clone(), nil
}
