package redis

import "time"

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// RoomTTL is how long a room survives after its most recent write
	RoomTTL time.Duration

	// MaxTxRetries bounds the optimistic retry loop in UpdateRoom when
	// a concurrent writer touches the same room
	MaxTxRetries int
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		PoolSize:     10,
		MinIdleConns: 2,
		RoomTTL:      time.Hour,
		MaxTxRetries: 8,
	}
}
