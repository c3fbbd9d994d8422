package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config holds CLI configuration
type Config struct {
	ServerURL   string
	SessionFile string
	Output      string
	Verbose     bool

	// Session state loaded from the session file
	RoomCode string
	PlayerID string
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL:   getEnvOrDefault("DUELCTL_SERVER", "http://localhost:8080"),
		SessionFile: getEnvOrDefault("DUELCTL_SESSION_FILE", defaultSessionFile()),
		Output:      "text",
		Verbose:     false,
	}
}

// session is the on-disk record of the player's current duel. Commands
// fall back to it so the room code and player ID don't have to be
// repeated on every invocation.
type session struct {
	RoomCode string `json:"room_code"`
	PlayerID string `json:"player_id"`
}

// LoadSession fills in room code and player ID from the session file,
// keeping any values already set via flags
func (c *Config) LoadSession() error {
	data, err := os.ReadFile(c.SessionFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // No session file is fine
		}
		return err
	}

	var s session
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	if c.RoomCode == "" {
		c.RoomCode = s.RoomCode
	}
	if c.PlayerID == "" {
		c.PlayerID = s.PlayerID
	}
	return nil
}

// SaveSession saves the current duel to the session file
func (c *Config) SaveSession(roomCode, playerID string) error {
	c.RoomCode = roomCode
	c.PlayerID = playerID

	dir := filepath.Dir(c.SessionFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	data, err := json.Marshal(session{RoomCode: roomCode, PlayerID: playerID})
	if err != nil {
		return err
	}
	return os.WriteFile(c.SessionFile, data, 0600)
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".duelctl/session"
	}
	return filepath.Join(home, ".duelctl", "session")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
