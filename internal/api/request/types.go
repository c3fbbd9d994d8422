package request

// CreateRoomRequest is the request body for creating a room
type CreateRoomRequest struct {
	Name       string `json:"name"`
	Avatar     string `json:"avatar"`
	DigitCount int    `json:"digit_count,omitempty"`
}

// JoinRoomRequest is the request body for joining a room
type JoinRoomRequest struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// SetSecretRequest is the request body for locking in a secret
type SetSecretRequest struct {
	PlayerID string `json:"player_id"`
	Secret   string `json:"secret"`
}

// MakeGuessRequest is the request body for submitting a guess
type MakeGuessRequest struct {
	PlayerID string `json:"player_id"`
	Guess    string `json:"guess"`
}

// RematchRequest is the request body for starting a rematch
type RematchRequest struct {
	PlayerID string `json:"player_id"`
}

// SendReactionRequest is the request body for sending a reaction
type SendReactionRequest struct {
	PlayerID string `json:"player_id"`
	Emoji    string `json:"emoji"`
}
