package model

import "errors"

// Common errors used across the application
var (
	// Room errors
	ErrRoomNotFound  = errors.New("room not found")
	ErrRoomFull      = errors.New("room is full")
	ErrNotRoomMember = errors.New("player is not a member of this room")
	ErrServerBusy    = errors.New("no free room code available")

	// Player errors
	ErrPlayerNotFound = errors.New("player not found in room")

	// Round errors
	ErrInvalidDigitCount = errors.New("unsupported digit count")
	ErrInvalidSecret     = errors.New("secret must be exactly the room's digit count")
	ErrSecretAlreadySet  = errors.New("secret already set for this round")
	ErrInvalidGuess      = errors.New("guess must be exactly the room's digit count")
	ErrWrongPhase        = errors.New("operation not allowed in the room's current phase")
	ErrOpponentNotReady  = errors.New("opponent has not set a secret")

	// Reaction errors
	ErrUnsupportedEmoji = errors.New("emoji is not in the allowed set")

	// Evaluator errors
	ErrLengthMismatch = errors.New("secret and guess lengths differ")
)
