package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Johnpaulreju/Digit-duel/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeRoomNotFound      = "ROOM_NOT_FOUND"
	CodeRoomFull          = "ROOM_FULL"
	CodePlayerNotFound    = "PLAYER_NOT_FOUND"
	CodeNotRoomMember     = "NOT_ROOM_MEMBER"
	CodeInvalidDigitCount = "INVALID_DIGIT_COUNT"
	CodeInvalidSecret     = "INVALID_SECRET"
	CodeSecretAlreadySet  = "SECRET_ALREADY_SET"
	CodeInvalidGuess      = "INVALID_GUESS"
	CodeWrongPhase        = "WRONG_PHASE"
	CodeOpponentNotReady  = "OPPONENT_NOT_READY"
	CodeUnsupportedEmoji  = "UNSUPPORTED_EMOJI"
	CodeServerBusy        = "SERVER_BUSY"
	CodeInternalError     = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError. Every guard failure the
// room service can report maps to a deterministic status; anything
// unrecognized is a retryable internal error.
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrRoomNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeRoomNotFound, "Room not found"}}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found in this room"}}
	case errors.Is(err, model.ErrRoomFull):
		return &httpError{http.StatusConflict, APIError{CodeRoomFull, "Room already has two players"}}
	case errors.Is(err, model.ErrNotRoomMember):
		return &httpError{http.StatusForbidden, APIError{CodeNotRoomMember, "Not a member of this room"}}
	case errors.Is(err, model.ErrInvalidDigitCount):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidDigitCount, "Digit count must be 4, 5 or 6"}}
	case errors.Is(err, model.ErrInvalidSecret):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidSecret, "Secret must be exactly the room's digit count"}}
	case errors.Is(err, model.ErrSecretAlreadySet):
		return &httpError{http.StatusConflict, APIError{CodeSecretAlreadySet, "Secret already set for this round"}}
	case errors.Is(err, model.ErrInvalidGuess):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidGuess, "Guess must be exactly the room's digit count"}}
	case errors.Is(err, model.ErrWrongPhase):
		return &httpError{http.StatusConflict, APIError{CodeWrongPhase, "Not allowed in the room's current phase"}}
	case errors.Is(err, model.ErrOpponentNotReady):
		return &httpError{http.StatusConflict, APIError{CodeOpponentNotReady, "Opponent has not set a secret yet"}}
	case errors.Is(err, model.ErrUnsupportedEmoji):
		return &httpError{http.StatusBadRequest, APIError{CodeUnsupportedEmoji, "Emoji is not in the allowed set"}}
	case errors.Is(err, model.ErrServerBusy):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeServerBusy, "No room code available, try again"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
