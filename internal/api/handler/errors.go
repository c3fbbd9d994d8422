package handler

import (
	"net/http"

	"github.com/Johnpaulreju/Digit-duel/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest    = apierr.CodeInvalidRequest
	CodeRoomNotFound      = apierr.CodeRoomNotFound
	CodeRoomFull          = apierr.CodeRoomFull
	CodePlayerNotFound    = apierr.CodePlayerNotFound
	CodeNotRoomMember     = apierr.CodeNotRoomMember
	CodeInvalidDigitCount = apierr.CodeInvalidDigitCount
	CodeInvalidSecret     = apierr.CodeInvalidSecret
	CodeSecretAlreadySet  = apierr.CodeSecretAlreadySet
	CodeInvalidGuess      = apierr.CodeInvalidGuess
	CodeWrongPhase        = apierr.CodeWrongPhase
	CodeOpponentNotReady  = apierr.CodeOpponentNotReady
	CodeUnsupportedEmoji  = apierr.CodeUnsupportedEmoji
	CodeServerBusy        = apierr.CodeServerBusy
	CodeInternalError     = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return apierr.NewInternalError()
}
