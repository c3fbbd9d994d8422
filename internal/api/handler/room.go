package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Johnpaulreju/Digit-duel/internal/api/request"
	"github.com/Johnpaulreju/Digit-duel/internal/api/response"
	"github.com/Johnpaulreju/Digit-duel/internal/model"
	"github.com/Johnpaulreju/Digit-duel/internal/services/room"
)

// RoomHandler handles room-related endpoints
type RoomHandler struct {
	roomController *room.Controller
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(roomController *room.Controller) *RoomHandler {
	return &RoomHandler{
		roomController: roomController,
	}
}

func roomID(r *http.Request) model.RoomID {
	return model.RoomID(mux.Vars(r)["code"])
}

// Create handles POST /api/v1/rooms
func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid JSON body"))
		return
	}
	if req.Name == "" {
		WriteError(w, NewInvalidRequestError("name is required"))
		return
	}

	created, player, err := h.roomController.CreateRoom(r.Context(), req.Name, req.Avatar, req.DigitCount)
	if err != nil {
		WriteError(w, err)
		return
	}

	view, err := h.roomController.ViewForPlayer(created, player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.CreateRoomResponse{
		Room:     response.RoomFromModel(view),
		PlayerID: string(player.ID),
	})
}

// Get handles GET /api/v1/rooms/{code}
// The requesting player's ID is passed as the player_id query parameter
// so the response can be redacted for that player.
func (h *RoomHandler) Get(w http.ResponseWriter, r *http.Request) {
	playerID := model.PlayerID(r.URL.Query().Get("player_id"))
	if playerID == "" {
		WriteError(w, NewInvalidRequestError("player_id query parameter is required"))
		return
	}

	got, err := h.roomController.GetRoom(r.Context(), roomID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	view, err := h.roomController.ViewForPlayer(got, playerID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RoomFromModel(view))
}

// Join handles POST /api/v1/rooms/{code}/join
func (h *RoomHandler) Join(w http.ResponseWriter, r *http.Request) {
	var req request.JoinRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid JSON body"))
		return
	}
	if req.Name == "" {
		WriteError(w, NewInvalidRequestError("name is required"))
		return
	}

	joined, player, err := h.roomController.JoinRoom(r.Context(), roomID(r), req.Name, req.Avatar)
	if err != nil {
		WriteError(w, err)
		return
	}

	view, err := h.roomController.ViewForPlayer(joined, player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CreateRoomResponse{
		Room:     response.RoomFromModel(view),
		PlayerID: string(player.ID),
	})
}

// SetSecret handles POST /api/v1/rooms/{code}/secret
func (h *RoomHandler) SetSecret(w http.ResponseWriter, r *http.Request) {
	var req request.SetSecretRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid JSON body"))
		return
	}

	playerID := model.PlayerID(req.PlayerID)
	updated, err := h.roomController.SetSecret(r.Context(), roomID(r), playerID, req.Secret)
	if err != nil {
		WriteError(w, err)
		return
	}

	view, err := h.roomController.ViewForPlayer(updated, playerID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RoomFromModel(view))
}

// Guess handles POST /api/v1/rooms/{code}/guess
func (h *RoomHandler) Guess(w http.ResponseWriter, r *http.Request) {
	var req request.MakeGuessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid JSON body"))
		return
	}

	playerID := model.PlayerID(req.PlayerID)
	outcome, err := h.roomController.MakeGuess(r.Context(), roomID(r), playerID, req.Guess)
	if err != nil {
		WriteError(w, err)
		return
	}

	view, err := h.roomController.ViewForPlayer(outcome.Room, playerID)
	if err != nil {
		WriteError(w, err)
		return
	}

	feedback := make([]string, len(outcome.Feedback))
	for i, v := range outcome.Feedback {
		feedback[i] = string(v)
	}

	response.JSON(w, http.StatusOK, response.GuessResponse{
		Room:     response.RoomFromModel(view),
		Feedback: feedback,
		IsWin:    outcome.IsWin,
	})
}

// Rematch handles POST /api/v1/rooms/{code}/rematch
func (h *RoomHandler) Rematch(w http.ResponseWriter, r *http.Request) {
	var req request.RematchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid JSON body"))
		return
	}

	playerID := model.PlayerID(req.PlayerID)
	updated, err := h.roomController.Rematch(r.Context(), roomID(r), playerID)
	if err != nil {
		WriteError(w, err)
		return
	}

	view, err := h.roomController.ViewForPlayer(updated, playerID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RoomFromModel(view))
}

// React handles POST /api/v1/rooms/{code}/reaction
func (h *RoomHandler) React(w http.ResponseWriter, r *http.Request) {
	var req request.SendReactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid JSON body"))
		return
	}

	playerID := model.PlayerID(req.PlayerID)
	updated, err := h.roomController.SendReaction(r.Context(), roomID(r), playerID, req.Emoji)
	if err != nil {
		WriteError(w, err)
		return
	}

	view, err := h.roomController.ViewForPlayer(updated, playerID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RoomFromModel(view))
}
