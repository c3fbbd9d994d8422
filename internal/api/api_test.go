package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Johnpaulreju/Digit-duel/internal/api"
	"github.com/Johnpaulreju/Digit-duel/internal/api/response"
	"github.com/Johnpaulreju/Digit-duel/internal/factory"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// API tests are integration tests - use production factory with real random/clock
	app, err := factory.New(factory.Config{})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		RoomController: app.RoomController,
	})

	return &testServer{
		handler: router,
	}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

// createRoom creates a room and returns its code and the host's player ID
func (ts *testServer) createRoom(t *testing.T, name string) (string, string) {
	t.Helper()

	rr := ts.request(http.MethodPost, "/api/v1/rooms", map[string]any{"name": name})
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp response.CreateRoomResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Room.ID, resp.PlayerID
}

// joinRoom joins an existing room and returns the joining player's ID
func (ts *testServer) joinRoom(t *testing.T, code, name string) string {
	t.Helper()

	rr := ts.request(http.MethodPost, "/api/v1/rooms/"+code+"/join", map[string]any{"name": name})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp response.CreateRoomResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.PlayerID
}

func (ts *testServer) setSecret(t *testing.T, code, playerID, secret string) *httptest.ResponseRecorder {
	t.Helper()
	return ts.request(http.MethodPost, "/api/v1/rooms/"+code+"/secret", map[string]any{
		"player_id": playerID,
		"secret":    secret,
	})
}

func (ts *testServer) guess(t *testing.T, code, playerID, guess string) *httptest.ResponseRecorder {
	t.Helper()
	return ts.request(http.MethodPost, "/api/v1/rooms/"+code+"/guess", map[string]any{
		"player_id": playerID,
		"guess":     guess,
	})
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestCreateRoom(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/rooms", map[string]any{
		"name":   "Alice",
		"avatar": "🦊",
	})
	assert.Equal(t, http.StatusCreated, rr.Code)

	var resp response.CreateRoomResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	assert.Len(t, resp.Room.ID, 6)
	assert.Equal(t, "waiting_for_players", resp.Room.Status)
	assert.Equal(t, 4, resp.Room.DigitCount)
	assert.Equal(t, 1, resp.Room.Round)
	assert.NotEmpty(t, resp.PlayerID)
	require.Len(t, resp.Room.Players, 1)
	assert.Equal(t, "Alice", resp.Room.Players[0].Name)
	assert.Equal(t, "🦊", resp.Room.Players[0].Avatar)
}

func TestCreateRoomCustomDigitCount(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/rooms", map[string]any{
		"name":        "Alice",
		"digit_count": 6,
	})
	assert.Equal(t, http.StatusCreated, rr.Code)

	var resp response.CreateRoomResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 6, resp.Room.DigitCount)
}

func TestCreateRoomRejectsBadDigitCount(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/rooms", map[string]any{
		"name":        "Alice",
		"digit_count": 7,
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_DIGIT_COUNT")
}

func TestCreateRoomRequiresName(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/rooms", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_REQUEST")
}

func TestJoinRoom(t *testing.T) {
	ts := newTestServer(t)
	code, _ := ts.createRoom(t, "Alice")

	rr := ts.request(http.MethodPost, "/api/v1/rooms/"+code+"/join", map[string]any{"name": "Bob"})
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp response.CreateRoomResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "setting_secret", resp.Room.Status)
	assert.Len(t, resp.Room.Players, 2)
}

func TestJoinMissingRoom(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/rooms/NOPE42/join", map[string]any{"name": "Bob"})
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "ROOM_NOT_FOUND")
}

func TestJoinFullRoom(t *testing.T) {
	ts := newTestServer(t)
	code, _ := ts.createRoom(t, "Alice")
	ts.joinRoom(t, code, "Bob")

	rr := ts.request(http.MethodPost, "/api/v1/rooms/"+code+"/join", map[string]any{"name": "Carol"})
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "ROOM_FULL")
}

func TestGetRoomRequiresPlayerID(t *testing.T) {
	ts := newTestServer(t)
	code, _ := ts.createRoom(t, "Alice")

	rr := ts.request(http.MethodGet, "/api/v1/rooms/"+code, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetRoomRejectsNonMember(t *testing.T) {
	ts := newTestServer(t)
	code, _ := ts.createRoom(t, "Alice")

	rr := ts.request(http.MethodGet, "/api/v1/rooms/"+code+"?player_id=stranger", nil)
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), "NOT_ROOM_MEMBER")
}

func TestSecretsAreRedacted(t *testing.T) {
	ts := newTestServer(t)
	code, host := ts.createRoom(t, "Alice")
	guest := ts.joinRoom(t, code, "Bob")

	rr := ts.setSecret(t, code, host, "1234")
	require.Equal(t, http.StatusOK, rr.Code)
	rr = ts.setSecret(t, code, guest, "5678")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/rooms/"+code+"?player_id="+host, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var room response.Room
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &room))
	assert.Equal(t, "in_progress", room.Status)
	for _, p := range room.Players {
		assert.Empty(t, p.Secret, "player %s secret leaked", p.Name)
		assert.True(t, p.Ready)
	}
}

func TestSetSecretValidation(t *testing.T) {
	ts := newTestServer(t)
	code, host := ts.createRoom(t, "Alice")
	ts.joinRoom(t, code, "Bob")

	rr := ts.setSecret(t, code, host, "12a4")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_SECRET")

	rr = ts.setSecret(t, code, host, "1234")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.setSecret(t, code, host, "4321")
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "SECRET_ALREADY_SET")
}

func TestGuessBeforeStartIsRejected(t *testing.T) {
	ts := newTestServer(t)
	code, host := ts.createRoom(t, "Alice")

	rr := ts.guess(t, code, host, "1234")
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "WRONG_PHASE")
}

func TestFullDuelFlow(t *testing.T) {
	ts := newTestServer(t)
	code, host := ts.createRoom(t, "Alice")
	guest := ts.joinRoom(t, code, "Bob")

	require.Equal(t, http.StatusOK, ts.setSecret(t, code, host, "1234").Code)
	require.Equal(t, http.StatusOK, ts.setSecret(t, code, guest, "5678").Code)

	// Host probes the guest's secret
	rr := ts.guess(t, code, host, "5687")
	require.Equal(t, http.StatusOK, rr.Code)

	var guessResp response.GuessResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &guessResp))
	assert.Equal(t, []string{"correct", "correct", "misplaced", "misplaced"}, guessResp.Feedback)
	assert.False(t, guessResp.IsWin)

	// Guest wins
	rr = ts.guess(t, code, guest, "1234")
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &guessResp))
	assert.True(t, guessResp.IsWin)
	assert.Equal(t, "finished", guessResp.Room.Status)
	require.NotNil(t, guessResp.Room.WinnerID)
	assert.Equal(t, guest, *guessResp.Room.WinnerID)

	// Once finished, both secrets are revealed
	rr = ts.request(http.MethodGet, fmt.Sprintf("/api/v1/rooms/%s?player_id=%s", code, host), nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var room response.Room
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &room))
	for _, p := range room.Players {
		if p.ID == host {
			assert.Empty(t, p.Secret, "own secret is never echoed back")
		} else {
			assert.Equal(t, "5678", p.Secret)
		}
	}

	// Further guesses are refused
	rr = ts.guess(t, code, host, "5678")
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "WRONG_PHASE")
}

func TestRematchResetsRoom(t *testing.T) {
	ts := newTestServer(t)
	code, host := ts.createRoom(t, "Alice")
	guest := ts.joinRoom(t, code, "Bob")

	require.Equal(t, http.StatusOK, ts.setSecret(t, code, host, "1234").Code)
	require.Equal(t, http.StatusOK, ts.setSecret(t, code, guest, "5678").Code)
	require.Equal(t, http.StatusOK, ts.guess(t, code, host, "5678").Code)

	rr := ts.request(http.MethodPost, "/api/v1/rooms/"+code+"/rematch", map[string]any{"player_id": guest})
	require.Equal(t, http.StatusOK, rr.Code)

	var room response.Room
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &room))
	assert.Equal(t, "setting_secret", room.Status)
	assert.Equal(t, 2, room.Round)
	assert.Nil(t, room.WinnerID)
	for _, p := range room.Players {
		assert.False(t, p.Ready)
		assert.Empty(t, p.Guesses)
	}
}

func TestSendReaction(t *testing.T) {
	ts := newTestServer(t)
	code, host := ts.createRoom(t, "Alice")
	ts.joinRoom(t, code, "Bob")

	rr := ts.request(http.MethodPost, "/api/v1/rooms/"+code+"/reaction", map[string]any{
		"player_id": host,
		"emoji":     "🔥",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var room response.Room
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &room))
	require.NotNil(t, room.LastReaction)
	assert.Equal(t, "🔥", room.LastReaction.Emoji)
	assert.Equal(t, host, room.LastReaction.PlayerID)
}

func TestSendReactionRejectsUnknownEmoji(t *testing.T) {
	ts := newTestServer(t)
	code, host := ts.createRoom(t, "Alice")

	rr := ts.request(http.MethodPost, "/api/v1/rooms/"+code+"/reaction", map[string]any{
		"player_id": host,
		"emoji":     "🙃",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "UNSUPPORTED_EMOJI")
}

func TestInvalidJSONBody(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/rooms", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_REQUEST")
}
