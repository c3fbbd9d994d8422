package room

import (
	"context"
	"log/slog"

	"github.com/Johnpaulreju/Digit-duel/internal/dependencies/clock"
	"github.com/Johnpaulreju/Digit-duel/internal/dependencies/ident"
	"github.com/Johnpaulreju/Digit-duel/internal/dependencies/random"
	"github.com/Johnpaulreju/Digit-duel/internal/model"
	"github.com/Johnpaulreju/Digit-duel/internal/services/feedback"
	"github.com/Johnpaulreju/Digit-duel/internal/storage"
)

const (
	// RoomCodeLength is the length of generated room codes
	RoomCodeLength = 6
	// RoomCodeAlphabet is the characters used in room codes (avoids
	// confusing chars like 0/O and 1/I)
	RoomCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	// MaxCodeAttempts bounds the collision-retry loop when generating a
	// room code; exhausting it fails with ErrServerBusy
	MaxCodeAttempts = 5
)

// Controller manages the room state machine. Every state-changing
// operation runs as a single load-validate-mutate-save unit through
// storage.UpdateRoom, which serializes racing writers per room.
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	ident   ident.Generator
	logger  *slog.Logger
}

// NewController creates a new room Controller
func NewController(
	storage storage.Storage,
	clock clock.Clock,
	random random.Random,
	ident ident.Generator,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		random:  random,
		ident:   ident,
		logger:  logger,
	}
}

// GuessOutcome is the result of a submitted guess
type GuessOutcome struct {
	Room     *model.Room
	Feedback []model.Verdict
	IsWin    bool
}

// CreateRoom creates a new room with the given player as host.
// digitCount of 0 selects the default; otherwise it must be one of the
// allowed secret lengths.
func (c *Controller) CreateRoom(ctx context.Context, name, avatar string, digitCount int) (*model.Room, *model.Player, error) {
	if digitCount == 0 {
		digitCount = model.DefaultDigitCount
	}
	if !model.IsAllowedDigitCount(digitCount) {
		return nil, nil, model.ErrInvalidDigitCount
	}

	code, err := c.generateRoomCode(ctx)
	if err != nil {
		return nil, nil, err
	}

	now := c.clock.Now()
	host := model.Player{
		ID:       model.PlayerID(c.ident.NewID()),
		Name:     name,
		Avatar:   avatar,
		JoinedAt: now,
	}

	room := &model.Room{
		ID:         code,
		Players:    []model.Player{host},
		DigitCount: digitCount,
		Status:     model.RoomStatusWaiting,
		Round:      1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := c.storage.SaveRoom(ctx, room); err != nil {
		c.logger.Error("failed to save room",
			slog.String("room_id", string(code)),
			slog.String("error", err.Error()),
		)
		return nil, nil, err
	}

	c.logger.Info("room created",
		slog.String("room_id", string(code)),
		slog.Int("digit_count", digitCount),
	)

	return room, &host, nil
}

// generateRoomCode picks an unused room code, retrying a bounded number
// of times on collision
func (c *Controller) generateRoomCode(ctx context.Context) (model.RoomID, error) {
	for attempt := 0; attempt < MaxCodeAttempts; attempt++ {
		code := model.RoomID(c.random.String(RoomCodeLength, RoomCodeAlphabet))
		exists, err := c.storage.RoomExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	c.logger.Warn("room code space exhausted",
		slog.Int("attempts", MaxCodeAttempts),
	)
	return "", model.ErrServerBusy
}

// GetRoom retrieves a room by code
func (c *Controller) GetRoom(ctx context.Context, id model.RoomID) (*model.Room, error) {
	return c.storage.GetRoom(ctx, id)
}

// JoinRoom adds a second player to a room. Joining the second player
// moves the room to the secret-setting phase.
func (c *Controller) JoinRoom(ctx context.Context, id model.RoomID, name, avatar string) (*model.Room, *model.Player, error) {
	now := c.clock.Now()
	player := model.Player{
		ID:       model.PlayerID(c.ident.NewID()),
		Name:     name,
		Avatar:   avatar,
		JoinedAt: now,
	}

	room, err := c.storage.UpdateRoom(ctx, id, func(r *model.Room) error {
		if r.IsFull() {
			return model.ErrRoomFull
		}
		r.Players = append(r.Players, player)
		if r.IsFull() {
			r.Status = model.RoomStatusSettingSecret
		}
		r.UpdatedAt = c.clock.Now()
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	c.logger.Info("player joined",
		slog.String("room_id", string(id)),
		slog.String("player_id", string(player.ID)),
	)

	return room, &player, nil
}

// SetSecret locks in a player's secret for the current round. The secret
// is write-once per round; both players locking in moves the room to the
// guessing phase.
func (c *Controller) SetSecret(ctx context.Context, id model.RoomID, playerID model.PlayerID, secret string) (*model.Room, error) {
	return c.storage.UpdateRoom(ctx, id, func(r *model.Room) error {
		player := r.GetPlayer(playerID)
		if player == nil {
			return model.ErrPlayerNotFound
		}
		if !feedback.IsDigits(secret) || len(secret) != r.DigitCount {
			return model.ErrInvalidSecret
		}
		if player.Ready {
			return model.ErrSecretAlreadySet
		}

		player.Secret = secret
		player.Ready = true
		if r.AllReady() {
			r.Status = model.RoomStatusInProgress
		}
		r.UpdatedAt = c.clock.Now()
		return nil
	})
}

// MakeGuess submits a guess against the opponent's secret. The feedback
// is computed once, here, and stored with the guess. An exact match
// finishes the round with the submitter as winner; a guess arriving after
// the round finished fails with ErrWrongPhase, so two racing winning
// guesses resolve to exactly one recorded winner.
func (c *Controller) MakeGuess(ctx context.Context, id model.RoomID, playerID model.PlayerID, guess string) (*GuessOutcome, error) {
	outcome := &GuessOutcome{}

	updated, err := c.storage.UpdateRoom(ctx, id, func(r *model.Room) error {
		if r.Status != model.RoomStatusInProgress {
			return model.ErrWrongPhase
		}
		if !feedback.IsDigits(guess) || len(guess) != r.DigitCount {
			return model.ErrInvalidGuess
		}

		player := r.GetPlayer(playerID)
		if player == nil {
			return model.ErrPlayerNotFound
		}
		opponent := r.Opponent(playerID)
		if opponent == nil || !opponent.HasSecret() {
			return model.ErrOpponentNotReady
		}

		verdicts, err := feedback.Evaluate(opponent.Secret, guess)
		if err != nil {
			// Lengths were validated above; this is a contract violation
			return err
		}

		player.Guesses = append(player.Guesses, model.Guess{
			Value:     guess,
			Feedback:  verdicts,
			CreatedAt: c.clock.Now(),
		})

		outcome.Feedback = verdicts
		if guess == opponent.Secret {
			r.Status = model.RoomStatusFinished
			r.WinnerID = playerID
			outcome.IsWin = true
		}
		r.UpdatedAt = c.clock.Now()
		return nil
	})
	if err != nil {
		return nil, err
	}

	if outcome.IsWin {
		c.logger.Info("round won",
			slog.String("room_id", string(id)),
			slog.String("winner_id", string(playerID)),
			slog.Int("round", updated.Round),
		)
	}

	outcome.Room = updated
	return outcome, nil
}

// Rematch resets the room for a new round: secrets, readiness, guess
// history, winner and reaction are cleared, and the round counter
// increments. With both players still present the room goes straight to
// secret-setting; otherwise it waits for a second player again.
func (c *Controller) Rematch(ctx context.Context, id model.RoomID, playerID model.PlayerID) (*model.Room, error) {
	room, err := c.storage.UpdateRoom(ctx, id, func(r *model.Room) error {
		if r.GetPlayer(playerID) == nil {
			return model.ErrPlayerNotFound
		}

		for i := range r.Players {
			r.Players[i].Secret = ""
			r.Players[i].Ready = false
			r.Players[i].Guesses = nil
			r.Players[i].LastReaction = ""
		}
		r.WinnerID = ""
		r.LastReaction = nil
		r.Round++

		if r.IsFull() {
			r.Status = model.RoomStatusSettingSecret
		} else {
			r.Status = model.RoomStatusWaiting
		}
		r.UpdatedAt = c.clock.Now()
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("rematch started",
		slog.String("room_id", string(id)),
		slog.Int("round", room.Round),
	)

	return room, nil
}

// SendReaction records an ephemeral emoji reaction from a room member.
// The emoji must come from the fixed allow-list; reactions never affect
// the room's phase.
func (c *Controller) SendReaction(ctx context.Context, id model.RoomID, playerID model.PlayerID, emoji string) (*model.Room, error) {
	return c.storage.UpdateRoom(ctx, id, func(r *model.Room) error {
		player := r.GetPlayer(playerID)
		if player == nil {
			return model.ErrPlayerNotFound
		}
		if !model.IsAllowedReaction(emoji) {
			return model.ErrUnsupportedEmoji
		}

		now := c.clock.Now()
		r.LastReaction = &model.Reaction{
			Emoji:    emoji,
			PlayerID: playerID,
			SentAt:   now,
		}
		player.LastReaction = emoji
		player.LastReactionAt = now
		r.UpdatedAt = now
		return nil
	})
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateRoom(ctx context.Context, name, avatar string, digitCount int) (*model.Room, *model.Player, error)
	GetRoom(ctx context.Context, id model.RoomID) (*model.Room, error)
	JoinRoom(ctx context.Context, id model.RoomID, name, avatar string) (*model.Room, *model.Player, error)
	SetSecret(ctx context.Context, id model.RoomID, playerID model.PlayerID, secret string) (*model.Room, error)
	MakeGuess(ctx context.Context, id model.RoomID, playerID model.PlayerID, guess string) (*GuessOutcome, error)
	Rematch(ctx context.Context, id model.RoomID, playerID model.PlayerID) (*model.Room, error)
	SendReaction(ctx context.Context, id model.RoomID, playerID model.PlayerID, emoji string) (*model.Room, error)
	ViewForPlayer(room *model.Room, playerID model.PlayerID) (*model.Room, error)
}

var _ ControllerInterface = (*Controller)(nil)
