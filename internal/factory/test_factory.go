package factory

import (
	"io"
	"log/slog"
	"time"

	"github.com/Johnpaulreju/Digit-duel/internal/dependencies/mocks"
	"github.com/Johnpaulreju/Digit-duel/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
	MockIdent  *mocks.MockIdent
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	mockIdent := mocks.NewMockIdent()
	store := memory.New(memory.WithClock(mockClock))
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	app := newWithDependencies(store, mockClock, mockRandom, mockIdent, logger)

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
		MockIdent:  mockIdent,
	}
}
