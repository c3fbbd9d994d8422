package mocks

import (
	"fmt"

	"github.com/Johnpaulreju/Digit-duel/internal/dependencies/ident"
)

// MockIdent is a mock implementation of the ID generator for testing.
// It returns queued IDs first, then falls back to a deterministic sequence.
type MockIdent struct {
	IDResults []string
	idIndex   int
	seq       int
}

// Ensure MockIdent implements Generator
var _ ident.Generator = (*MockIdent)(nil)

// NewMockIdent creates a new MockIdent
func NewMockIdent() *MockIdent {
	return &MockIdent{}
}

// NewID returns the next queued ID, or a generated sequential one
func (g *MockIdent) NewID() string {
	if g.idIndex < len(g.IDResults) {
		result := g.IDResults[g.idIndex]
		g.idIndex++
		return result
	}
	g.seq++
	return fmt.Sprintf("mock-id-%d", g.seq)
}

// QueueID adds values to the ID result queue
func (g *MockIdent) QueueID(values ...string) {
	g.IDResults = append(g.IDResults, values...)
}
