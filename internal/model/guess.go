package model

import "time"

// Verdict is the per-position result of comparing a guess digit against
// the secret
type Verdict string

const (
	// VerdictCorrect means the digit is in the secret at this position
	VerdictCorrect Verdict = "correct"
	// VerdictMisplaced means the digit is in the secret at another,
	// not-yet-matched position
	VerdictMisplaced Verdict = "misplaced"
	// VerdictWrong means the digit has no remaining match in the secret
	VerdictWrong Verdict = "wrong"
)

// Guess is a single submitted guess and its feedback. Feedback is computed
// once at submission time and never recomputed.
type Guess struct {
	Value     string
	Feedback  []Verdict
	CreatedAt time.Time
}
