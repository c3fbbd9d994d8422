package feedback

import (
	"github.com/Johnpaulreju/Digit-duel/internal/model"
)

// Evaluate scores a guess against a secret, producing one verdict per
// position. Both inputs must have the same length; the room service
// validates this before calling, so ErrLengthMismatch indicates a
// programming error in the caller.
//
// The scoring is the classic two-pass, duplicate-safe comparison:
// exact positional matches are consumed first, then each remaining guess
// digit claims the leftmost unconsumed matching secret digit. The
// left-to-right claim order is load-bearing: it is what makes verdicts
// deterministic when the secret or guess repeats digits.
func Evaluate(secret, guess string) ([]model.Verdict, error) {
	if len(secret) != len(guess) {
		return nil, model.ErrLengthMismatch
	}

	n := len(secret)
	verdicts := make([]model.Verdict, n)
	consumed := make([]bool, n)

	// First pass: exact matches consume their secret position
	for i := 0; i < n; i++ {
		if guess[i] == secret[i] {
			verdicts[i] = model.VerdictCorrect
			consumed[i] = true
		}
	}

	// Second pass: remaining digits claim the leftmost unconsumed match
	for i := 0; i < n; i++ {
		if verdicts[i] == model.VerdictCorrect {
			continue
		}
		verdicts[i] = model.VerdictWrong
		for j := 0; j < n; j++ {
			if !consumed[j] && secret[j] == guess[i] {
				verdicts[i] = model.VerdictMisplaced
				consumed[j] = true
				break
			}
		}
	}

	return verdicts, nil
}

// IsDigits reports whether s is non-empty and consists only of ASCII
// digits 0-9
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
