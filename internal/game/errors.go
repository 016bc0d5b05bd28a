// internal/game/errors.go
//
// Error taxonomy for session lifecycle and grading input validation.
// Provider-side failures live in internal/ai; these cover everything the
// engine itself decides.

package game

import (
	"errors"
	"fmt"
)

// ErrSessionNotFound: lookup against an absent, expired, or already-consumed
// session id. Terminal for that id; never retried.
var ErrSessionNotFound = errors.New("game: session not found")

// ErrNoVerifiedKeywords: none of the model-proposed blank keywords actually
// occur in the generated text, so no quiz can be built. No session is created.
var ErrNoVerifiedKeywords = errors.New("game: model produced no verifiable keywords")

// AnswerCountError: submission length disagrees with the stored answer key.
// The session is left untouched; a corrected submission may follow.
type AnswerCountError struct {
	Want int
	Got  int
}

func (e *AnswerCountError) Error() string {
	return fmt.Sprintf("game: expected %d answers, received %d", e.Want, e.Got)
}

// BlankCountError: the verified keyword list could not be re-located in the
// text during blanking (overlapping keywords consume each other's matches).
// Fail-closed: the session has been deleted and the client must regenerate.
type BlankCountError struct {
	Want int // verified keyword count
	Got  int // placeholders actually produced
}

func (e *BlankCountError) Error() string {
	return fmt.Sprintf("game: blank mismatch: expected %d placeholders, produced %d; session discarded", e.Want, e.Got)
}
