// internal/ai/errors.go
//
// Error taxonomy for the AI gateway and response extractor.
// Defines:
//   - ProviderError: non-success response from the Gemini API (503 = overloaded).
//   - ErrEmptyContent: provider answered but carried no text payload.
//   - MalformedError: content could not be parsed as the expected JSON shape.
//
// None of these are retried by this package; callers decide.

package ai

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrEmptyContent signals a provider response with no extractable text
// (typically a safety block or an empty candidate list).
var ErrEmptyContent = errors.New("ai: empty response content")

// ProviderError wraps a non-2xx (or transport-level) failure from the
// provider, keeping the upstream HTTP status for the API boundary.
type ProviderError struct {
	Status  int    // upstream HTTP status; 0 when unreachable
	Message string // upstream error message
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("ai: provider error (status %d): %s", e.Status, e.Message)
}

// Overloaded reports whether the provider signalled transient overload.
func (e *ProviderError) Overloaded() bool {
	return e.Status == http.StatusServiceUnavailable
}

// maxSnippet bounds how much raw model output a MalformedError carries.
const maxSnippet = 160

// MalformedError signals model output that failed both the strict JSON parse
// and the balanced-fragment fallback. Snippet is truncated to maxSnippet.
type MalformedError struct {
	Snippet string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("ai: malformed model output: %q", e.Snippet)
}

// snippet truncates raw output for inclusion in a MalformedError.
func snippet(s string) string {
	if len(s) > maxSnippet {
		return s[:maxSnippet] + "..."
	}
	return s
}
