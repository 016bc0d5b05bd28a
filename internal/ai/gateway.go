// internal/ai/gateway.go
//
// Gateway abstracts the text-generation provider behind a single Complete
// call so game engines can be exercised with a fake in tests. The production
// implementation is Gemini (gemini.go).

package ai

import (
	"context"

	"github.com/google/generative-ai-go/genai"
)

// Request is one system/user prompt pair. When Schema is non-nil the model
// is asked for JSON conforming to it; otherwise plain text is returned.
type Request struct {
	System string
	User   string
	Schema *genai.Schema
}

// Gateway performs one completion call against the provider.
// Implementations make exactly one outbound call per invocation: no retries,
// no caching. Errors are ProviderError, ErrEmptyContent, or transport errors.
type Gateway interface {
	Complete(ctx context.Context, req Request) (string, error)
}
