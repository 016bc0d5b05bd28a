// internal/ai/gemini.go
//
// Gemini-backed Gateway implementation.
// Responsibilities:
//   - Build a GenerativeModel with system instruction and, for structured
//     requests, application/json output pinned to a response schema.
//   - Map SDK errors to ProviderError (keeping the upstream HTTP status,
//     so 503 stays visible as overload).
//   - Extract the first text part of the first candidate; surface the block
//     reason when the prompt was filtered and nothing came back.
//
// One outbound call per Complete; no retries.

package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// Gemini calls the Gemini generateContent API.
type Gemini struct {
	apiKey string
	model  string
}

// NewGemini constructs a Gemini gateway for the given API key and model name.
func NewGemini(apiKey, model string) *Gemini {
	return &Gemini{
		apiKey: strings.TrimSpace(apiKey),
		model:  strings.TrimSpace(model),
	}
}

// Complete sends one completion request and returns the raw text payload
// (code fences stripped). See Gateway for the error contract.
func (g *Gemini) Complete(ctx context.Context, req Request) (string, error) {
	if g.apiKey == "" {
		return "", errors.New("ai: GEMINI_API_KEY is empty")
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return "", fmt.Errorf("ai: new client: %w", err)
	}
	defer cl.Close()

	m := cl.GenerativeModel(g.model)
	if req.Schema != nil {
		m.GenerationConfig = genai.GenerationConfig{
			Temperature:      ptrFloat32(0),
			ResponseMIMEType: "application/json",
			ResponseSchema:   req.Schema,
		}
	}
	if req.System != "" {
		m.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(req.System)},
		}
	}

	resp, err := m.GenerateContent(ctx, genai.Text(req.User))
	if err != nil {
		var gerr *googleapi.Error
		if errors.As(err, &gerr) {
			return "", &ProviderError{Status: gerr.Code, Message: gerr.Message}
		}
		return "", &ProviderError{Status: 0, Message: err.Error()}
	}

	txt := firstText(resp)
	if txt == "" {
		if resp != nil && resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != genai.BlockReasonUnspecified {
			return "", fmt.Errorf("%w (blocked: %s)", ErrEmptyContent, resp.PromptFeedback.BlockReason)
		}
		return "", ErrEmptyContent
	}
	return StripCodeFences(txt), nil
}

// firstText returns the first text part among the response candidates.
func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}

func ptrFloat32(v float32) *float32 { return &v }
