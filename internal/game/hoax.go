// internal/game/hoax.go
//
// Hoax-or-not quiz: one generated news snippet, one boolean-derived answer.
// The choice vocabulary is "hoax" / "fakta" (lowercased on comparison,
// capitalized in the response), matching the client.

package game

import (
	"context"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"

	"github.com/literise/ai-service/internal/ai"
)

const hoaxSystemPrompt = "Anda adalah asisten pembuat kuis literasi media. " +
	"Tugas Anda adalah membuat SATU skenario berita (nyata atau hoaks) yang viral. " +
	"Anda HARUS menghasilkan 4 hal: " +
	"1. 'news_snippet': Teks berita (sekitar 2-3 kalimat) seolah-olah viral di media sosial. " +
	"2. 'is_hoax': Boolean (true jika hoaks, false jika fakta). " +
	"3. 'explanation': Penjelasan logis mengapa ini hoaks atau fakta. " +
	"4. 'source_url': URL sumber (jika fakta) atau URL halaman debunk (jika hoaks). Gunakan 'N/A' jika tidak relevan. " +
	"Topiknya harus beragam (kesehatan, politik, sains, hiburan)." +
	"JANGAN gunakan Markdown."

var hoaxSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"news_snippet": {Type: genai.TypeString},
		"is_hoax":      {Type: genai.TypeBoolean},
		"explanation":  {Type: genai.TypeString},
		"source_url":   {Type: genai.TypeString},
	},
	Required: []string{"news_snippet", "is_hoax", "explanation"},
}

// HoaxRound is the public half of a generated hoax quiz.
type HoaxRound struct {
	SessionID   string
	NewsSnippet string
}

// HoaxVerdict is the outcome of checking the player's choice.
type HoaxVerdict struct {
	IsCorrect     bool
	CorrectAnswer string // "Hoax" or "Fakta"
	Explanation   string
	SourceURL     string
}

// GenerateHoax creates one hoax-or-not round. The truth value, explanation,
// and source stay server-side until CheckHoax.
func (e *Engine) GenerateHoax(ctx context.Context) (*HoaxRound, error) {
	raw, err := e.ai.Complete(ctx, ai.Request{
		System: hoaxSystemPrompt,
		User:   "Buatkan saya satu skenario kuis 'Hoax or Not?' baru.",
		Schema: hoaxSchema,
	})
	if err != nil {
		return nil, err
	}

	var out struct {
		NewsSnippet string `json:"news_snippet"`
		IsHoax      bool   `json:"is_hoax"`
		Explanation string `json:"explanation"`
		SourceURL   string `json:"source_url"`
	}
	if err := ai.Decode(raw, &out); err != nil {
		return nil, err
	}
	if out.SourceURL == "" {
		out.SourceURL = "N/A"
	}

	s := &Session{
		ID:          newSessionID(),
		Kind:        KindHoaxQuiz,
		CreatedAt:   time.Now(),
		IsHoax:      out.IsHoax,
		Explanation: out.Explanation,
		SourceURL:   out.SourceURL,
	}
	if err := e.store.Save(ctx, s); err != nil {
		return nil, err
	}
	return &HoaxRound{SessionID: s.ID, NewsSnippet: out.NewsSnippet}, nil
}

// CheckHoax compares the player's choice against the stored truth value and
// consumes the session.
func (e *Engine) CheckHoax(ctx context.Context, id, choice string) (*HoaxVerdict, error) {
	s, err := e.lookup(ctx, id, KindHoaxQuiz)
	if err != nil {
		return nil, err
	}

	correct := "fakta"
	if s.IsHoax {
		correct = "hoax"
	}
	isCorrect := strings.ToLower(strings.TrimSpace(choice)) == correct

	if err := e.consume(ctx, id); err != nil {
		return nil, err
	}
	return &HoaxVerdict{
		IsCorrect:     isCorrect,
		CorrectAnswer: capitalize(correct),
		Explanation:   s.Explanation,
		SourceURL:     s.SourceURL,
	}, nil
}

// capitalize upper-cases the first ASCII letter ("hoax" → "Hoax").
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
