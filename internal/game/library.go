// internal/game/library.go
//
// Library fill-in-the-blank game, three phases:
//   1. GenerateLibrary: full text + model-proposed keywords, verified against
//      the text (cap 5) before the session is created.
//   2. LibraryQuizText: idempotent read that blanks the verified keywords.
//      This is where the placeholder-count guard runs: if the keyword list
//      cannot be deterministically re-located (overlapping keywords), the
//      session is deleted and the client must regenerate. Fail-closed beats
//      serving a quiz whose blanks don't line up with its answer key.
//   3. ValidateLibrary: exact-match grading, consumes the session, echoes the
//      full text.

package game

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"

	"github.com/literise/ai-service/internal/ai"
	"github.com/literise/ai-service/internal/scoring"
	"github.com/literise/ai-service/internal/textverify"
)

const librarySystemPrompt = "Anda adalah seorang pendongeng / penulis artikel. " +
	"Tugas Anda adalah membuat DUA hal berdasarkan permintaan pengguna: " +
	"1. 'full_text': Teks lengkap (sekitar 150-200 kata) sesuai Format dan Genre. " +
	"2. 'blanks': Daftar TEPAT 5 kata penting dari teks tersebut untuk dijadikan kuis melengkapi kata. " +
	"JANGAN gunakan Markdown (seperti #, *, atau **)."

var librarySchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"full_text": {Type: genai.TypeString},
		"blanks": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "Tepat 5 kata",
		},
	},
	Required: []string{"full_text", "blanks"},
}

// LibraryText is the public half of a generated library game.
type LibraryText struct {
	SessionID string
	FullText  string
	Title     string
}

// LibraryQuiz is the blanked view of the text, served while the session is open.
type LibraryQuiz struct {
	SessionID      string
	TextWithBlanks string
	TotalQuestions int
}

// BlankResult is one graded blank, 1-indexed in text order.
type BlankResult struct {
	BlankIndex    int
	UserAnswer    string
	CorrectAnswer string
	IsCorrect     bool
}

// LibraryReport is the final graded outcome of a library session.
type LibraryReport struct {
	TotalScore int
	Results    []BlankResult
	FullText   string
}

// GenerateLibrary creates the full text and verifies the model's keyword
// proposals against it. Keywords the model invented but did not use are
// dropped; if none survive, no session is created.
func (e *Engine) GenerateLibrary(ctx context.Context, format, genre string) (*LibraryText, error) {
	raw, err := e.ai.Complete(ctx, ai.Request{
		System: librarySystemPrompt,
		User:   fmt.Sprintf("Format: %s, Genre: %s", format, genre),
		Schema: librarySchema,
	})
	if err != nil {
		return nil, err
	}

	var out struct {
		FullText string   `json:"full_text"`
		Blanks   []string `json:"blanks"`
	}
	if err := ai.Decode(raw, &out); err != nil {
		return nil, err
	}

	verified := textverify.FilterVerified(out.Blanks, out.FullText, textverify.MaxKeywords)
	if len(verified) == 0 {
		return nil, ErrNoVerifiedKeywords
	}

	s := &Session{
		ID:        newSessionID(),
		Kind:      KindLibraryBlanks,
		CreatedAt: time.Now(),
		Title:     fmt.Sprintf("%s (%s)", format, genre),
		FullText:  out.FullText,
		Answers:   verified,
	}
	if err := e.store.Save(ctx, s); err != nil {
		return nil, err
	}
	return &LibraryText{SessionID: s.ID, FullText: out.FullText, Title: s.Title}, nil
}

// LibraryQuizText blanks the verified keywords out of the stored text. It
// does not consume the session and may be called repeatedly while the game
// is open. On a placeholder-count mismatch the session is deleted and a
// BlankCountError returned.
func (e *Engine) LibraryQuizText(ctx context.Context, id string) (*LibraryQuiz, error) {
	s, err := e.lookup(ctx, id, KindLibraryBlanks)
	if err != nil {
		return nil, err
	}

	blanked, _ := textverify.BlankOut(s.FullText, s.Answers, textverify.Placeholder)
	want := len(s.Answers)
	got := strings.Count(blanked, textverify.Placeholder)
	if got != want {
		_ = e.store.Delete(ctx, id)
		log.Error().
			Str("sessionId", id).
			Int("expected", want).
			Int("created", got).
			Strs("keywords", s.Answers).
			Msg("library blank mismatch, session discarded")
		return nil, &BlankCountError{Want: want, Got: got}
	}

	return &LibraryQuiz{SessionID: id, TextWithBlanks: blanked, TotalQuestions: want}, nil
}

// ValidateLibrary grades the submitted words against the verified keyword
// list and consumes the session.
func (e *Engine) ValidateLibrary(ctx context.Context, id string, answers []string) (*LibraryReport, error) {
	s, err := e.lookup(ctx, id, KindLibraryBlanks)
	if err != nil {
		return nil, err
	}
	if len(answers) != len(s.Answers) {
		return nil, &AnswerCountError{Want: len(s.Answers), Got: len(answers)}
	}

	items, total := scoring.Grade(s.Answers, answers)
	results := make([]BlankResult, len(items))
	for i, it := range items {
		results[i] = BlankResult{
			BlankIndex:    i + 1,
			UserAnswer:    it.Submitted,
			CorrectAnswer: it.Ideal,
			IsCorrect:     it.Correct,
		}
	}

	if err := e.consume(ctx, id); err != nil {
		return nil, err
	}
	return &LibraryReport{TotalScore: total, Results: results, FullText: s.FullText}, nil
}
