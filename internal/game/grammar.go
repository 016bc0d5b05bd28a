// internal/game/grammar.go
//
// Grammar zone: 5 generated sentences, some deliberately broken, graded by
// exact match against the model's corrected versions.

package game

import (
	"context"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"

	"github.com/literise/ai-service/internal/ai"
	"github.com/literise/ai-service/internal/scoring"
)

const grammarSystemPrompt = "Anda adalah asisten pembuat kuis tata bahasa. " +
	"Buat TEPAT 5 kalimat berdasarkan Genre yang diminta. " +
	"BEBERAPA kalimat harus benar secara tata bahasa, BEBERAPA harus salah (misal: typo, ejaan salah, struktur aneh). " +
	"Anda HARUS menghasilkan dua hal: " +
	"1. 'sentences_to_fix': Daftar 5 kalimat (campuran benar/salah). " +
	"2. 'correct_sentences': Daftar 5 kalimat versi benar/ideal (jika kalimat asli sudah benar, ulangi saja)." +
	"JANGAN gunakan Markdown."

var grammarSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"sentences_to_fix": {
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
		"correct_sentences": {
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
	},
	Required: []string{"sentences_to_fix", "correct_sentences"},
}

// GrammarRound is the public half of a generated grammar game.
type GrammarRound struct {
	SessionID      string
	Genre          string
	SentencesToFix []string
}

// SentenceResult is one graded correction, in input order.
type SentenceResult struct {
	Original        string
	UserCorrection  string
	CorrectSentence string
	IsCorrect       bool
}

// GrammarReport is the final graded outcome of a grammar session.
type GrammarReport struct {
	TotalScore int
	Results    []SentenceResult
}

// GenerateGrammar creates a set of sentences to fix. The corrected versions
// are stored server-side until validation.
func (e *Engine) GenerateGrammar(ctx context.Context, genre string) (*GrammarRound, error) {
	raw, err := e.ai.Complete(ctx, ai.Request{
		System: grammarSystemPrompt,
		User:   "Genre: " + genre,
		Schema: grammarSchema,
	})
	if err != nil {
		return nil, err
	}

	var out struct {
		SentencesToFix   []string `json:"sentences_to_fix"`
		CorrectSentences []string `json:"correct_sentences"`
	}
	if err := ai.Decode(raw, &out); err != nil {
		return nil, err
	}
	if len(out.SentencesToFix) == 0 || len(out.SentencesToFix) != len(out.CorrectSentences) {
		return nil, &ai.MalformedError{Snippet: fmt.Sprintf("%d sentences vs %d corrections", len(out.SentencesToFix), len(out.CorrectSentences))}
	}

	s := &Session{
		ID:        newSessionID(),
		Kind:      KindGrammarFix,
		CreatedAt: time.Now(),
		Sentences: out.SentencesToFix,
		Answers:   out.CorrectSentences,
	}
	if err := e.store.Save(ctx, s); err != nil {
		return nil, err
	}
	return &GrammarRound{SessionID: s.ID, Genre: genre, SentencesToFix: out.SentencesToFix}, nil
}

// ValidateGrammar grades the submitted corrections against the stored ideal
// sentences and consumes the session.
func (e *Engine) ValidateGrammar(ctx context.Context, id string, corrections []string) (*GrammarReport, error) {
	s, err := e.lookup(ctx, id, KindGrammarFix)
	if err != nil {
		return nil, err
	}
	if len(corrections) != len(s.Answers) {
		return nil, &AnswerCountError{Want: len(s.Answers), Got: len(corrections)}
	}

	items, total := scoring.Grade(s.Answers, corrections)
	results := make([]SentenceResult, len(items))
	for i, it := range items {
		results[i] = SentenceResult{
			Original:        s.Sentences[i],
			UserCorrection:  it.Submitted,
			CorrectSentence: it.Ideal,
			IsCorrect:       it.Correct,
		}
	}

	if err := e.consume(ctx, id); err != nil {
		return nil, err
	}
	return &GrammarReport{TotalScore: total, Results: results}, nil
}
