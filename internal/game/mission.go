// internal/game/mission.go
//
// Reading mission: generate a short article with 3 comprehension questions,
// then have the model act as the grader for the free-text answers. Unlike the
// library/grammar games there is no exact-match scoring; per-question scores
// and the total come from the judge call and are passed through unchanged.

package game

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"

	"github.com/literise/ai-service/internal/ai"
)

const missionSystemPrompt = "Anda adalah asisten edukasi untuk platform literasi bernama Literise. " +
	"Tugas Anda adalah membuat misi membaca berdasarkan topik yang diminta pengguna. " +
	"Anda HARUS menghasilkan dua hal: " +
	"1. 'reading_text': Artikel singkat (sekitar 150-200 kata) tentang topik tersebut. Gunakan paragraf (\\n\\n). " +
	"2. 'quiz_questions': TEPAT 3 pertanyaan pemahaman (tipe esai singkat) HANYA berdasarkan teks yang Anda tulis. " +
	"3. 'correct_answers': Jawaban singkat dan ideal untuk setiap pertanyaan." +
	"JANGAN gunakan Markdown (seperti #, *, atau **)."

const missionJudgePrompt = "Anda adalah seorang guru yang menilai kuis pemahaman. " +
	"Bandingkan setiap 'jawaban_pengguna' dengan 'jawaban_ideal'. " +
	"Berikan 'skor' (0 hingga 100) dan 'umpan_balik' singkat untuk SETIAP jawaban. " +
	"JANGAN tambahkan penjelasan umum, hanya fokus pada daftar hasil."

var missionSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"reading_text": {Type: genai.TypeString},
		"quiz_questions": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "Tepat 3 pertanyaan",
		},
		"correct_answers": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "Tepat 3 jawaban",
		},
	},
	Required: []string{"reading_text", "quiz_questions", "correct_answers"},
}

var missionJudgeSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"results": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"question":    {Type: genai.TypeString},
					"user_answer": {Type: genai.TypeString},
					"score":       {Type: genai.TypeNumber},
					"feedback":    {Type: genai.TypeString},
				},
				Required: []string{"question", "user_answer", "score", "feedback"},
			},
		},
		"total_score": {Type: genai.TypeNumber},
	},
	Required: []string{"results", "total_score"},
}

// Mission is the public half of a generated reading mission.
type Mission struct {
	SessionID   string
	Title       string
	ReadingText string
	Questions   []string
}

// MissionResult is one judged answer from the AI grader.
type MissionResult struct {
	Question   string  `json:"question"`
	UserAnswer string  `json:"user_answer"`
	Score      float64 `json:"score"`
	Feedback   string  `json:"feedback"`
}

// MissionReport is the final graded outcome of a mission session.
type MissionReport struct {
	Title      string
	TotalScore float64
	Results    []MissionResult
}

// GenerateMission creates a reading mission for topic. The ideal answers are
// stored server-side and never appear in the returned Mission.
func (e *Engine) GenerateMission(ctx context.Context, topic string) (*Mission, error) {
	raw, err := e.ai.Complete(ctx, ai.Request{
		System: missionSystemPrompt,
		User:   "Topik: " + topic,
		Schema: missionSchema,
	})
	if err != nil {
		return nil, err
	}

	var out struct {
		ReadingText    string   `json:"reading_text"`
		QuizQuestions  []string `json:"quiz_questions"`
		CorrectAnswers []string `json:"correct_answers"`
	}
	if err := ai.Decode(raw, &out); err != nil {
		return nil, err
	}
	if len(out.QuizQuestions) == 0 || len(out.QuizQuestions) != len(out.CorrectAnswers) {
		return nil, &ai.MalformedError{Snippet: fmt.Sprintf("%d questions vs %d answers", len(out.QuizQuestions), len(out.CorrectAnswers))}
	}

	s := &Session{
		ID:        newSessionID(),
		Kind:      KindReadingMission,
		CreatedAt: time.Now(),
		Title:     topic,
		Questions: out.QuizQuestions,
		Answers:   out.CorrectAnswers,
	}
	if err := e.store.Save(ctx, s); err != nil {
		return nil, err
	}
	return &Mission{
		SessionID:   s.ID,
		Title:       topic,
		ReadingText: out.ReadingText,
		Questions:   out.QuizQuestions,
	}, nil
}

// ValidateMission grades free-text answers via an AI judge call and consumes
// the session. The judge's per-question scores and aggregate are passed
// through as-is. The session survives a failed judge call; only a graded
// result consumes it.
func (e *Engine) ValidateMission(ctx context.Context, id string, answers []string) (*MissionReport, error) {
	s, err := e.lookup(ctx, id, KindReadingMission)
	if err != nil {
		return nil, err
	}
	if len(answers) != len(s.Answers) {
		return nil, &AnswerCountError{Want: len(s.Answers), Got: len(answers)}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Konteks Misi: %s", s.Title)
	for i := range s.Questions {
		fmt.Fprintf(&b, "\n\nPertanyaan %d: %s", i+1, s.Questions[i])
		fmt.Fprintf(&b, "\nJawaban Ideal %d: %s", i+1, s.Answers[i])
		fmt.Fprintf(&b, "\nJawaban Pengguna %d: %s", i+1, answers[i])
	}

	raw, err := e.ai.Complete(ctx, ai.Request{
		System: missionJudgePrompt,
		User:   b.String(),
		Schema: missionJudgeSchema,
	})
	if err != nil {
		return nil, err
	}

	var out struct {
		Results    []MissionResult `json:"results"`
		TotalScore float64         `json:"total_score"`
	}
	if err := ai.Decode(raw, &out); err != nil {
		return nil, err
	}

	if err := e.consume(ctx, id); err != nil {
		return nil, err
	}
	return &MissionReport{Title: s.Title, TotalScore: out.TotalScore, Results: out.Results}, nil
}
