package httpserver_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/literise/ai-service/internal/ai"
	"github.com/literise/ai-service/internal/game"
	"github.com/literise/ai-service/internal/httpserver"
	"github.com/literise/ai-service/internal/store"
)

// fakeGateway serves canned completions for handler tests.
type fakeGateway struct {
	reply string
	err   error
}

func (f *fakeGateway) Complete(ctx context.Context, req ai.Request) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func newTestServer(t *testing.T, gw *fakeGateway) *httpserver.Server {
	t.Helper()
	mem := store.NewMemory(time.Minute)
	t.Cleanup(mem.Close)
	return httpserver.New(game.New(gw, mem), "http://localhost:5173")
}

func doJSON(t *testing.T, srv *httpserver.Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, &fakeGateway{})
	rec := doJSON(t, srv, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestNotFoundIsJSON(t *testing.T) {
	srv := newTestServer(t, &fakeGateway{})
	rec := doJSON(t, srv, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error":"not_found"`)
}

func TestGenerateMissionEndpoint(t *testing.T) {
	gw := &fakeGateway{reply: `{
		"reading_text": "Teks bacaan.",
		"quiz_questions": ["Q1?", "Q2?", "Q3?"],
		"correct_answers": ["A1", "A2", "A3"]
	}`}
	srv := newTestServer(t, gw)

	rec := doJSON(t, srv, http.MethodPost, "/api/game/generate-mission", `{"topic":"Efek Pemanasan Global"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res struct {
		MissionID     string `json:"mission_id"`
		Title         string `json:"title"`
		ReadingText   string `json:"reading_text"`
		QuizQuestions []struct {
			Question string `json:"question"`
		} `json:"quiz_questions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.NotEmpty(t, res.MissionID)
	assert.Equal(t, "Efek Pemanasan Global", res.Title)
	assert.Len(t, res.QuizQuestions, 3)

	// The generate response never carries the answer key.
	assert.NotContains(t, rec.Body.String(), "correct_answers")
	assert.NotContains(t, rec.Body.String(), "A1")
}

func TestGenerateMissionRequiresTopic(t *testing.T) {
	srv := newTestServer(t, &fakeGateway{})
	rec := doJSON(t, srv, http.MethodPost, "/api/game/generate-mission", `{"topic":"  "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestValidateQuizUnknownSession(t *testing.T) {
	srv := newTestServer(t, &fakeGateway{})
	rec := doJSON(t, srv, http.MethodPost, "/api/game/validate-quiz/does-not-exist",
		`{"answers":[{"question":"q","answer":"a"}]}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "session_not_found")
}

func TestHoaxFlowOverHTTP(t *testing.T) {
	gw := &fakeGateway{reply: `{
		"news_snippet": "Berita viral.",
		"is_hoax": true,
		"explanation": "Tidak ada bukti.",
		"source_url": "N/A"
	}`}
	srv := newTestServer(t, gw)

	rec := doJSON(t, srv, http.MethodGet, "/api/hoax-quiz/generate", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var gen struct {
		MissionID   string `json:"mission_id"`
		NewsSnippet string `json:"news_snippet"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &gen))
	assert.NotContains(t, rec.Body.String(), "is_hoax", "truth value withheld")

	rec = doJSON(t, srv, http.MethodPost, "/api/hoax-quiz/check",
		`{"mission_id":"`+gen.MissionID+`","user_choice":"Hoax"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var check struct {
		IsCorrect     bool   `json:"is_correct"`
		CorrectAnswer string `json:"correct_answer"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &check))
	assert.True(t, check.IsCorrect)
	assert.Equal(t, "Hoax", check.CorrectAnswer)

	// Session is single-use.
	rec = doJSON(t, srv, http.MethodPost, "/api/hoax-quiz/check",
		`{"mission_id":"`+gen.MissionID+`","user_choice":"Hoax"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProviderOverloadedStatus(t *testing.T) {
	gw := &fakeGateway{err: &ai.ProviderError{Status: 503, Message: "The model is overloaded."}}
	srv := newTestServer(t, gw)

	rec := doJSON(t, srv, http.MethodGet, "/api/hoax-quiz/generate", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "provider_overloaded")
}

func TestLibraryAnswerCountMismatch(t *testing.T) {
	gw := &fakeGateway{reply: `{
		"full_text": "Kancil mencuri timun di ladang.",
		"blanks": ["Kancil", "timun", "ladang"]
	}`}
	srv := newTestServer(t, gw)

	rec := doJSON(t, srv, http.MethodPost, "/api/library/generate-full-text",
		`{"format":"Cerpen","genre":"Fantasy"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var gen struct {
		GameID string `json:"game_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &gen))

	rec = doJSON(t, srv, http.MethodPost, "/api/library/validate-blanks/"+gen.GameID,
		`{"user_answers":["kancil","timun"]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body struct {
		Error    string `json:"error"`
		Expected int    `json:"expected"`
		Received int    `json:"received"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "answer_count_mismatch", body.Error)
	assert.Equal(t, 3, body.Expected)
	assert.Equal(t, 2, body.Received)

	// Same session still grades a corrected submission.
	rec = doJSON(t, srv, http.MethodPost, "/api/library/validate-blanks/"+gen.GameID,
		`{"user_answers":["kancil","timun","ladang"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_score":100`)
}

func TestLibraryQuizTextEndpoint(t *testing.T) {
	gw := &fakeGateway{reply: `{
		"full_text": "Kancil mencuri timun di ladang.",
		"blanks": ["Kancil", "timun"]
	}`}
	srv := newTestServer(t, gw)

	rec := doJSON(t, srv, http.MethodPost, "/api/library/generate-full-text",
		`{"format":"Cerpen","genre":"Fantasy"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var gen struct {
		GameID string `json:"game_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &gen))

	rec = doJSON(t, srv, http.MethodGet, "/api/library/get-quiz-text/"+gen.GameID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var quiz struct {
		TextWithBlanks string `json:"text_with_blanks"`
		TotalQuestions int    `json:"total_questions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &quiz))
	assert.Equal(t, 2, quiz.TotalQuestions)
	assert.Equal(t, 2, strings.Count(quiz.TextWithBlanks, "[.....]"))
}

func TestGrammarFlowOverHTTP(t *testing.T) {
	gw := &fakeGateway{reply: `{
		"sentences_to_fix": ["kalimat satu", "kalimat dua"],
		"correct_sentences": ["Kalimat satu.", "Kalimat dua."]
	}`}
	srv := newTestServer(t, gw)

	rec := doJSON(t, srv, http.MethodPost, "/api/grammar-zone/generate-game", `{"genre":"Slice of Life"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var gen struct {
		GameID         string   `json:"game_id"`
		SentencesToFix []string `json:"sentences_to_fix"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &gen))
	assert.Len(t, gen.SentencesToFix, 2)
	assert.NotContains(t, rec.Body.String(), "Kalimat satu.", "ideal sentences withheld")

	rec = doJSON(t, srv, http.MethodPost, "/api/grammar-zone/submit-game/"+gen.GameID,
		`{"user_corrections":["kalimat satu.","Kalimat dua."]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_score":100`)
}
