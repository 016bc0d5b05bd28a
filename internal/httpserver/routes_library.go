// internal/httpserver/routes_library.go
//
// HTTP routes for the library fill-in-the-blank game:
//   - POST /api/library/generate-full-text        → full text, new session
//   - GET  /api/library/get-quiz-text/{gameID}    → blanked text (idempotent;
//     may discard the session when blanking is inconsistent)
//   - POST /api/library/validate-blanks/{gameID}  → grading (consumes session)

package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// mountLibrary registers the library routes.
func (s *Server) mountLibrary(r chi.Router) {
	r.Post("/api/library/generate-full-text", s.handleLibraryGenerate)
	r.Get("/api/library/get-quiz-text/{gameID}", s.handleLibraryQuizText)
	r.Post("/api/library/validate-blanks/{gameID}", s.handleLibraryValidate)
}

// ---------- POST /api/library/generate-full-text

type libraryGenerateReq struct {
	Format string `json:"format"` // e.g. "Cerpen"
	Genre  string `json:"genre"`  // e.g. "Fantasy"
}

type libraryGenerateRes struct {
	GameID   string `json:"game_id"`
	FullText string `json:"full_text"`
	Title    string `json:"title"`
}

func (s *Server) handleLibraryGenerate(w http.ResponseWriter, r *http.Request) {
	var req libraryGenerateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Format == "" || req.Genre == "" {
		http.Error(w, `{"error":"bad_request","detail":"format and genre are required"}`, http.StatusBadRequest)
		return
	}

	lt, err := s.games.GenerateLibrary(r.Context(), req.Format, req.Genre)
	if err != nil {
		writeGameErr(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(libraryGenerateRes{
		GameID:   lt.SessionID,
		FullText: lt.FullText,
		Title:    lt.Title,
	})
}

// ---------- GET /api/library/get-quiz-text/{gameID}

type libraryQuizTextRes struct {
	GameID         string `json:"game_id"`
	TextWithBlanks string `json:"text_with_blanks"`
	TotalQuestions int    `json:"total_questions"`
}

func (s *Server) handleLibraryQuizText(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")

	q, err := s.games.LibraryQuizText(r.Context(), gameID)
	if err != nil {
		writeGameErr(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(libraryQuizTextRes{
		GameID:         q.SessionID,
		TextWithBlanks: q.TextWithBlanks,
		TotalQuestions: q.TotalQuestions,
	})
}

// ---------- POST /api/library/validate-blanks/{gameID}

type libraryValidateReq struct {
	UserAnswers []string `json:"user_answers"`
}

type libraryBlankResult struct {
	BlankIndex    int    `json:"blank_index"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	IsCorrect     bool   `json:"is_correct"`
}

type libraryValidateRes struct {
	TotalScore int                  `json:"total_score"`
	Results    []libraryBlankResult `json:"results"`
	FullText   string               `json:"full_text"`
}

func (s *Server) handleLibraryValidate(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")

	var req libraryValidateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}

	rep, err := s.games.ValidateLibrary(r.Context(), gameID, req.UserAnswers)
	if err != nil {
		writeGameErr(w, err)
		return
	}

	results := make([]libraryBlankResult, len(rep.Results))
	for i, br := range rep.Results {
		results[i] = libraryBlankResult{
			BlankIndex:    br.BlankIndex,
			UserAnswer:    br.UserAnswer,
			CorrectAnswer: br.CorrectAnswer,
			IsCorrect:     br.IsCorrect,
		}
	}
	_ = json.NewEncoder(w).Encode(libraryValidateRes{
		TotalScore: rep.TotalScore,
		Results:    results,
		FullText:   rep.FullText,
	})
}
