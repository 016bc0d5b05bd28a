// internal/httpserver/routes_hoax.go
//
// HTTP routes for the hoax-or-not game:
//   - GET  /api/hoax-quiz/generate → one news snippet, new session
//   - POST /api/hoax-quiz/check    → verdict + explanation (consumes session)

package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// mountHoax registers the hoax-quiz routes.
func (s *Server) mountHoax(r chi.Router) {
	r.Get("/api/hoax-quiz/generate", s.handleHoaxGenerate)
	r.Post("/api/hoax-quiz/check", s.handleHoaxCheck)
}

// ---------- GET /api/hoax-quiz/generate

type hoaxGenerateRes struct {
	MissionID   string `json:"mission_id"`
	NewsSnippet string `json:"news_snippet"`
}

func (s *Server) handleHoaxGenerate(w http.ResponseWriter, r *http.Request) {
	round, err := s.games.GenerateHoax(r.Context())
	if err != nil {
		writeGameErr(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(hoaxGenerateRes{
		MissionID:   round.SessionID,
		NewsSnippet: round.NewsSnippet,
	})
}

// ---------- POST /api/hoax-quiz/check

type hoaxCheckReq struct {
	MissionID  string `json:"mission_id"`
	UserChoice string `json:"user_choice"` // "hoax" or "fakta", any case
}

type hoaxCheckRes struct {
	IsCorrect     bool   `json:"is_correct"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation"`
	SourceURL     string `json:"source_url"`
}

func (s *Server) handleHoaxCheck(w http.ResponseWriter, r *http.Request) {
	var req hoaxCheckReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}

	v, err := s.games.CheckHoax(r.Context(), req.MissionID, req.UserChoice)
	if err != nil {
		writeGameErr(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(hoaxCheckRes{
		IsCorrect:     v.IsCorrect,
		CorrectAnswer: v.CorrectAnswer,
		Explanation:   v.Explanation,
		SourceURL:     v.SourceURL,
	})
}
