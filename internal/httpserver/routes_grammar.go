// internal/httpserver/routes_grammar.go
//
// HTTP routes for the grammar-zone game:
//   - POST /api/grammar-zone/generate-game          → sentences to fix, new session
//   - POST /api/grammar-zone/submit-game/{gameID}   → grading (consumes session)

package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// mountGrammar registers the grammar-zone routes.
func (s *Server) mountGrammar(r chi.Router) {
	r.Post("/api/grammar-zone/generate-game", s.handleGrammarGenerate)
	r.Post("/api/grammar-zone/submit-game/{gameID}", s.handleGrammarSubmit)
}

// ---------- POST /api/grammar-zone/generate-game

type grammarGenerateReq struct {
	Genre string `json:"genre"` // e.g. "Slice of Life"
}

type grammarGenerateRes struct {
	GameID         string   `json:"game_id"`
	Genre          string   `json:"genre"`
	SentencesToFix []string `json:"sentences_to_fix"`
}

func (s *Server) handleGrammarGenerate(w http.ResponseWriter, r *http.Request) {
	var req grammarGenerateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Genre == "" {
		http.Error(w, `{"error":"bad_request","detail":"genre is required"}`, http.StatusBadRequest)
		return
	}

	round, err := s.games.GenerateGrammar(r.Context(), req.Genre)
	if err != nil {
		writeGameErr(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(grammarGenerateRes{
		GameID:         round.SessionID,
		Genre:          round.Genre,
		SentencesToFix: round.SentencesToFix,
	})
}

// ---------- POST /api/grammar-zone/submit-game/{gameID}

type grammarSubmitReq struct {
	UserCorrections []string `json:"user_corrections"`
}

type grammarSentenceResult struct {
	Original        string `json:"original"`
	UserCorrection  string `json:"user_correction"`
	CorrectSentence string `json:"correct_sentence"`
	IsCorrect       bool   `json:"is_correct"`
}

type grammarSubmitRes struct {
	TotalScore int                     `json:"total_score"`
	Results    []grammarSentenceResult `json:"results"`
}

func (s *Server) handleGrammarSubmit(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")

	var req grammarSubmitReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}

	rep, err := s.games.ValidateGrammar(r.Context(), gameID, req.UserCorrections)
	if err != nil {
		writeGameErr(w, err)
		return
	}

	results := make([]grammarSentenceResult, len(rep.Results))
	for i, sr := range rep.Results {
		results[i] = grammarSentenceResult{
			Original:        sr.Original,
			UserCorrection:  sr.UserCorrection,
			CorrectSentence: sr.CorrectSentence,
			IsCorrect:       sr.IsCorrect,
		}
	}
	_ = json.NewEncoder(w).Encode(grammarSubmitRes{TotalScore: rep.TotalScore, Results: results})
}
