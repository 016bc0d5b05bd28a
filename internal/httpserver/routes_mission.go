// internal/httpserver/routes_mission.go
//
// HTTP routes for the reading-mission game:
//   - POST /api/game/generate-mission            → article + questions, new session
//   - POST /api/game/validate-quiz/{missionID}   → AI-judged grading (consumes session)

package httpserver

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/literise/ai-service/internal/game"
)

// mountMission registers the reading-mission routes.
func (s *Server) mountMission(r chi.Router) {
	r.Post("/api/game/generate-mission", s.handleGenerateMission)
	r.Post("/api/game/validate-quiz/{missionID}", s.handleValidateQuiz)
}

// ---------- POST /api/game/generate-mission

type generateMissionReq struct {
	Topic string `json:"topic"`
}

type missionQuestion struct {
	Question string `json:"question"`
}

type generateMissionRes struct {
	MissionID     string            `json:"mission_id"`
	Title         string            `json:"title"`
	ReadingText   string            `json:"reading_text"`
	QuizQuestions []missionQuestion `json:"quiz_questions"`
}

func (s *Server) handleGenerateMission(w http.ResponseWriter, r *http.Request) {
	var req generateMissionReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Topic) == "" {
		http.Error(w, `{"error":"bad_request","detail":"topic is required"}`, http.StatusBadRequest)
		return
	}

	m, err := s.games.GenerateMission(r.Context(), strings.TrimSpace(req.Topic))
	if err != nil {
		writeGameErr(w, err)
		return
	}

	qs := make([]missionQuestion, len(m.Questions))
	for i, q := range m.Questions {
		qs[i] = missionQuestion{Question: q}
	}
	_ = json.NewEncoder(w).Encode(generateMissionRes{
		MissionID:     m.SessionID,
		Title:         m.Title,
		ReadingText:   m.ReadingText,
		QuizQuestions: qs,
	})
}

// ---------- POST /api/game/validate-quiz/{missionID}

type validateQuizReq struct {
	Answers []struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
	} `json:"answers"`
}

type validateQuizRes struct {
	Title      string               `json:"title"`
	TotalScore float64              `json:"total_score"`
	Results    []game.MissionResult `json:"results"`
}

func (s *Server) handleValidateQuiz(w http.ResponseWriter, r *http.Request) {
	missionID := chi.URLParam(r, "missionID")

	var req validateQuizReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	answers := make([]string, len(req.Answers))
	for i, a := range req.Answers {
		answers[i] = a.Answer
	}

	rep, err := s.games.ValidateMission(r.Context(), missionID, answers)
	if err != nil {
		writeGameErr(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(validateQuizRes{
		Title:      rep.Title,
		TotalScore: rep.TotalScore,
		Results:    rep.Results,
	})
}
