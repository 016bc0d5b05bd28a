// internal/httpserver/server.go
//
// HTTP server wiring for the Literise AI game service.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health".
//   - Game endpoints mounted per kind (routes_mission.go, routes_hoax.go,
//     routes_library.go, routes_grammar.go).
//   - Uniform mapping from engine/gateway errors to JSON error responses.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled.
//   - The request timeout is generous (90s): a generate call blocks on one
//     provider round-trip, which can be slow.
//   - Unknown/expired session ids are 404; mismatched submission lengths
//     are 400; provider failures keep their upstream status (503 stays 503).

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/literise/ai-service/internal/ai"
	"github.com/literise/ai-service/internal/game"
)

// Server bundles the router and the game engine.
type Server struct {
	r     *chi.Mux
	games *game.Engine
}

// New constructs a Server, installs middleware, and registers routes.
// clientOrigin is the single origin allowed to make credentialed CORS calls.
func New(games *game.Engine, clientOrigin string) *Server {
	s := &Server{r: chi.NewRouter(), games: games}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(90 * time.Second)) // bound handler time, incl. the AI round-trip
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(corsOrigin(clientOrigin))        // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"literise-ai","endpoints":["/health","POST /api/game/generate-mission","POST /api/game/validate-quiz/{missionID}","GET /api/hoax-quiz/generate","POST /api/hoax-quiz/check","POST /api/library/generate-full-text","GET /api/library/get-quiz-text/{gameID}","POST /api/library/validate-blanks/{gameID}","POST /api/grammar-zone/generate-game","POST /api/grammar-zone/submit-game/{gameID}"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// Game endpoints
	s.mountMission(s.r)
	s.mountHoax(s.r)
	s.mountLibrary(s.r)
	s.mountGrammar(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsOrigin enables credentialed CORS for a single origin.
func corsOrigin(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ---------------------------- error mapping --------------------------------

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeGameErr maps engine/gateway errors to the wire.
//
// Taxonomy:
//   - session not found / wrong kind      → 404
//   - answer count mismatch               → 400 (session untouched, retryable)
//   - blank inconsistency                 → 500 (session already discarded)
//   - provider error                      → upstream status (503 = overloaded)
//   - malformed / empty model output      → 502
//   - anything else                       → 500
func writeGameErr(w http.ResponseWriter, err error) {
	var ace *game.AnswerCountError
	var bce *game.BlankCountError
	var pe *ai.ProviderError
	var me *ai.MalformedError

	switch {
	case errors.Is(err, game.ErrSessionNotFound):
		http.Error(w, `{"error":"session_not_found"}`, http.StatusNotFound)

	case errors.As(err, &ace):
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":    "answer_count_mismatch",
			"expected": ace.Want,
			"received": ace.Got,
		})

	case errors.As(err, &bce):
		log.Error().Err(err).Msg("quiz inconsistency")
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error":  "quiz_inconsistent",
			"detail": "keyword mismatch while building the quiz; start a new game",
		})

	case errors.As(err, &pe):
		log.Error().Int("status", pe.Status).Str("message", pe.Message).Msg("provider error")
		status := pe.Status
		if status < 400 {
			status = http.StatusBadGateway // unreachable provider, no HTTP status
		}
		code := "provider_error"
		if pe.Overloaded() {
			code = "provider_overloaded"
		}
		writeJSON(w, status, map[string]any{"error": code, "detail": pe.Message})

	case errors.As(err, &me), errors.Is(err, ai.ErrEmptyContent):
		log.Error().Err(err).Msg("unusable model output")
		http.Error(w, `{"error":"bad_model_output"}`, http.StatusBadGateway)

	case errors.Is(err, game.ErrNoVerifiedKeywords):
		log.Error().Err(err).Msg("no verifiable keywords")
		http.Error(w, `{"error":"no_verified_keywords"}`, http.StatusInternalServerError)

	default:
		log.Error().Err(err).Msg("game handler error")
		http.Error(w, `{"error":"internal"}`, http.StatusInternalServerError)
	}
}
