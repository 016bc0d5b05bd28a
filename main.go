package main

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/literise/ai-service/internal/ai"
	"github.com/literise/ai-service/internal/config"
	"github.com/literise/ai-service/internal/game"
	"github.com/literise/ai-service/internal/httpserver"
	"github.com/literise/ai-service/internal/store"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if cfg.GeminiAPIKey == "" {
		log.Fatal().Msg("GEMINI_API_KEY is not set")
	}

	sessions := store.NewMemory(cfg.SessionTTL)
	defer sessions.Close()

	games := game.New(ai.NewGemini(cfg.GeminiAPIKey, cfg.GeminiModel), sessions)
	srv := httpserver.New(games, cfg.ClientOrigin)

	log.Info().Str("port", cfg.Port).Str("model", cfg.GeminiModel).Msg("starting literise-ai")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
