package main

import (
	"log"

	"boardhub/internal/config"
	"boardhub/internal/logger"
	"boardhub/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.IsDevelopment(),
	})

	s, err := server.Init(cfg)
	if err != nil {
		// Startup failures (database probe included) are fatal, no retry.
		logger.Get().Fatal().Err(err).Msg("server initialization failed")
	}

	s.Run()
}
