package main

import (
	"propbook/config"
	"propbook/di"
	"propbook/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)

	log.Info().
		Str("app", cfg.App.Name).
		Str("env", cfg.Server.Env).
		Msg("Booting property booking service")

	server := di.InitializeService()
	server.Serve()

	log.Info().Msg("Property booking service stopped")
}
