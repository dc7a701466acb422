// Command seed copies the question file into the configured database so the
// server can run with QUESTION_SOURCE=database.
package main

import (
	"github.com/rs/zerolog/log"
	"github.com/wfparrish/rhcsa-command-tool/config"
	"github.com/wfparrish/rhcsa-command-tool/internal/database"
	"github.com/wfparrish/rhcsa-command-tool/internal/logger"
	"github.com/wfparrish/rhcsa-command-tool/internal/repository"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	logger.Init(cfg.Log.Level, cfg.Log.Pretty)

	questions, err := repository.LoadFile(cfg.Questions.File)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.Questions.File).Msg("Failed to load questions")
	}

	db, err := database.NewDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to access database handle")
	}
	defer sqlDB.Close()

	if err := repository.SeedDatabase(db, questions); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed questions")
	}
	log.Info().Str("file", cfg.Questions.File).Str("driver", cfg.Database.Driver).Int("questions", len(questions)).Msg("Seed complete")
}
