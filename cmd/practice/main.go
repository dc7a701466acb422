// Command practice is the terminal client: one question at a time, answers
// checked against the API as they are submitted.
package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/wfparrish/rhcsa-command-tool/config"
	"github.com/wfparrish/rhcsa-command-tool/internal/client"
	"github.com/wfparrish/rhcsa-command-tool/internal/logger"
	"github.com/wfparrish/rhcsa-command-tool/internal/ui/practice"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	// The TUI owns the terminal; only errors go to stderr.
	logger.Init(zerolog.LevelErrorValue, cfg.Log.Pretty)

	api := client.New(cfg.Client.APIBaseURL, nil)
	model := practice.NewModel(api, practice.Options{NoColor: os.Getenv("NO_COLOR") != ""})

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal().Err(err).Msg("Practice client failed")
	}
}
