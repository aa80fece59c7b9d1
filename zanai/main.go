package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"zanai/zanai/config"
	"zanai/zanai/services/api"
	"zanai/zanai/services/token"
	"zanai/zanai/ui"
	"zanai/zanai/utils/logging"
)

func main() {
	logging.InitLogger()
	cfg := config.LoadConfig()

	tokens, err := token.NewStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot resolve config dir:", err)
		os.Exit(1)
	}
	client := api.NewClient(cfg)

	logging.AppLogger.Info("zanai starting", zap.String("api_base_url", cfg.APIBaseURL))

	app := ui.NewApp(client, tokens)
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		logging.ErrorLogger.Error("program exited with error", zap.Error(err))
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
