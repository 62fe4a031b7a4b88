package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/windsurf-recent/internal/app"
	"github.com/marcus/windsurf-recent/internal/config"
	"github.com/marcus/windsurf-recent/internal/storage"
)

var (
	configPath  = flag.String("config", "", "path to config file")
	storagePath = flag.String("storage", "", "path to Windsurf's storage.json (overrides config)")
	debug       = flag.Bool("debug", false, "enable debug logging")
)

func main() {
	flag.Parse()

	// Setup logging
	logLevel := slog.LevelInfo
	if *debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	// Load configuration
	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Resolve the storage file: flag beats config beats platform default.
	path := *storagePath
	if path == "" && cfg.Storage.Path != "" {
		path = config.ExpandPath(cfg.Storage.Path)
	}
	if path == "" {
		path = storage.DefaultPath()
	}
	logger.Debug("using storage file", "path", path)

	model := app.New(path, cfg.UI.ShowFooter, logger)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}
