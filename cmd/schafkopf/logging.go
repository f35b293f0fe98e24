package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/schafkopf/internal/config"
)

// setup loads the rules file and builds the logger for a command.
func (g *Globals) setup() (*config.Config, *log.Logger, error) {
	return g.setupTo(os.Stderr)
}

func (g *Globals) setupTo(w io.Writer) (*config.Config, *log.Logger, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, nil, err
	}
	if g.LogLevel != "" {
		cfg.LogLevel = strings.ToLower(g.LogLevel)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", g.Config, err)
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           cfg.Level(),
	})
	logger.Debug("Loaded configuration", "file", g.Config, "players", cfg.Players, "max_rounds", cfg.Rules.MaxRounds)
	return cfg, logger, nil
}
