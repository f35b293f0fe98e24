package game

import (
	"io"

	"github.com/charmbracelet/log"
)

// Option configures an Engine during creation.
type Option func(*engineConfig)

type engineConfig struct {
	rules  Rules
	logger *log.Logger
}

// New creates an engine. Without options it plays DefaultRules and logs
// nowhere.
//
// Example usage:
//
//	e := game.New(game.WithLogger(logger))
//	s, err := e.Setup(4, seed)
//	s, err = e.Apply(s, s.CurrentPlayer, game.MakeBid(game.ContractPass))
func New(opts ...Option) *Engine {
	cfg := &engineConfig{
		rules: DefaultRules(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if err := cfg.rules.Validate(); err != nil {
		panic("invalid rules: " + err.Error())
	}
	if cfg.logger == nil {
		cfg.logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	return &Engine{rules: cfg.rules, logger: cfg.logger}
}

// WithRules replaces the scoring table.
func WithRules(r Rules) Option {
	return func(c *engineConfig) {
		c.rules = r
	}
}

// WithLogger sets the logger phase transitions and rejections are written to.
func WithLogger(l *log.Logger) Option {
	return func(c *engineConfig) {
		c.logger = l
	}
}
