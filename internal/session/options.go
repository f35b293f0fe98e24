package session

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/schafkopf/internal/game"
)

// Option configures a Table during creation.
type Option func(*Table)

// WithEngine sets the engine moves are applied with.
func WithEngine(e *game.Engine) Option {
	return func(t *Table) {
		t.engine = e
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(t *Table) {
		t.logger = l
	}
}

// WithClock sets the clock turn timers run on.
func WithClock(c quartz.Clock) Option {
	return func(t *Table) {
		t.clock = c
	}
}

// WithTimeout enables the turn timer. A player who has not moved d after the
// game started waiting for them gets their default move submitted.
func WithTimeout(d time.Duration) Option {
	return func(t *Table) {
		t.timeout = d
	}
}

// WithID sets the table identifier instead of generating one.
func WithID(id string) Option {
	return func(t *Table) {
		t.id = id
	}
}
