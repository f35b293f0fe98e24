// Package config loads the house rules of a Schafkopf table from an HCL file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/schafkopf/internal/deck"
	"github.com/lox/schafkopf/internal/game"
)

// File is the raw shape of a rules file. Pointer fields are optional and
// fall back to the standard tariff when absent.
type File struct {
	LogLevel           string         `hcl:"log_level,optional"`
	Players            int            `hcl:"players,optional"`
	MaxRounds          *int           `hcl:"max_rounds,optional"`
	WinThreshold       *int           `hcl:"win_threshold,optional"`
	SchneiderThreshold *int           `hcl:"schneider_threshold,optional"`
	CardPoints         *CardPoints    `hcl:"card_points,block"`
	Bonuses            *Bonuses       `hcl:"bonuses,block"`
	Tariffs            []TariffConfig `hcl:"tariff,block"`
}

// CardPoints overrides the point value of card values.
type CardPoints struct {
	Seven *int `hcl:"seven,optional"`
	Eight *int `hcl:"eight,optional"`
	Nine  *int `hcl:"nine,optional"`
	Ten   *int `hcl:"ten,optional"`
	Unter *int `hcl:"unter,optional"`
	Ober  *int `hcl:"ober,optional"`
	King  *int `hcl:"king,optional"`
	Ace   *int `hcl:"ace,optional"`
}

// Bonuses overrides the bonuses and multipliers added on top of a tariff.
type Bonuses struct {
	Schneider        *int `hcl:"schneider,optional"`
	Schwarz          *int `hcl:"schwarz,optional"`
	Runner           *int `hcl:"runner,optional"`
	ToutMultiplier   *int `hcl:"tout_multiplier,optional"`
	ContraMultiplier *int `hcl:"contra_multiplier,optional"`
}

// TariffConfig overrides the tariff of one contract, named by its label.
type TariffConfig struct {
	Contract   string `hcl:"contract,label"`
	Base       *int   `hcl:"base,optional"`
	MinRunners *int   `hcl:"min_runners,optional"`
}

// Config is the resolved configuration of a table.
type Config struct {
	LogLevel string
	Players  int
	Rules    game.Rules
}

// Default returns the configuration used when no rules file exists.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Players:  4,
		Rules:    game.DefaultRules(),
	}
}

// Load reads the rules file at filename. A missing file yields Default.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}
	return decode(file.Body)
}

// Parse decodes a rules file held in memory. filename is only used in
// diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}
	return decode(file.Body)
}

func decode(body hcl.Body) (*Config, error) {
	var f File
	if diags := gohcl.DecodeBody(body, nil, &f); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	return f.resolve()
}

// resolve applies the file on top of Default.
func (f *File) resolve() (*Config, error) {
	cfg := Default()
	if f.LogLevel != "" {
		cfg.LogLevel = f.LogLevel
	}
	if f.Players != 0 {
		cfg.Players = f.Players
	}

	r := &cfg.Rules
	set(&r.MaxRounds, f.MaxRounds)
	set(&r.WinThreshold, f.WinThreshold)
	set(&r.SchneiderThreshold, f.SchneiderThreshold)

	if p := f.CardPoints; p != nil {
		for v, override := range map[deck.Value]*int{
			deck.Seven: p.Seven,
			deck.Eight: p.Eight,
			deck.Nine:  p.Nine,
			deck.Ten:   p.Ten,
			deck.Unter: p.Unter,
			deck.Ober:  p.Ober,
			deck.King:  p.King,
			deck.Ace:   p.Ace,
		} {
			if override != nil {
				r.Points[v] = *override
			}
		}
	}

	if b := f.Bonuses; b != nil {
		set(&r.SchneiderBonus, b.Schneider)
		set(&r.SchwarzBonus, b.Schwarz)
		set(&r.RunnerValue, b.Runner)
		set(&r.ToutMultiplier, b.ToutMultiplier)
		set(&r.ContraMultiplier, b.ContraMultiplier)
	}

	seen := make(map[game.Contract]bool)
	for _, t := range f.Tariffs {
		c, err := game.ParseContract(t.Contract)
		if err != nil || !c.Playable() {
			return nil, fmt.Errorf("tariff %q: not a playable contract", t.Contract)
		}
		if seen[c] {
			return nil, fmt.Errorf("tariff %q: declared twice", t.Contract)
		}
		seen[c] = true

		tariff := r.Tariffs[c]
		set(&tariff.Base, t.Base)
		set(&tariff.MinRunners, t.MinRunners)
		r.Tariffs[c] = tariff
	}
	return cfg, nil
}

func set(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

// Validate checks the configuration for values no table can be played with.
func (c *Config) Validate() error {
	var errs []error
	if _, err := deck.Size(c.Players); err != nil {
		errs = append(errs, fmt.Errorf("players: %w", err))
	}
	if _, err := log.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}
	if err := c.Rules.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level returns the configured log level, info when it does not parse.
func (c *Config) Level() log.Level {
	lvl, err := log.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
