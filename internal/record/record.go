// Package record stores finished and running games as TOML files that can be
// replayed move by move.
package record

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lox/schafkopf/internal/deck"
	"github.com/lox/schafkopf/internal/fileutil"
	"github.com/lox/schafkopf/internal/game"
	"github.com/lox/schafkopf/internal/gameid"
)

// New starts an empty record for a game.
func New(gameID string, players int, seed int64, created time.Time) *Record {
	return &Record{
		Variant: Variant,
		Game:    gameID,
		Time:    created.UTC().Truncate(time.Second),
		Players: players,
		Seed:    seed,
		Actions: []string{},
	}
}

// Append records a move accepted by the engine.
func (r *Record) Append(player int, m game.Move) {
	r.Actions = append(r.Actions, FormatMove(player, m))
}

// SetResult copies the scores and round outcomes of s into the record.
func (r *Record) SetResult(s *game.GameState) {
	r.Scores = make([]int, len(s.Players))
	for i, p := range s.Players {
		r.Scores[i] = p.Score
	}
	r.Rounds = make([]Round, len(s.RoundSummaries))
	for i, sum := range s.RoundSummaries {
		round := Round{
			Contract: sum.Contract.String(),
			Taker:    sum.TakerID,
			Partner:  sum.PartnerID,
			TakerWon: sum.TakerWon,
			Value:    sum.Value,
			Scoring:  append([]int(nil), sum.Scoring...),
		}
		if sum.TrumpSuit != deck.NoSuit {
			round.Trump = strings.ToLower(sum.TrumpSuit.String())
		}
		r.Rounds[i] = round
	}
}

// Encode writes r as TOML.
func Encode(w io.Writer, r *Record) error {
	if r == nil {
		return fmt.Errorf("record: record is nil")
	}
	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(r)
}

// Decode reads a record written by Encode.
func Decode(rd io.Reader) (*Record, error) {
	var r Record
	md, err := toml.NewDecoder(rd).Decode(&r)
	if err != nil {
		return nil, fmt.Errorf("record: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("record: unknown key %s", undecoded[0])
	}
	if r.Variant != Variant {
		return nil, fmt.Errorf("record: unsupported variant %q", r.Variant)
	}
	if err := gameid.Validate(r.Game); err != nil {
		return nil, fmt.Errorf("record: %w", err)
	}
	return &r, nil
}

// Save writes r to path. Readers never see a partially written file.
func Save(path string, r *Record) error {
	err := fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		return Encode(w, r)
	})
	if err != nil {
		return fmt.Errorf("record: save %s: %w", path, err)
	}
	return nil
}

// Load reads the record at path.
func Load(path string) (*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("record: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Replay sets up the recorded game on e and applies every recorded action.
// It stops at the first action the engine rejects.
func Replay(e *game.Engine, r *Record) (*game.GameState, error) {
	s, err := e.Setup(r.Players, r.Seed)
	if err != nil {
		return nil, fmt.Errorf("record: %w", err)
	}
	for i, action := range r.Actions {
		player, m, err := ParseMove(action)
		if err != nil {
			return s, fmt.Errorf("action %d: %w", i+1, err)
		}
		if s, err = e.Apply(s, player, m); err != nil {
			return s, fmt.Errorf("action %d %q: %w", i+1, action, err)
		}
	}
	return s, nil
}
