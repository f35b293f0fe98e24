// Package session runs a single game table: it serialises move submission,
// publishes immutable snapshots for concurrent readers and enforces turn
// timeouts.
package session

import (
	"io"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/schafkopf/internal/game"
	"github.com/lox/schafkopf/internal/gameid"
	"github.com/lox/schafkopf/internal/record"
)

// Entry is one committed move.
type Entry struct {
	Seq    int
	Player int
	Move   game.Move
	Forced bool // submitted by the turn timer
}

// Table owns the authoritative state of one game.
type Table struct {
	id      string
	engine  *game.Engine
	logger  *log.Logger
	clock   quartz.Clock
	timeout time.Duration
	created time.Time
	players int
	seed    int64

	mu      sync.Mutex
	state   *game.GameState
	entries []Entry
	timer   *quartz.Timer
	turn    uint64

	snapshot atomic.Pointer[game.GameState]
}

// New seats a table and deals the first round.
func New(numPlayers int, seed int64, opts ...Option) (*Table, error) {
	t := &Table{
		players: numPlayers,
		seed:    seed,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.engine == nil {
		t.engine = game.New()
	}
	if t.logger == nil {
		t.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if t.clock == nil {
		t.clock = quartz.NewReal()
	}
	if t.id == "" {
		t.id = gameid.NewGenerator(t.clock, nil).Generate()
	}
	t.logger = t.logger.With("table", t.id)
	t.created = t.clock.Now()

	s, err := t.engine.Setup(numPlayers, seed)
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.commit(s)
	t.logger.Info("Table opened", "players", numPlayers, "timeout", t.timeout)
	return t, nil
}

// ID returns the table identifier.
func (t *Table) ID() string {
	return t.id
}

// Submit applies a move on behalf of player. Moves are applied one at a time
// in the order Submit is called. On rejection the state is unchanged and the
// *game.MoveError is returned.
func (t *Table) Submit(player int, m game.Move) (*game.GameState, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.submit(player, m, false)
}

func (t *Table) submit(player int, m game.Move, forced bool) (*game.GameState, error) {
	next, err := t.engine.Apply(t.state, player, m)
	if err != nil {
		return t.state, err
	}
	t.entries = append(t.entries, Entry{
		Seq:    len(t.entries) + 1,
		Player: player,
		Move:   m,
		Forced: forced,
	})
	prev := t.state
	t.commit(next)

	if next.Phase != prev.Phase || next.GameOver {
		t.logger.Debug("Phase changed", "phase", next.Phase, "round", next.Round())
	}
	return next, nil
}

// commit publishes s and restarts the turn timer. Callers hold mu.
func (t *Table) commit(s *game.GameState) {
	t.state = s
	t.snapshot.Store(s)
	t.turn++

	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	if t.timeout <= 0 || s.GameOver {
		return
	}
	turn := t.turn
	t.timer = t.clock.AfterFunc(t.timeout, func() { t.expire(turn) }, "session", "turn")
}

// expire submits the default move for everybody the game is waiting on, as
// long as no move was committed since the timer was armed.
func (t *Table) expire(turn uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if turn != t.turn {
		return
	}

	for _, player := range waitingFor(t.state) {
		m, ok := game.DefaultMove(t.state, player)
		if !ok {
			continue
		}
		t.logger.Warn("Turn timed out, forcing move", "player", player, "move", m)
		if _, err := t.submit(player, m, true); err != nil {
			t.logger.Error("Forced move rejected", "player", player, "move", m, "error", err)
		}
	}
}

// waitingFor lists the players the game cannot continue without.
func waitingFor(s *game.GameState) []int {
	if s.GameOver {
		return nil
	}
	if s.CurrentPlayer != game.NoPlayer {
		return []int{s.CurrentPlayer}
	}
	var out []int
	for i, p := range s.Players {
		if !p.IsReady {
			out = append(out, i)
		}
	}
	return out
}

// Snapshot returns the latest committed state. It must not be modified.
func (t *Table) Snapshot() *game.GameState {
	return t.snapshot.Load()
}

// View returns the latest state as seen by viewer.
func (t *Table) View(viewer int) *game.GameState {
	return game.Project(t.Snapshot(), viewer)
}

// Log returns the committed moves in order.
func (t *Table) Log() []Entry {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.entries)
}

// Record returns the game so far as a replayable record.
func (t *Table) Record() *record.Record {
	t.mu.Lock()
	defer t.mu.Unlock()

	r := record.New(t.id, t.players, t.seed, t.created)
	r.MaxRounds = t.engine.Rules().MaxRounds
	for _, e := range t.entries {
		r.Append(e.Player, e.Move)
	}
	r.SetResult(t.state)
	return r
}

// Close stops the turn timer. The table stays readable.
func (t *Table) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.turn++
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
