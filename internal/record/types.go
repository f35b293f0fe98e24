package record

import "time"

// Variant is the variant name written to every record.
const Variant = "schafkopf"

// Record is a complete game: enough to replay it from scratch, plus the
// results for readers that do not want to.
type Record struct {
	Variant   string    `toml:"variant"`
	Game      string    `toml:"game"`
	Time      time.Time `toml:"time"`
	Players   int       `toml:"players"`
	Seed      int64     `toml:"seed"`
	MaxRounds int       `toml:"max_rounds,omitempty"`
	Actions   []string  `toml:"actions"`
	Scores    []int     `toml:"scores,omitempty"`
	Rounds    []Round   `toml:"rounds,omitempty"`
}

// Round is the outcome of one scored round.
type Round struct {
	Contract string `toml:"contract"`
	Trump    string `toml:"trump,omitempty"`
	Taker    int    `toml:"taker"`
	Partner  int    `toml:"partner"`
	TakerWon bool   `toml:"taker_won"`
	Value    int    `toml:"value"`
	Scoring  []int  `toml:"scoring"`
}
