// Package gameid generates identifiers for games and tables. Identifiers are
// UUIDv7 values in lower case Crockford base32, so they sort by creation time.
package gameid

import (
	crand "crypto/rand"
	"encoding/base32"
	"fmt"
	rand "math/rand/v2"
	"sync"

	"github.com/coder/quartz"
)

const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

var encoding = base32.NewEncoding(alphabet).WithPadding(base32.NoPadding)

// Len is the length of an encoded identifier.
const Len = 26

// Generator creates identifiers from a clock and a source of randomness. It
// is safe for concurrent use.
type Generator struct {
	clock quartz.Clock

	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator returns a generator. A nil clock uses the real clock and a
// nil rng draws from crypto/rand.
func NewGenerator(clock quartz.Clock, rng *rand.Rand) *Generator {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Generator{clock: clock, rng: rng}
}

// Generate returns a new identifier.
func (g *Generator) Generate() string {
	var id [16]byte

	ms := g.clock.Now().UnixMilli()
	for i := range 6 {
		id[i] = byte(ms >> (40 - 8*i))
	}

	if g.rng != nil {
		g.mu.Lock()
		for i := 6; i < len(id); i++ {
			id[i] = byte(g.rng.UintN(256))
		}
		g.mu.Unlock()
	} else if _, err := crand.Read(id[6:]); err != nil {
		panic("failed to generate random bytes: " + err.Error())
	}

	id[6] = id[6]&0x0f | 0x70 // version 7
	id[8] = id[8]&0x3f | 0x80 // RFC 4122 variant

	return encoding.EncodeToString(id[:])
}

func decode(id string) ([16]byte, error) {
	var out [16]byte
	if len(id) != Len {
		return out, fmt.Errorf("game ID must be exactly %d characters, got %d", Len, len(id))
	}
	raw, err := encoding.DecodeString(id)
	if err != nil {
		return out, fmt.Errorf("invalid game ID %q: %w", id, err)
	}
	copy(out[:], raw)
	if out[6]>>4 != 7 {
		return out, fmt.Errorf("invalid game ID %q: not a version 7 identifier", id)
	}
	return out, nil
}

// Validate checks that id is a well formed identifier.
func Validate(id string) error {
	_, err := decode(id)
	return err
}
