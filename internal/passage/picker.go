package passage

import (
	"errors"
	"math/rand"
	"time"
)

// ErrNoPassage is returned when a pool has no passage to draw from. It
// is a recoverable "no data" condition, not a crash.
var ErrNoPassage = errors.New("no passage available")

// maxAttempts bounds the repetition-avoidance retry loop. After this
// many draws a repeat is accepted rather than looping indefinitely.
const maxAttempts = 20

// Picker draws passages at random, avoiding an immediate repeat of the
// previous draw when the pool has more than one entry.
type Picker struct {
	rnd  *rand.Rand
	last string
}

// NewPicker returns a Picker seeded with the current time.
func NewPicker() *Picker {
	return &Picker{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Pick selects one passage from the pool.
func (p *Picker) Pick(pool []string) (string, error) {
	if len(pool) == 0 {
		return "", ErrNoPassage
	}
	if len(pool) == 1 {
		p.last = pool[0]
		return pool[0], nil
	}
	chosen := pool[p.rnd.Intn(len(pool))]
	for attempts := 0; chosen == p.last && attempts < maxAttempts; attempts++ {
		chosen = pool[p.rnd.Intn(len(pool))]
	}
	p.last = chosen
	return chosen, nil
}

// Reset forgets the previous draw, e.g. after a mode switch.
func (p *Picker) Reset() {
	p.last = ""
}
