package codegen

import (
	"math/rand"
	"time"
)

// DefaultLength is the drill length used when the caller passes none.
const DefaultLength = 30

// Generator produces randomized drill sequences.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Generate draws length symbols uniformly from the alphabet, with
// replacement. A non-positive length falls back to DefaultLength.
func (g *Generator) Generate(a Alphabet, length int) string {
	if length <= 0 {
		length = DefaultLength
	}
	if len(a.Symbols) == 0 {
		return ""
	}
	out := make([]rune, length)
	for i := range out {
		out[i] = a.Symbols[g.rnd.Intn(len(a.Symbols))]
	}
	return string(out)
}
