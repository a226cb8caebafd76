// internal/game/secret.go
//
// Secret generation.
// A Generator draws each position independently and uniformly from the
// palette (with replacement), so repeated symbols are expected. The random
// source is injected: tests pass a fixed seed, play uses RandomSeed.

package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Generator produces secrets. It is not safe for concurrent use; each session
// owns the generator it was built with.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator wraps src.
func NewGenerator(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

// NewSeededGenerator returns a generator that yields the same secrets for the
// same seed.
func NewSeededGenerator(seed int64) *Generator {
	return NewGenerator(rand.NewSource(seed))
}

// Generate draws a code of the given length from p.
func (g *Generator) Generate(p Palette, length int) (Code, error) {
	if p.Len() == 0 {
		return nil, fmt.Errorf("%w: empty palette", ErrInvalidInput)
	}
	if length < 1 {
		return nil, fmt.Errorf("%w: code length must be positive, got %d", ErrInvalidInput, length)
	}
	out := make(Code, length)
	for i := range out {
		out[i] = Symbol(g.rng.Intn(p.Len()))
	}
	return out, nil
}

// RandomSeed reads a seed from crypto/rand.
func RandomSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
