package voxel

import (
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
)

// SeedFromPhrase turns a config seed into a PRNG seed. Decimal integers are
// used as-is; anything else is hashed. An empty phrase yields a time-based
// seed.
func SeedFromPhrase(phrase string) uint64 {
	if phrase == "" {
		return uint64(time.Now().UnixNano())
	}
	if n, err := strconv.ParseUint(phrase, 10, 64); err == nil {
		return n
	}
	return xxhash.Sum64String(phrase)
}

// NewRand returns a deterministic source for seed
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Randomize assigns each cell a uniform height in [0, MaxHeight]
func (g *Grid) Randomize(r *rand.Rand) {
	for i := range g.heights {
		g.heights[i] = uint8(r.IntN(g.maxHeight + 1))
	}
}

// Generate builds a grid from a seed phrase, or a fixed fill when fill >= 0
func Generate(size, maxHeight int, seedPhrase string, fill int) (*Grid, uint64, error) {
	g, err := New(size, maxHeight)
	if err != nil {
		return nil, 0, err
	}
	if fill >= 0 {
		g.Fill(fill)
		return g, 0, nil
	}
	seed := SeedFromPhrase(seedPhrase)
	g.Randomize(NewRand(seed))
	return g, seed, nil
}
