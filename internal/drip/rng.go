package drip

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// RandomSource abstract

type RandomSource interface {
	Float64() float64              // [0, 1)
	Uniform(lo, hi float64) float64 // [lo, hi)
}

// uniform maps a [0,1) draw onto [lo, hi).
func uniform(u, lo, hi float64) float64 { return lo + (hi-lo)*u }

// crypto random : default generation method
type cryptoRNG struct{}

func (cryptoRNG) Float64() float64 {
	// Read 53bit random => [0, 1)
	var buf [8]byte
	if _, err := cryptoRand.Read(buf[:]); err != nil {
		// backto math / rand/ v2
		return rand.Float64()
	}

	u := binary.BigEndian.Uint64(buf[:]) >> 11 // 53 bits
	return float64(u) / (1 << 53)
}

func (c cryptoRNG) Uniform(lo, hi float64) float64 { return uniform(c.Float64(), lo, hi) }

func DefaultRNG() RandomSource { return cryptoRNG{} }

// Replicable RNG (e.g. seeded comparisons, Monte Carlo)
type seededRNG struct{ r *rand.Rand }

func NewSeededRNG(seed uint64) RandomSource {
	return NewStreamRNG(seed, 0)
}

// NewStreamRNG returns a PCG source on its own stream, so trials sharing a
// seed still draw independent sequences.
func NewStreamRNG(seed, stream uint64) RandomSource {
	return &seededRNG{r: rand.New(rand.NewPCG(seed, stream))}
}

func (s *seededRNG) Float64() float64 { return s.r.Float64() }

func (s *seededRNG) Uniform(lo, hi float64) float64 { return uniform(s.r.Float64(), lo, hi) }

// NewSource picks the source a run should use: seeded when cfg.Seed is set,
// crypto-backed otherwise.
func NewSource(cfg Config) RandomSource {
	if cfg.Seed != nil {
		return NewSeededRNG(*cfg.Seed)
	}
	return DefaultRNG()
}
