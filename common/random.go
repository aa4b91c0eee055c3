package common

import (
	"math/rand/v2"
	"time"
)

// Random is the uniform source used by procedural generation.
type Random interface {
	// Float returns a value between lo and hi. lo may exceed hi.
	Float(lo, hi float64) float64
	// Int returns a value in the closed range [lo, hi]. lo may exceed hi.
	Int(lo, hi int) int
}

type pcgRandom struct {
	r *rand.Rand
}

// NewRandom returns a deterministic source for seed. A zero seed draws one
// from the clock.
func NewRandom(seed uint64) Random {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &pcgRandom{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (p *pcgRandom) Float(lo, hi float64) float64 {
	return lo + (hi-lo)*p.r.Float64()
}

func (p *pcgRandom) Int(lo, hi int) int {
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo + p.r.IntN(hi-lo+1)
}
