package rng

import (
	"errors"
	"math"
)

// ErrExhausted is returned when a bounded sampling loop runs out of attempts.
var ErrExhausted = errors.New("rng: sampling attempts exhausted")

// Source is a small deterministic generator with explicit state. Every stream
// is independent: two Sources built from the same seed produce identical
// sequences regardless of what any other Source in the process has done.
type Source struct {
	state uint64
}

// New returns a Source seeded from value. A zero seed is remapped so the
// xorshift state never sticks at zero.
func New(seed int64) *Source {
	s := &Source{state: mix64(uint64(seed))}
	if s.state == 0 {
		s.state = 0x9e3779b97f4a7c15
	}
	return s
}

// mix64 is the splitmix64 finalizer, used both for seeding and for deriving
// sub-seeds from arbitrary values.
func mix64(v uint64) uint64 {
	v += 0x9e3779b97f4a7c15
	v = (v ^ (v >> 30)) * 0xbf58476d1ce4e5b9
	v = (v ^ (v >> 27)) * 0x94d049bb133111eb
	return v ^ (v >> 31)
}

// Uint64 advances the state and returns the next raw value.
func (s *Source) Uint64() uint64 {
	s.state ^= s.state << 7
	s.state ^= s.state >> 9
	s.state ^= s.state << 8
	return s.state * 0x2545f4914f6cdd1d
}

// Float64 returns the next value in [0, 1).
func (s *Source) Float64() float64 {
	return float64(s.Uint64()>>11) / (1 << 53)
}

// Intn returns a value in [0, n). n <= 0 yields 0.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(s.Uint64() % uint64(n))
}

// Range returns a value in [lo, hi).
func (s *Source) Range(lo, hi float64) float64 {
	return lo + s.Float64()*(hi-lo)
}

// SubSeed derives a stable seed for the unit of work anchored at (x, y).
// The result depends only on the root seed and the coordinates, never on how
// many values any stream has already drawn, so generation for one placement
// can run in isolation (or in parallel) and still reproduce.
func SubSeed(seed int64, x, y float64) int64 {
	h := mix64(uint64(seed))
	h = mix64(h ^ math.Float64bits(x))
	h = mix64(h ^ math.Float64bits(y))
	return int64(h)
}

// Weighted picks an index with probability proportional to its weight.
// Non-positive weights are treated as zero; if all weights are zero the first
// index wins. One draw, no rejection loop.
func (s *Source) Weighted(weights []float64) int {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return 0
	}
	target := s.Float64() * total
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		target -= w
		if target < 0 {
			return i
		}
	}
	return len(weights) - 1
}

// Rejection draws values in [0, 1) until accept returns true, giving up after
// maxAttempts draws. The loop is bounded; exhaustion returns the last draw
// together with ErrExhausted so callers can fall back explicitly.
func (s *Source) Rejection(accept func(float64) bool, maxAttempts int) (float64, error) {
	if maxAttempts <= 0 {
		maxAttempts = 1
	}
	v := 0.0
	for i := 0; i < maxAttempts; i++ {
		v = s.Float64()
		if accept(v) {
			return v, nil
		}
	}
	return v, ErrExhausted
}
