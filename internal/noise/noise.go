// Package noise provides a seedable multi-octave smooth noise field used as
// the terrain and placement heuristic. Octaves of opensimplex lattice noise
// are summed with halving amplitude, normalized back into [0, 1).
package noise

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

const (
	DefaultOctaves = 4
	DefaultFalloff = 0.5
)

// Params tunes the octave stack. Zero values select the defaults.
type Params struct {
	Octaves int
	Falloff float64
}

// Field is a deterministic smooth noise function over 1-3 dimensions.
// Identical seed and inputs always produce identical samples.
type Field struct {
	lattice opensimplex.Noise
	seed    int64
	octaves int
	falloff float64
}

func New(seed int64, params Params) *Field {
	if params.Octaves <= 0 {
		params.Octaves = DefaultOctaves
	}
	if params.Falloff <= 0 {
		params.Falloff = DefaultFalloff
	}
	return &Field{
		lattice: opensimplex.NewNormalized(seed),
		seed:    seed,
		octaves: params.Octaves,
		falloff: params.Falloff,
	}
}

// Reseed reinitializes the lattice deterministically from seed.
func (f *Field) Reseed(seed int64) {
	f.lattice = opensimplex.NewNormalized(seed)
	f.seed = seed
}

// Seed returns the seed the lattice was built from.
func (f *Field) Seed() int64 {
	return f.seed
}

// Sample returns smooth noise along one dimension.
func (f *Field) Sample(x float64) float64 {
	return f.Sample3(x, 0, 0)
}

// Sample2 returns smooth noise over two dimensions.
func (f *Field) Sample2(x, y float64) float64 {
	return f.Sample3(x, y, 0)
}

// Sample3 returns smooth noise over three dimensions in [0, 1).
func (f *Field) Sample3(x, y, z float64) float64 {
	sum := 0.0
	amplitude := 1.0
	frequency := 1.0
	total := 0.0
	for i := 0; i < f.octaves; i++ {
		sum += f.lattice.Eval3(x*frequency, y*frequency, z*frequency) * amplitude
		total += amplitude
		amplitude *= f.falloff
		frequency *= 2
	}
	return sum / total
}
