// Package scape keeps the generated landscape: a depth-ordered chunk store,
// the loader that extends planned territory to cover the viewport, and the
// compositor that selects the visible slice.
package scape

import "scrollscape/internal/plan"

// Content is opaque drawable markup produced by a content generator. The
// store and compositor never interpret it.
type Content string

// Piece is a generator's raw output: where the drawing anchors and the
// drawing itself.
type Piece struct {
	X       float64
	Y       float64
	Drawing Content
}

// Chunk is one generated, immutable piece of world content. Y is the depth
// key: lower values composite first (painter's algorithm).
type Chunk struct {
	Kind    plan.FeatureKind
	X       float64
	Y       float64
	Drawing Content
}

// GeneratorFunc renders one placement. The seed is derived from the
// placement's coordinates and is stable across runs; implementations must be
// pure functions of their arguments so the loader may invoke them from
// worker goroutines.
type GeneratorFunc func(rec plan.PlacementRecord, seed int64, toggles Toggles) (Piece, error)

// Registry maps feature kinds to their content generators. Registration is
// explicit; the loader only ever reads it.
type Registry struct {
	generators map[plan.FeatureKind]GeneratorFunc
}

func NewRegistry() *Registry {
	return &Registry{generators: make(map[plan.FeatureKind]GeneratorFunc)}
}

func (r *Registry) Register(kind plan.FeatureKind, fn GeneratorFunc) {
	r.generators[kind] = fn
}

func (r *Registry) Lookup(kind plan.FeatureKind) (GeneratorFunc, bool) {
	fn, ok := r.generators[kind]
	return fn, ok
}

// Toggles gates which feature kinds are generated. Trees and Buildings are
// decoration flags consulted by the generators themselves, not by dispatch.
type Toggles struct {
	Mountains        bool `yaml:"mountains"`
	FlatMountains    bool `yaml:"flatMountains"`
	DistantMountains bool `yaml:"distantMountains"`
	Boats            bool `yaml:"boats"`
	Water            bool `yaml:"water"`
	Trees            bool `yaml:"trees"`
	Buildings        bool `yaml:"buildings"`
}

// AllToggles enables every feature.
func AllToggles() Toggles {
	return Toggles{
		Mountains:        true,
		FlatMountains:    true,
		DistantMountains: true,
		Boats:            true,
		Water:            true,
		Trees:            true,
		Buildings:        true,
	}
}

// Enabled reports whether a feature kind should be dispatched. A disabled
// kind is simply skipped: no chunk, no side effect.
func (t Toggles) Enabled(kind plan.FeatureKind) bool {
	switch kind {
	case plan.PrimaryMountain:
		return t.Mountains
	case plan.FlatMountain:
		return t.FlatMountains
	case plan.DistantMountain:
		return t.DistantMountains
	case plan.Boat:
		return t.Boats
	case plan.Water:
		return t.Water
	default:
		return false
	}
}

// Viewport describes the visible coordinate window plus the pre-generated
// margin kept on both sides to avoid pop-in while scrolling. Read-only to
// this package.
type Viewport struct {
	CursorX float64
	Width   float64
	Height  float64
	Buffer  float64
}
