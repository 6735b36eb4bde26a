// Package plan decides where landscape features go. The planner scans a
// horizontal interval against a seeded noise field and emits placement
// records for the loader to realize; all randomness is derived from the seed
// and the candidate's coordinates, so identical inputs reproduce identical
// plans no matter what else the process has generated.
package plan

import (
	"math"

	"scrollscape/internal/noise"
	"scrollscape/internal/rng"
)

// Salts keep the per-purpose random streams apart. Each stream sub-seeds from
// the root seed and one of these, so reordering passes can never alias draws.
const (
	saltRelief  = -1001.0
	saltDistant = -2002.0
	saltFlat    = -3003.0
	saltBoat    = -4004.0
)

// Config carries the planning heuristics. The spacing constants are
// independent knobs: mountain dedup distance and footprint width differ in
// scale on purpose and no derived relationship between them is assumed.
type Config struct {
	// XStep is the horizontal scan step for mountain candidates.
	XStep float64 `yaml:"xStep"`
	// MaxDepth caps the column height bound derived from the relief noise.
	MaxDepth float64 `yaml:"maxDepth"`
	// YStride is the vertical scan stride inside a column.
	YStride float64 `yaml:"yStride"`
	// SuitabilityThreshold cuts the placement field; only values above it are
	// eligible, rescaled to (0, 1].
	SuitabilityThreshold float64 `yaml:"suitabilityThreshold"`
	// SuitabilityFrequency scales candidate coordinates into noise space.
	SuitabilityFrequency float64 `yaml:"suitabilityFrequency"`
	// ReliefFrequency scales the low-frequency column bound noise.
	ReliefFrequency float64 `yaml:"reliefFrequency"`
	// LocalRadius is the non-maximum-suppression radius, scanned at unit
	// granularity.
	LocalRadius float64 `yaml:"localRadius"`
	// MinSpacing is the minimum x distance between accepted mountains.
	MinSpacing float64 `yaml:"minSpacing"`
	// FootprintWidth is the window marked as occupied around a mountain.
	FootprintWidth float64 `yaml:"footprintWidth"`
	// Jitter is the maximum random offset applied to a final position.
	Jitter float64 `yaml:"jitter"`

	// DistantInterval spaces the unconditional background silhouettes.
	DistantInterval   float64 `yaml:"distantInterval"`
	DistantMinSpacing float64 `yaml:"distantMinSpacing"`

	// FlatChance is the probability of a flat-mountain cluster in an empty
	// bucket; a cluster holds up to FlatClusterMax records.
	FlatChance     float64 `yaml:"flatChance"`
	FlatClusterMax int     `yaml:"flatClusterMax"`

	// BoatStep, BoatChance and BoatMinSpacing drive the independent boat
	// scan. Boats keep distance only from other boats.
	BoatStep       float64 `yaml:"boatStep"`
	BoatChance     float64 `yaml:"boatChance"`
	BoatMinSpacing float64 `yaml:"boatMinSpacing"`
}

func DefaultConfig() Config {
	return Config{
		XStep:                5,
		MaxDepth:             480,
		YStride:              30,
		SuitabilityThreshold: 0.3,
		SuitabilityFrequency: 0.01,
		ReliefFrequency:      0.002,
		LocalRadius:          2,
		MinSpacing:           10,
		FootprintWidth:       200,
		Jitter:               4,
		DistantInterval:      1000,
		DistantMinSpacing:    500,
		FlatChance:           0.01,
		FlatClusterMax:       3,
		BoatStep:             100,
		BoatChance:           0.2,
		BoatMinSpacing:       400,
	}
}

// Planner scans coordinate intervals and accumulates the planning matrix.
// It owns no global state; two planners built with the same seed and config
// plan identically.
type Planner struct {
	cfg    Config
	seed   int64
	place  *noise.Field
	relief *noise.Field
	matrix *Matrix

	// Accepted positions, kept across calls so extension strips respect
	// spacing against features planned earlier.
	mountains []float64
	distants  []float64
	boats     []float64
}

func NewPlanner(seed int64, cfg Config, params noise.Params) *Planner {
	return &Planner{
		cfg:    cfg,
		seed:   seed,
		place:  noise.New(seed, params),
		relief: noise.New(rng.SubSeed(seed, saltRelief, 0), params),
		matrix: NewMatrix(cfg.XStep),
	}
}

// Matrix exposes the density accumulator, read-only by convention.
func (p *Planner) Matrix() *Matrix {
	return p.matrix
}

// Plan scans [xmin, xmax) and returns the new placement records in emission
// order: primary mountains, distant mountains, flat mountains, boats. An
// empty or inverted interval yields an empty plan without error.
func (p *Planner) Plan(xmin, xmax float64) []PlacementRecord {
	if xmax <= xmin {
		return nil
	}
	var records []PlacementRecord
	records = p.planPrimary(xmin, xmax, records)
	records = p.planDistant(xmin, xmax, records)
	records = p.planFlat(xmin, xmax, records)
	records = p.planBoats(xmin, xmax, records)
	return records
}

// alignUp snaps x to the first absolute grid point >= x. Scan grids are
// anchored at zero, not at the strip edge, so the same world falls out no
// matter how the coordinate range was cut into strips.
func alignUp(x, step float64) float64 {
	return math.Ceil(x/step) * step
}

func (p *Planner) planPrimary(xmin, xmax float64, records []PlacementRecord) []PlacementRecord {
	cfg := p.cfg
	for x := alignUp(xmin, cfg.XStep); x < xmax; x += cfg.XStep {
		bound := p.columnBound(x)
		for y := 0.0; y < bound; y += cfg.YStride {
			v := p.suitability(x, y)
			if v <= 0 || !p.isLocalMax(x, y, v) {
				continue
			}
			r := rng.New(rng.SubSeed(p.seed, x, y))
			px := x + r.Range(-cfg.Jitter, cfg.Jitter)
			py := y + r.Range(-cfg.Jitter, cfg.Jitter)
			if tooClose(p.mountains, px, cfg.MinSpacing) {
				continue
			}
			records = append(records, PlacementRecord{
				Kind:      PrimaryMountain,
				X:         px,
				Y:         py,
				Intensity: v,
			})
			p.mountains = append(p.mountains, px)
			p.matrix.Mark(px, cfg.FootprintWidth)
		}
	}
	return records
}

func (p *Planner) planDistant(xmin, xmax float64, records []PlacementRecord) []PlacementRecord {
	cfg := p.cfg
	for gx := alignUp(xmin, cfg.DistantInterval); gx < xmax; gx += cfg.DistantInterval {
		r := rng.New(rng.SubSeed(p.seed, gx, saltDistant))
		px := gx + r.Range(-cfg.Jitter, cfg.Jitter)*8
		if tooClose(p.distants, px, cfg.DistantMinSpacing) {
			continue
		}
		// Background band: a negative depth key keeps the silhouette behind
		// every foreground mountain in paint order.
		py := -cfg.MaxDepth * (0.5 + 0.25*r.Float64())
		records = append(records, PlacementRecord{
			Kind:      DistantMountain,
			X:         px,
			Y:         py,
			Intensity: r.Float64(),
		})
		p.distants = append(p.distants, px)
	}
	return records
}

func (p *Planner) planFlat(xmin, xmax float64, records []PlacementRecord) []PlacementRecord {
	cfg := p.cfg
	first := p.matrix.bucketOf(xmin)
	for b := first; p.matrix.BucketCenter(b) < xmax; b++ {
		center := p.matrix.BucketCenter(b)
		if center < xmin || p.matrix.CountBucket(b) != 0 {
			continue
		}
		r := rng.New(rng.SubSeed(p.seed, center, saltFlat))
		if r.Float64() >= cfg.FlatChance {
			continue
		}
		cluster := r.Intn(cfg.FlatClusterMax + 1)
		for i := 0; i < cluster; i++ {
			px := center + r.Range(-cfg.FootprintWidth/4, cfg.FootprintWidth/4)
			py := r.Range(cfg.MaxDepth*0.5, cfg.MaxDepth)
			if tooClose(p.mountains, px, cfg.MinSpacing) {
				continue
			}
			records = append(records, PlacementRecord{
				Kind:      FlatMountain,
				X:         px,
				Y:         py,
				Intensity: r.Float64(),
			})
			p.mountains = append(p.mountains, px)
			p.matrix.Mark(px, cfg.FootprintWidth)
		}
	}
	return records
}

func (p *Planner) planBoats(xmin, xmax float64, records []PlacementRecord) []PlacementRecord {
	cfg := p.cfg
	for x := alignUp(xmin, cfg.BoatStep); x < xmax; x += cfg.BoatStep {
		r := rng.New(rng.SubSeed(p.seed, x, saltBoat))
		if r.Float64() >= cfg.BoatChance {
			continue
		}
		px := x + r.Range(0, cfg.BoatStep)
		if tooClose(p.boats, px, cfg.BoatMinSpacing) {
			continue
		}
		py := r.Range(cfg.MaxDepth*0.6, cfg.MaxDepth*1.4)
		records = append(records, PlacementRecord{
			Kind:      Boat,
			X:         px,
			Y:         py,
			Intensity: r.Float64(),
		})
		p.boats = append(p.boats, px)
	}
	return records
}

// columnBound derives the vertical extent of the candidate column at x from
// the low-frequency relief noise.
func (p *Planner) columnBound(x float64) float64 {
	return p.relief.Sample(x*p.cfg.ReliefFrequency) * p.cfg.MaxDepth
}

// suitability thresholds and rescales the placement field so only values
// above the cut are eligible, mapped onto (0, 1].
func (p *Planner) suitability(x, y float64) float64 {
	n := p.place.Sample2(x*p.cfg.SuitabilityFrequency, y*p.cfg.SuitabilityFrequency)
	if n <= p.cfg.SuitabilityThreshold {
		return 0
	}
	return (n - p.cfg.SuitabilityThreshold) / (1 - p.cfg.SuitabilityThreshold)
}

// isLocalMax suppresses candidates dominated by a strictly greater neighbor
// within LocalRadius, scanned at unit granularity. Without this, noise
// ridges produce dense runs of mountains.
func (p *Planner) isLocalMax(x, y, v float64) bool {
	radius := int(p.cfg.LocalRadius)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if p.suitability(x+float64(dx), y+float64(dy)) > v {
				return false
			}
		}
	}
	return true
}

func tooClose(accepted []float64, x, minDist float64) bool {
	for _, a := range accepted {
		if math.Abs(a-x) < minDist {
			return true
		}
	}
	return false
}
