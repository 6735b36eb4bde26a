package sketch

import (
	"math"

	"scrollscape/internal/noise"
	"scrollscape/internal/plan"
	"scrollscape/internal/rng"
	"scrollscape/internal/scape"
)

// Primary draws a foreground mountain: a stack of ridged washes, darkest in
// front, with an optional tree line along the leading ridge.
func Primary(rec plan.PlacementRecord, seed int64, toggles scape.Toggles) (scape.Piece, error) {
	r := rng.New(seed)
	field := noise.New(seed, noise.Params{Octaves: 3, Falloff: 0.55})

	width := 300 + rec.Intensity*260
	height := 120 + rec.Intensity*220
	const layers = 5
	const segments = 40

	parts := make([]string, 0, layers+1)
	var front []point
	for layer := 0; layer < layers; layer++ {
		scale := 1 - float64(layer)*0.16
		phase := float64(layer) * 3.7
		pts := make([]point, 0, segments+3)
		for i := 0; i <= segments; i++ {
			t := float64(i) / segments
			x := (t - 0.5) * width * scale
			envelope := math.Sin(math.Pi * t)
			ridge := field.Sample2(t*6, phase)
			y := -height * scale * envelope * (0.55 + 0.45*ridge)
			pts = append(pts, point{x, y})
		}
		// Close along the base so the wash fills downward.
		pts = append(pts, point{width * scale / 2, 0}, point{-width * scale / 2, 0})
		lightness := 30 + float64(layers-1-layer)*12
		parts = append(parts, fillPath(pts, inkTone(lightness), 0.85))
		if layer == layers-1 {
			front = pts[:segments+1]
		}
	}

	if toggles.Trees {
		parts = append(parts, treeLine(r, front))
	}

	return scape.Piece{X: rec.X, Y: rec.Y, Drawing: scape.Content(group(rec.X, rec.Y, parts))}, nil
}

// Tree strokes come in three height bands, shorter ones more common.
var treeBandWeights = []float64{5, 3, 1}

// treeLine scatters short vertical strokes along the front ridge.
func treeLine(r *rng.Source, ridge []point) string {
	strokes := make([]string, 0, len(ridge))
	tone := inkTone(18)
	for _, p := range ridge {
		if r.Float64() > 0.4 {
			continue
		}
		band := r.Weighted(treeBandWeights)
		h := 5 + float64(band)*5 + r.Float64()*4
		strokes = append(strokes, strokePath([]point{{p.X, p.Y}, {p.X, p.Y - h}}, tone, 1.2))
	}
	return group(0, 0, strokes)
}

// Flat draws a broad flat-topped mountain. Buildings, when enabled, sit on
// the plateau as simple hut profiles.
func Flat(rec plan.PlacementRecord, seed int64, toggles scape.Toggles) (scape.Piece, error) {
	r := rng.New(seed)

	width := 220 + rec.Intensity*180
	height := 60 + rec.Intensity*80
	top := width * (0.4 + r.Float64()*0.2)

	body := []point{
		{-width / 2, 0},
		{-top / 2, -height},
		{top / 2, -height},
		{width / 2, 0},
	}
	parts := []string{fillPath(body, inkTone(42), 0.8)}

	// Hatch strokes down the slopes.
	hatch := inkTone(30)
	for i := 0; i < 6; i++ {
		t := float64(i+1) / 7
		lx := -width/2 + (width/2-top/2)*t
		rx := width/2 - (width/2-top/2)*t
		y := -height * t
		parts = append(parts,
			strokePath([]point{{lx, y}, {lx + 8 + r.Float64()*6, y}}, hatch, 1),
			strokePath([]point{{rx - 8 - r.Float64()*6, y}, {rx, y}}, hatch, 1))
	}

	if toggles.Buildings {
		n := 1 + r.Intn(3)
		for _, hx := range hutSpots(r, top, n) {
			hw := 12 + r.Float64()*10
			hh := 10 + r.Float64()*8
			hut := []point{
				{hx - hw/2, -height},
				{hx - hw/2, -height - hh},
				{hx, -height - hh - hw*0.4},
				{hx + hw/2, -height - hh},
				{hx + hw/2, -height},
			}
			parts = append(parts, fillPath(hut, inkTone(24), 0.9))
		}
	}

	return scape.Piece{X: rec.X, Y: rec.Y, Drawing: scape.Content(group(rec.X, rec.Y, parts))}, nil
}

// minHutSpacing keeps plateau huts from drawing over each other.
const minHutSpacing = 26.0

// hutSpots places up to n huts on a plateau of the given top width, rejecting
// candidates that crowd an earlier hut. A plateau too small for another hut
// exhausts the sampler and the remaining huts are dropped.
func hutSpots(r *rng.Source, top float64, n int) []float64 {
	lo, hi := -top/2+10, top/2-10
	if hi <= lo {
		return nil
	}
	spots := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		u, err := r.Rejection(func(u float64) bool {
			hx := lo + u*(hi-lo)
			for _, q := range spots {
				if math.Abs(hx-q) < minHutSpacing {
					return false
				}
			}
			return true
		}, 16)
		if err != nil {
			break
		}
		spots = append(spots, lo+u*(hi-lo))
	}
	return spots
}

// Distant draws a faint background band of overlapping peaks.
func Distant(rec plan.PlacementRecord, seed int64, _ scape.Toggles) (scape.Piece, error) {
	field := noise.New(seed, noise.Params{Octaves: 2, Falloff: 0.5})

	width := 900 + rec.Intensity*600
	height := 50 + rec.Intensity*60
	const segments = 60

	pts := make([]point, 0, segments+3)
	for i := 0; i <= segments; i++ {
		t := float64(i) / segments
		x := (t - 0.5) * width
		fade := math.Sin(math.Pi * t)
		y := -height * fade * field.Sample(t*4)
		pts = append(pts, point{x, y})
	}
	pts = append(pts, point{width / 2, 0}, point{-width / 2, 0})

	parts := []string{fillPath(pts, inkTone(72), 0.55)}
	return scape.Piece{X: rec.X, Y: rec.Y, Drawing: scape.Content(group(rec.X, rec.Y, parts))}, nil
}
