package sketch

import (
	"scrollscape/internal/noise"
	"scrollscape/internal/plan"
	"scrollscape/internal/rng"
	"scrollscape/internal/scape"
)

// Water draws the reflection band under a mountain: staggered horizontal
// strokes that thin out with distance from the shoreline.
func Water(rec plan.PlacementRecord, seed int64, _ scape.Toggles) (scape.Piece, error) {
	r := rng.New(seed)
	field := noise.New(seed, noise.Params{Octaves: 2, Falloff: 0.5})

	width := 400 + rec.Intensity*240
	const rows = 6
	tone := inkTone(60)

	var parts []string
	for row := 0; row < rows; row++ {
		y := 8 + float64(row)*7
		// Fewer, shorter strokes further from the shore.
		n := 5 - row/2
		for i := 0; i < n; i++ {
			cx := r.Range(-width/2, width/2)
			half := (20 + r.Float64()*40) * (1 - float64(row)/rows)
			wobble := (field.Sample2(cx*0.02, float64(row)) - 0.5) * 3
			parts = append(parts, strokePath([]point{
				{cx - half, y + wobble},
				{cx + half, y + wobble},
			}, tone, 1))
		}
	}

	return scape.Piece{X: rec.X, Y: rec.Y, Drawing: scape.Content(group(rec.X, rec.Y, parts))}, nil
}
