package sketch

import (
	"scrollscape/internal/plan"
	"scrollscape/internal/rng"
	"scrollscape/internal/scape"
)

// Boat draws a small river boat: a curved hull, a canopy, and a figure
// suggested by a couple of strokes. Scale grows with placement intensity so
// nearer boats read larger.
func Boat(rec plan.PlacementRecord, seed int64, _ scape.Toggles) (scape.Piece, error) {
	r := rng.New(seed)

	scale := 0.6 + rec.Intensity*0.8
	length := 80 * scale
	depth := 10 * scale

	hull := []point{
		{-length / 2, -depth},
		{-length * 0.35, 0},
		{length * 0.35, 0},
		{length / 2, -depth},
	}
	dark := inkTone(22)
	parts := []string{fillPath(hull, dark, 0.9)}

	// Canopy amidships, slightly off-center.
	cx := r.Range(-length*0.1, length*0.1)
	cw := length * 0.35
	ch := 14 * scale
	canopy := []point{
		{cx - cw/2, -depth},
		{cx - cw*0.3, -depth - ch},
		{cx + cw*0.3, -depth - ch},
		{cx + cw/2, -depth},
	}
	parts = append(parts, fillPath(canopy, inkTone(40), 0.8))

	// Standing figure at the stern with a pole.
	fx := length * 0.4
	fh := 16 * scale
	parts = append(parts,
		strokePath([]point{{fx, -depth}, {fx, -depth - fh}}, dark, 1.5),
		strokePath([]point{{fx - 4*scale, -depth - fh*0.7}, {fx + 6*scale, 2}}, dark, 1))

	return scape.Piece{X: rec.X, Y: rec.Y, Drawing: scape.Content(group(rec.X, rec.Y, parts))}, nil
}
