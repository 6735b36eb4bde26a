package plan

import (
	"math"
	"testing"

	"scrollscape/internal/noise"
)

func newTestPlanner(seed int64) *Planner {
	return NewPlanner(seed, DefaultConfig(), noise.Params{})
}

func TestPlanDeterministic(t *testing.T) {
	a := newTestPlanner(42).Plan(0, 1000)
	b := newTestPlanner(42).Plan(0, 1000)

	if len(a) == 0 {
		t.Fatal("expected a non-empty plan for seed 42 over [0,1000)")
	}
	if len(a) != len(b) {
		t.Fatalf("plan lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("record %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestPlanSeedChangesOutput(t *testing.T) {
	a := newTestPlanner(1).Plan(0, 2000)
	b := newTestPlanner(2).Plan(0, 2000)
	if len(a) == len(b) {
		same := true
		for i := range a {
			if a[i] != b[i] {
				same = false
				break
			}
		}
		if same {
			t.Fatal("different seeds produced identical plans")
		}
	}
}

func TestPlanEmptyAndInvertedRange(t *testing.T) {
	p := newTestPlanner(7)
	if got := p.Plan(100, 100); len(got) != 0 {
		t.Fatalf("empty range should plan nothing, got %d records", len(got))
	}
	if got := p.Plan(100, 50); len(got) != 0 {
		t.Fatalf("inverted range should plan nothing, got %d records", len(got))
	}
}

func TestPrimaryMountainMinSpacing(t *testing.T) {
	cfg := DefaultConfig()
	records := newTestPlanner(42).Plan(0, 4000)

	var xs []float64
	for _, rec := range records {
		if rec.Kind == PrimaryMountain {
			xs = append(xs, rec.X)
		}
	}
	if len(xs) < 2 {
		t.Skipf("not enough primary mountains to check spacing: %d", len(xs))
	}
	for i := 0; i < len(xs); i++ {
		for j := i + 1; j < len(xs); j++ {
			if d := math.Abs(xs[i] - xs[j]); d < cfg.MinSpacing {
				t.Fatalf("mountains %d and %d only %v apart (min %v)", i, j, d, cfg.MinSpacing)
			}
		}
	}
}

func TestBoatMinSpacing(t *testing.T) {
	cfg := DefaultConfig()
	records := newTestPlanner(9).Plan(0, 20000)

	var xs []float64
	for _, rec := range records {
		if rec.Kind == Boat {
			xs = append(xs, rec.X)
		}
	}
	if len(xs) < 2 {
		t.Skipf("not enough boats to check spacing: %d", len(xs))
	}
	for i := 0; i < len(xs); i++ {
		for j := i + 1; j < len(xs); j++ {
			if d := math.Abs(xs[i] - xs[j]); d < cfg.BoatMinSpacing {
				t.Fatalf("boats %d and %d only %v apart (min %v)", i, j, d, cfg.BoatMinSpacing)
			}
		}
	}
}

func TestDistantMountainsAtLongRangeIntervals(t *testing.T) {
	records := newTestPlanner(7).Plan(0, 3000)
	distant := 0
	for _, rec := range records {
		if rec.Kind == DistantMountain {
			distant++
			if rec.Y >= 0 {
				t.Fatalf("distant mountain should carry a negative depth key, got %v", rec.Y)
			}
		}
	}
	if distant < 2 {
		t.Fatalf("expected at least 2 distant mountains over [0,3000), got %d", distant)
	}
}

func TestPlanIntensitiesInRange(t *testing.T) {
	records := newTestPlanner(13).Plan(0, 2000)
	for _, rec := range records {
		if rec.Intensity < 0 || rec.Intensity > 1 {
			t.Fatalf("%s intensity out of [0,1]: %v", rec.Kind, rec.Intensity)
		}
		if math.IsNaN(rec.X) || math.IsNaN(rec.Y) {
			t.Fatalf("%s has NaN position", rec.Kind)
		}
	}
}

func TestPlanMarksMatrixFootprints(t *testing.T) {
	p := newTestPlanner(42)
	records := p.Plan(0, 2000)
	for _, rec := range records {
		if rec.Kind != PrimaryMountain && rec.Kind != FlatMountain {
			continue
		}
		if p.Matrix().Count(rec.X) == 0 {
			t.Fatalf("%s at %v left no footprint in the matrix", rec.Kind, rec.X)
		}
	}
}

// Extending coverage strip by strip must agree with planning the union in
// one call. Distant mountains and boats dedup only against their own kind, so
// they must match exactly; primary mountains planned strip-wise see strictly
// more blockers (strip-one flats) and must be a subset of the one-shot plan.
func TestPlanStripDecompositionStable(t *testing.T) {
	whole := newTestPlanner(42).Plan(0, 2000)

	p := newTestPlanner(42)
	split := p.Plan(0, 1000)
	split = append(split, p.Plan(1000, 2000)...)

	byKind := func(records []PlacementRecord, kind FeatureKind) []PlacementRecord {
		var out []PlacementRecord
		for _, rec := range records {
			if rec.Kind == kind {
				out = append(out, rec)
			}
		}
		return out
	}

	for _, kind := range []FeatureKind{DistantMountain, Boat} {
		a := byKind(whole, kind)
		b := byKind(split, kind)
		if len(a) != len(b) {
			t.Fatalf("%s: strip decomposition changed count: %d vs %d", kind, len(a), len(b))
		}
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("%s record %d differs: %+v vs %+v", kind, i, a[i], b[i])
			}
		}
	}

	wholePrimary := make(map[PlacementRecord]bool)
	for _, rec := range byKind(whole, PrimaryMountain) {
		wholePrimary[rec] = true
	}
	for _, rec := range byKind(split, PrimaryMountain) {
		if !wholePrimary[rec] {
			t.Fatalf("strip-wise primary %+v absent from one-shot plan", rec)
		}
	}
}

func TestFeatureKindString(t *testing.T) {
	kinds := map[FeatureKind]string{
		PrimaryMountain: "primary-mountain",
		FlatMountain:    "flat-mountain",
		DistantMountain: "distant-mountain",
		Boat:            "boat",
		Water:           "water",
	}
	for kind, want := range kinds {
		if kind.String() != want {
			t.Fatalf("kind %d: got %q want %q", int(kind), kind.String(), want)
		}
	}
}
