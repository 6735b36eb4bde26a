package plan

import "fmt"

// FeatureKind discriminates the landscape features the planner can place and
// the loader can dispatch on. The set is closed; adding a kind is a
// compile-time change (String and the toggle switch must be extended).
type FeatureKind int

const (
	PrimaryMountain FeatureKind = iota
	FlatMountain
	DistantMountain
	Boat
	// Water is never emitted by the planner; it tags the companion chunk the
	// loader spawns behind every primary mountain.
	Water
)

func (k FeatureKind) String() string {
	switch k {
	case PrimaryMountain:
		return "primary-mountain"
	case FlatMountain:
		return "flat-mountain"
	case DistantMountain:
		return "distant-mountain"
	case Boat:
		return "boat"
	case Water:
		return "water"
	default:
		return fmt.Sprintf("feature(%d)", int(k))
	}
}

// PlacementRecord is one planned feature: where it goes and how strongly the
// suitability field voted for it. Immutable once emitted.
type PlacementRecord struct {
	Kind      FeatureKind
	X         float64
	Y         float64
	Intensity float64
}
