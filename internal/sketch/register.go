package sketch

import (
	"scrollscape/internal/plan"
	"scrollscape/internal/scape"
)

// DefaultRegistry returns a registry with every built-in generator wired.
func DefaultRegistry() *scape.Registry {
	r := scape.NewRegistry()
	r.Register(plan.PrimaryMountain, Primary)
	r.Register(plan.FlatMountain, Flat)
	r.Register(plan.DistantMountain, Distant)
	r.Register(plan.Boat, Boat)
	r.Register(plan.Water, Water)
	return r
}
