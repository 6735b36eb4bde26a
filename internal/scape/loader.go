package scape

import (
	"fmt"
	"log/slog"
	"math"
	"sync"
	"sync/atomic"

	"go.uber.org/multierr"

	"scrollscape/internal/plan"
	"scrollscape/internal/rng"
)

const (
	// waterDepthOffset pushes a companion water chunk far enough back that it
	// always composites before every other feature.
	waterDepthOffset = -10000
	// sentinelCoord replaces non-finite coordinates coming back from a
	// generator so a single bad value cannot corrupt the depth order.
	sentinelCoord = 0
)

// StripPlanner produces placement records for a horizontal strip.
// *plan.Planner is the production implementation.
type StripPlanner interface {
	Plan(xmin, xmax float64) []plan.PlacementRecord
}

// LoaderOptions tunes the loader. Zero values select the synchronous
// defaults.
type LoaderOptions struct {
	// Workers bounds the number of concurrent generator invocations per
	// extension strip. 0 or 1 keeps generation synchronous.
	Workers int
	Logger  *slog.Logger
}

// Loader owns the chunk store and keeps its planned range wide enough to
// cover the viewport plus buffer. It is the store's single writer.
type Loader struct {
	seed     int64
	planner  StripPlanner
	registry *Registry
	toggles  Toggles
	store    *Store
	workers  int
	log      *slog.Logger

	calls atomic.Int64
}

func NewLoader(seed int64, planner StripPlanner, registry *Registry, toggles Toggles, opts LoaderOptions) *Loader {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Loader{
		seed:     seed,
		planner:  planner,
		registry: registry,
		toggles:  toggles,
		store:    NewStore(),
		workers:  opts.Workers,
		log:      opts.Logger,
	}
}

// Store exposes the chunk store for read-only consumers such as the
// compositor.
func (l *Loader) Store() *Store {
	return l.store
}

// GeneratorCalls reports how many generator invocations the loader has made.
func (l *Loader) GeneratorCalls() int64 {
	return l.calls.Load()
}

// EnsureCoverage extends the planned range until it covers the viewport plus
// its buffer on both sides, one buffer-width strip at a time. Calling it
// again with an already-sufficient range performs no work. A generator
// failure skips that single chunk; the pass always completes, and the
// skipped placements are reported as one aggregated error.
func (l *Loader) EnsureCoverage(v Viewport) error {
	step := v.Buffer
	if step <= 0 {
		step = math.Max(v.Width, 1)
	}

	l.store.initBounds(v.CursorX)

	var errs error
	for {
		_, xmax, _ := l.store.Bounds()
		if v.CursorX+v.Width <= xmax-v.Buffer {
			break
		}
		errs = multierr.Append(errs, l.extend(xmax, xmax+step))
		l.store.extendRight(xmax + step)
	}
	for {
		xmin, _, _ := l.store.Bounds()
		if v.CursorX >= xmin+v.Buffer {
			break
		}
		errs = multierr.Append(errs, l.extend(xmin-step, xmin))
		l.store.extendLeft(xmin - step)
	}
	return errs
}

// extend plans the strip [lo, hi) and inserts every realized chunk while
// preserving the depth-order invariant.
func (l *Loader) extend(lo, hi float64) error {
	records := l.planner.Plan(lo, hi)
	chunks, err := l.realize(records)
	for _, c := range chunks {
		l.store.Insert(c)
	}
	return err
}

// realize turns placement records into chunks, optionally on a bounded
// worker pool. Results are collected in record order before insertion so the
// concurrent path produces byte-identical stores.
func (l *Loader) realize(records []plan.PlacementRecord) ([]Chunk, error) {
	if len(records) == 0 {
		return nil, nil
	}

	if l.workers <= 1 {
		var errs error
		var out []Chunk
		for _, rec := range records {
			chunks, err := l.generateOne(rec)
			errs = multierr.Append(errs, err)
			out = append(out, chunks...)
		}
		return out, errs
	}

	type result struct {
		chunks []Chunk
		err    error
	}
	results := make([]result, len(records))
	tasks := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < l.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range tasks {
				chunks, err := l.generateOne(records[i])
				results[i] = result{chunks: chunks, err: err}
			}
		}()
	}
	for i := range records {
		tasks <- i
	}
	close(tasks)
	wg.Wait()

	var errs error
	var out []Chunk
	for _, r := range results {
		errs = multierr.Append(errs, r.err)
		out = append(out, r.chunks...)
	}
	return out, errs
}

// generateOne dispatches a single placement to its registered generator.
// Each call derives its own seed from the placement coordinates, so it is
// safe to run concurrently with any other placement.
func (l *Loader) generateOne(rec plan.PlacementRecord) ([]Chunk, error) {
	if !l.toggles.Enabled(rec.Kind) {
		return nil, nil
	}
	fn, ok := l.registry.Lookup(rec.Kind)
	if !ok {
		l.log.Warn("no generator registered, skipping placement",
			"kind", rec.Kind.String(), "x", rec.X, "y", rec.Y)
		return nil, nil
	}

	seed := rng.SubSeed(l.seed, rec.X, rec.Y)
	l.calls.Add(1)
	piece, err := fn(rec, seed, l.toggles)
	if err != nil {
		l.log.Warn("content generation failed, skipping chunk",
			"kind", rec.Kind.String(), "x", rec.X, "y", rec.Y, "error", err)
		return nil, fmt.Errorf("generate %s at (%.1f, %.1f): %w", rec.Kind, rec.X, rec.Y, err)
	}

	chunks := []Chunk{{
		Kind:    rec.Kind,
		X:       l.sanitize(piece.X, rec, "x"),
		Y:       l.sanitize(piece.Y, rec, "y"),
		Drawing: piece.Drawing,
	}}

	if rec.Kind == plan.PrimaryMountain && l.toggles.Water {
		water, werr := l.generateWater(rec)
		if werr != nil {
			return chunks, werr
		}
		if water != nil {
			chunks = append(chunks, *water)
		}
	}
	return chunks, nil
}

// generateWater spawns the companion water chunk behind a primary mountain.
func (l *Loader) generateWater(rec plan.PlacementRecord) (*Chunk, error) {
	fn, ok := l.registry.Lookup(plan.Water)
	if !ok {
		return nil, nil
	}

	wrec := rec
	wrec.Kind = plan.Water
	seed := rng.SubSeed(l.seed, rec.X, rec.Y+waterDepthOffset)
	l.calls.Add(1)
	piece, err := fn(wrec, seed, l.toggles)
	if err != nil {
		l.log.Warn("water generation failed, skipping companion chunk",
			"x", rec.X, "y", rec.Y, "error", err)
		return nil, fmt.Errorf("generate water at (%.1f, %.1f): %w", rec.X, rec.Y, err)
	}

	return &Chunk{
		Kind:    plan.Water,
		X:       l.sanitize(piece.X, wrec, "x"),
		Y:       l.sanitize(piece.Y, wrec, "y") + waterDepthOffset,
		Drawing: piece.Drawing,
	}, nil
}

// sanitize clamps non-finite generator output to the sentinel so it cannot
// poison the store ordering. The warning records the defect.
func (l *Loader) sanitize(v float64, rec plan.PlacementRecord, axis string) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		l.log.Warn("non-finite generator output sanitized",
			"kind", rec.Kind.String(), "axis", axis, "x", rec.X, "y", rec.Y, "value", v)
		return sentinelCoord
	}
	return v
}
