package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"

	"scrollscape/internal/config"
	"scrollscape/internal/plan"
	"scrollscape/internal/scape"
	"scrollscape/internal/sketch"
)

func main() {
	var (
		cfgPath string
		seed    int64
		scroll  float64
		out     string
		stats   bool
	)
	flag.StringVar(&cfgPath, "config", "", "path to configuration file")
	flag.Int64Var(&seed, "seed", 0, "world seed, overrides the configured seed when non-zero")
	flag.Float64Var(&scroll, "scroll", 0, "distance to scroll before rendering, negative scrolls left")
	flag.StringVar(&out, "out", "landscape.svg", "output SVG file")
	flag.BoolVar(&stats, "stats", false, "print store and coverage counters")
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if seed != 0 {
		cfg.Seed = seed
	}

	doc, loader, err := render(cfg, scroll)
	if err != nil {
		log.Fatalf("render landscape: %v", err)
	}

	if err := os.WriteFile(out, []byte(doc), 0o644); err != nil {
		log.Fatalf("write %s: %v", out, err)
	}

	if stats {
		fmt.Printf("chunks: %d\n", loader.Store().Len())
		fmt.Printf("generator calls: %d\n", loader.GeneratorCalls())
		if xmin, xmax, ok := loader.Store().Bounds(); ok {
			fmt.Printf("planned range: [%.0f, %.0f)\n", xmin, xmax)
		}
	}
}

// render scrolls the viewport from zero to the target distance, keeping
// coverage warm at every step, then composites the final frame.
func render(cfg *config.Config, scroll float64) (string, *scape.Loader, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	planner := plan.NewPlanner(cfg.Seed, cfg.Planner, cfg.Terrain.NoiseParams())
	loader := scape.NewLoader(cfg.Seed, planner, sketch.DefaultRegistry(), cfg.Features, scape.LoaderOptions{
		Workers: cfg.Loader.Workers,
		Logger:  logger,
	})

	view := scape.Viewport{
		Width:  cfg.Viewport.Width,
		Height: cfg.Viewport.Height,
		Buffer: cfg.Viewport.Buffer,
	}

	step := cfg.Viewport.ScrollStep
	if scroll < 0 {
		step = -step
	}

	lastCursor := math.NaN()
	for cursor := 0.0; ; {
		view.CursorX = cursor
		// Coverage is re-checked only when the cursor moved, unless the
		// always-regenerate tunable forces a pass every frame.
		if cfg.Viewport.AlwaysRegenerate || cursor != lastCursor {
			if err := loader.EnsureCoverage(view); err != nil {
				return "", nil, err
			}
			lastCursor = cursor
		}
		if math.Abs(scroll-cursor) < 1e-9 {
			break
		}
		cursor += step
		if (step > 0 && cursor > scroll) || (step < 0 && cursor < scroll) {
			cursor = scroll
		}
	}

	content := scape.Composite(loader.Store(), view)
	return document(view, content), loader, nil
}

// document wraps composited chunk markup in a standalone SVG root with a
// paper-colored background.
func document(v scape.Viewport, content scape.Content) string {
	return fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="%.1f 0 %.0f %.0f">`+
			`<rect x="%.1f" y="0" width="%.0f" height="%.0f" fill="#f3ecdb"/>%s</svg>`,
		v.Width, v.Height, v.CursorX, v.Width, v.Height,
		v.CursorX, v.Width, v.Height, content)
}
