// Package sketch holds the built-in silhouette generators: stateless
// parametric functions that turn a placement into drawable SVG markup. The
// chunk-streaming core only ever sees them through the generator registry.
package sketch

import (
	"fmt"

	hsluv "github.com/hsluv/hsluv-go"
)

// Ink hue and chroma are fixed; silhouettes differ only in lightness, which
// is what gives the washes their layered depth.
const (
	inkHue    = 250.0
	inkChroma = 8.0
)

// inkTone returns a wash color at the given lightness in [0, 100].
func inkTone(lightness float64) string {
	if lightness < 0 {
		lightness = 0
	}
	if lightness > 100 {
		lightness = 100
	}
	r, g, b := hsluv.HsluvToRGB(inkHue, inkChroma, lightness)
	return fmt.Sprintf("#%02x%02x%02x", channel(r), channel(g), channel(b))
}

func channel(v float64) int {
	c := int(v*255 + 0.5)
	if c < 0 {
		return 0
	}
	if c > 255 {
		return 255
	}
	return c
}
