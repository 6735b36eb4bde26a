package sketch

import (
	"fmt"
	"strings"
)

type point struct {
	X, Y float64
}

// fillPath renders pts as a closed filled path.
func fillPath(pts []point, color string, opacity float64) string {
	var b strings.Builder
	b.WriteString(`<path d="`)
	writePoints(&b, pts)
	fmt.Fprintf(&b, `Z" fill="%s" fill-opacity="%.2f"/>`, color, opacity)
	return b.String()
}

// strokePath renders pts as an open stroked polyline.
func strokePath(pts []point, color string, width float64) string {
	var b strings.Builder
	b.WriteString(`<path d="`)
	writePoints(&b, pts)
	fmt.Fprintf(&b, `" fill="none" stroke="%s" stroke-width="%.2f"/>`, color, width)
	return b.String()
}

func writePoints(b *strings.Builder, pts []point) {
	for i, p := range pts {
		if i == 0 {
			fmt.Fprintf(b, "M %.1f %.1f ", p.X, p.Y)
		} else {
			fmt.Fprintf(b, "L %.1f %.1f ", p.X, p.Y)
		}
	}
}

// group wraps children in a translated <g> element.
func group(x, y float64, children []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<g transform="translate(%.1f,%.1f)">`, x, y)
	for _, c := range children {
		b.WriteString(c)
	}
	b.WriteString("</g>")
	return b.String()
}
