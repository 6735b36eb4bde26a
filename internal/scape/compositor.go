package scape

import "strings"

// Composite selects every stored chunk whose x lies inside the buffered
// viewport window and concatenates their drawings in store order, which is
// already depth-sorted. It is a pure selection pass; recomposing on every
// viewport change is the accepted cost.
func Composite(store *Store, v Viewport) Content {
	lo := v.CursorX - v.Buffer
	hi := v.CursorX + v.Width + v.Buffer

	var b strings.Builder
	for _, c := range store.Chunks() {
		if c.X >= lo && c.X <= hi {
			b.WriteString(string(c.Drawing))
		}
	}
	return Content(b.String())
}
