package domain

import "strings"

// The two fixed glyphs of the canonical rendering.
const (
	FilledGlyph = '█' // U+2588 FULL BLOCK
	EmptyGlyph  = '░' // U+2591 LIGHT SHADE
)

// Render serializes the grid into its canonical text form: exactly
// dims.Height lines of exactly dims.Width glyphs, joined with a single
// '\n' and no trailing newline. Deterministic and idempotent; the grid
// is never mutated. The same string is used for the on-screen preview,
// the stored record, and the downloadable artifact.
func Render(g *Grid, dims Dimensions) string {
	var b strings.Builder
	// Both glyphs are 3 bytes in UTF-8.
	b.Grow(dims.Height*(dims.Width*3+1) - 1)

	for row := 0; row < dims.Height; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < dims.Width; col++ {
			if g.Filled(Cell{Row: row, Col: col}) {
				b.WriteRune(FilledGlyph)
			} else {
				b.WriteRune(EmptyGlyph)
			}
		}
	}

	return b.String()
}
