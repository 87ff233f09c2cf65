package domain

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestRender_Empty(t *testing.T) {
	g := NewGrid()
	got := Render(g, Dimensions{Width: 3, Height: 2})

	want := "░░░\n░░░"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_FilledCells(t *testing.T) {
	g := NewGrid()
	g.Toggle(Cell{Row: 0, Col: 0})
	g.Toggle(Cell{Row: 1, Col: 1})

	got := Render(g, Dimensions{Width: 2, Height: 2})

	want := "█░\n░█"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_NoTrailingNewline(t *testing.T) {
	g := NewGrid()
	got := Render(g, Dimensions{Width: 4, Height: 3})

	if strings.HasSuffix(got, "\n") {
		t.Error("rendered output must not end with a newline")
	}
	if lines := strings.Count(got, "\n") + 1; lines != 3 {
		t.Errorf("line count: got %d, want 3", lines)
	}
}

func TestRender_ExactShape(t *testing.T) {
	// For any state, output is exactly height lines of exactly width glyphs.
	g := NewGrid()
	g.Toggle(Cell{Row: 0, Col: 25})
	g.Toggle(Cell{Row: 6, Col: 0})
	// Off-grid content must not leak into the rendering.
	g.Toggle(Cell{Row: 50, Col: 50})

	dims := Dimensions{Width: 26, Height: 7}
	out := Render(g, dims)

	lines := strings.Split(out, "\n")
	if len(lines) != dims.Height {
		t.Fatalf("lines: got %d, want %d", len(lines), dims.Height)
	}
	for i, line := range lines {
		if n := utf8.RuneCountInString(line); n != dims.Width {
			t.Errorf("line %d: got %d glyphs, want %d", i, n, dims.Width)
		}
	}
}

func TestRender_Idempotent(t *testing.T) {
	g := NewGrid()
	g.Toggle(Cell{Row: 1, Col: 2})
	dims := Dimensions{Width: 5, Height: 3}

	first := Render(g, dims)
	second := Render(g, dims)

	if first != second {
		t.Error("rendering twice without mutation must be byte-identical")
	}
	if g.Count() != 1 {
		t.Error("rendering must not mutate the grid")
	}
}
