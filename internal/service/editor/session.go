// Package editor implements the drawing controller: a per-client session
// that turns pointer interaction into grid mutations and keeps the
// canonical rendering current after every change.
//
// A Session is client-local state with no persistence until publish.
// It is never shared between users and is not safe for concurrent use.
package editor

import (
	"github.com/mmrmagno/valart/internal/domain"
)

// Mode selects how pointer events are interpreted. It is user-selectable
// configuration, not a state reached by events: switching modes mid-session
// has no special transition and takes effect on the next interaction.
type Mode string

const (
	// ModeClick toggles exactly one cell per pointer-down.
	ModeClick Mode = "Click"
	// ModeDrag toggles the pressed cell and every cell entered while the
	// pointer stays down.
	ModeDrag Mode = "Drag"
)

// Resolution is one of the two fixed canvas widths.
type Resolution string

const (
	ResolutionFHD       Resolution = "FHD"       // width 26
	ResolutionStretched Resolution = "Stretched" // width 27
)

// Height bounds of the canvas slider.
const (
	MinHeight = 1
	MaxHeight = 13
)

// Width returns the canvas width for the resolution.
func (r Resolution) Width() int {
	if r == ResolutionStretched {
		return 27
	}
	return 26
}

// Session is one editing session: grid content, current dimensions,
// interaction mode, the drag flag, and the cached canonical rendering.
// The rendering is recomputed after every mutation; there is no separate
// render trigger.
type Session struct {
	mode       Mode
	resolution Resolution
	dims       domain.Dimensions
	grid       *domain.Grid
	dragging   bool
	art        string
}

// NewSession creates a session with the default canvas: FHD (26 wide),
// height 7, Click mode, empty grid.
func NewSession() *Session {
	s := &Session{
		mode:       ModeClick,
		resolution: ResolutionFHD,
		dims:       domain.Dimensions{Width: ResolutionFHD.Width(), Height: 7},
		grid:       domain.NewGrid(),
	}
	s.rerender()
	return s
}

// Mode returns the current interaction mode.
func (s *Session) Mode() Mode { return s.mode }

// SetMode selects the interaction mode. An active drag session is not
// interrupted; the new mode applies from the next interaction.
func (s *Session) SetMode(m Mode) { s.mode = m }

// Dimensions returns the current canvas dimensions.
func (s *Session) Dimensions() domain.Dimensions { return s.dims }

// Dragging reports whether a drag session is active.
func (s *Session) Dragging() bool { return s.dragging }

// Filled reports whether the cell is filled, for UI display.
func (s *Session) Filled(c domain.Cell) bool { return s.grid.Filled(c) }

// Art returns the canonical rendering of the current grid.
func (s *Session) Art() string { return s.art }

// ArtFile returns the rendering as a plain-text file body, byte-identical
// to Art. The original UI downloads it as "ascii-art.txt".
func (s *Session) ArtFile() []byte { return []byte(s.art) }

// PointerDown handles a pointer press on a cell. In Click mode it toggles
// that single cell. In Drag mode it toggles the cell and enters the
// Dragging state.
func (s *Session) PointerDown(c domain.Cell) {
	if s.mode == ModeDrag {
		s.dragging = true
	}
	s.toggle(c)
}

// PointerEnter handles the pointer moving onto a cell. While Dragging in
// Drag mode, every entry is one toggle: passing over the same cell twice
// toggles it twice and restores its prior state. That double-toggle
// behavior is intentional and must be preserved.
func (s *Session) PointerEnter(c domain.Cell) {
	if s.mode == ModeDrag && s.dragging {
		s.toggle(c)
	}
}

// PointerUp ends an active drag session.
func (s *Session) PointerUp() { s.dragging = false }

// PointerLeave handles the pointer leaving the canvas, which also ends an
// active drag session.
func (s *Session) PointerLeave() { s.dragging = false }

// SetResolution switches between the two fixed widths, clipping or
// preserving content per the resize policy.
func (s *Session) SetResolution(r Resolution) {
	s.resolution = r
	s.resize(domain.Dimensions{Width: r.Width(), Height: s.dims.Height})
}

// SetHeight sets the canvas height. Values outside the slider range are
// clamped rather than rejected, matching the range input in the UI.
func (s *Session) SetHeight(h int) {
	if h < MinHeight {
		h = MinHeight
	}
	if h > MaxHeight {
		h = MaxHeight
	}
	s.resize(domain.Dimensions{Width: s.dims.Width, Height: h})
}

// Reset clears the grid; the rendering becomes all-empty lines.
func (s *Session) Reset() {
	s.grid.Clear()
	s.rerender()
}

func (s *Session) toggle(c domain.Cell) {
	s.grid.Toggle(c)
	s.rerender()
}

func (s *Session) resize(dims domain.Dimensions) {
	s.dims = dims
	s.grid.Resize(dims)
	s.rerender()
}

func (s *Session) rerender() {
	s.art = domain.Render(s.grid, s.dims)
}
