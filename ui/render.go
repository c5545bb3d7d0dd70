// Package ui draws the calculator state onto the framebuffer: the pending
// expression small on top, the operand being edited large and
// right-aligned below.
package ui

import (
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
	"tinygo.org/x/tinyfont/proggy"

	"nanocalc/calc"
	"nanocalc/hal"
)

var white = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

const (
	topBaseline  = 8
	mainBaseline = 42
	sideMargin   = 2
)

// Renderer is a pure presentation layer over the engine state; Draw may be
// called redundantly without harm.
type Renderer struct {
	fb    hal.Framebuffer
	small tinyfont.Fonter
	large tinyfont.Fonter
}

func New(fb hal.Framebuffer) *Renderer {
	return &Renderer{
		fb:    fb,
		small: &proggy.TinySZ8pt7b,
		large: &freemono.Bold9pt7b,
	}
}

// Draw renders one frame of the two-line view and presents it.
func (r *Renderer) Draw(pending string, op calc.Op, current string) {
	if r.fb == nil || r.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	r.fb.ClearRGB(0, 0, 0)
	d := NewDisplayer(r.fb)

	top := pending
	if op != calc.OpNone {
		top += " " + op.Glyph()
	}
	tinyfont.WriteLine(d, r.small, sideMargin, topBaseline, top, white)

	x := alignRight(r.large, current, r.fb.Width(), sideMargin)
	tinyfont.WriteLine(d, r.large, int16(x), mainBaseline, current, white)

	_ = r.fb.Present()
}

// alignRight returns the x origin that right-aligns s within width,
// clamped to 0 when the text is wider than the screen.
func alignRight(f tinyfont.Fonter, s string, width, margin int) int {
	_, w := tinyfont.LineWidth(f, s)
	x := width - int(w) - margin
	if x < 0 {
		x = 0
	}
	return x
}
