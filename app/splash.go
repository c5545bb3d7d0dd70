package app

import (
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"

	"nanocalc/hal"
	"nanocalc/ui"
)

const splashTitle = "NANOCALC"

// Boot animation timeline in ticks (~ms): a growing circle, the title
// typed out, then two inversion flashes.
const (
	splashCircleEnd = 600
	splashTypeEnd   = 1100
	splashEnd       = 1500
)

const splashMaxRadius = 30

type splash struct {
	fb    hal.Framebuffer
	start uint64
	began bool
	last  int
}

func newSplash(fb hal.Framebuffer) *splash {
	return &splash{fb: fb, last: -1}
}

// stepTick advances the animation and reports true once it has finished.
// Frames are keyed to the tick stream, so a slow host frame just drops
// intermediate frames instead of stalling.
func (s *splash) stepTick(now uint64) bool {
	if s.fb == nil {
		return true
	}
	if !s.began {
		s.began = true
		s.start = now
	}
	elapsed := int(now - s.start)
	if elapsed >= splashEnd {
		return true
	}

	frame, draw := s.frameFor(elapsed)
	if frame == s.last {
		return false
	}
	s.last = frame
	draw()
	_ = s.fb.Present()
	return false
}

func (s *splash) frameFor(elapsed int) (int, func()) {
	switch {
	case elapsed < splashCircleEnd:
		r := elapsed / 15
		if r > splashMaxRadius {
			r = splashMaxRadius
		}
		return r, func() { s.drawCircle(r) }
	case elapsed < splashTypeEnd:
		n := 1 + (elapsed-splashCircleEnd)/60
		if n > len(splashTitle) {
			n = len(splashTitle)
		}
		return 100 + n, func() { s.drawTitle(n, false) }
	default:
		phase := (elapsed - splashTypeEnd) / 100
		return 200 + phase, func() { s.drawTitle(len(splashTitle), phase%2 == 1) }
	}
}

func (s *splash) drawTitle(n int, inverted bool) {
	fg := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	if inverted {
		s.fb.ClearRGB(0xFF, 0xFF, 0xFF)
		fg = color.RGBA{A: 0xFF}
	} else {
		s.fb.ClearRGB(0, 0, 0)
	}

	d := ui.NewDisplayer(s.fb)
	font := &freemono.Bold9pt7b
	_, w := tinyfont.LineWidth(font, splashTitle)
	x := (s.fb.Width() - int(w)) / 2
	if x < 0 {
		x = 0
	}
	tinyfont.WriteLine(d, font, int16(x), 38, splashTitle[:n], fg)
}

func (s *splash) drawCircle(r int) {
	s.fb.ClearRGB(0, 0, 0)
	d := ui.NewDisplayer(s.fb)
	white := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

	cx := s.fb.Width() / 2
	cy := s.fb.Height() / 2

	// Midpoint circle outline.
	x, y, err := r, 0, 1-r
	for x >= y {
		plot8(d, cx, cy, x, y, white)
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
}

func plot8(d *ui.Displayer, cx, cy, x, y int, c color.RGBA) {
	d.SetPixel(int16(cx+x), int16(cy+y), c)
	d.SetPixel(int16(cx+y), int16(cy+x), c)
	d.SetPixel(int16(cx-y), int16(cy+x), c)
	d.SetPixel(int16(cx-x), int16(cy+y), c)
	d.SetPixel(int16(cx-x), int16(cy-y), c)
	d.SetPixel(int16(cx-y), int16(cy-x), c)
	d.SetPixel(int16(cx+y), int16(cy-x), c)
	d.SetPixel(int16(cx+x), int16(cy-y), c)
}
