// Package app wires the HAL, the calculator engine and the renderer into
// the poll -> handle -> render loop. No work happens between keypresses
// apart from ticking the splash animation and the LED pulse.
package app

import (
	"fmt"

	"nanocalc/calc"
	"nanocalc/hal"
	"nanocalc/internal/buildinfo"
	"nanocalc/ui"
)

// Config controls optional startup behavior.
type Config struct {
	Splash bool
}

// Ticks (~ms) the LED stays lit after an accepted keypress.
const ledPulseTicks = 80

type system struct {
	h      hal.HAL
	engine *calc.Engine
	r      *ui.Renderer

	keys  <-chan hal.Key
	ticks <-chan uint64

	splash *splash
	now    uint64
	ledOff uint64
}

// New initializes the calculator with the default config and returns the
// per-frame step function used by the host runners.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{Splash: true})
}

func NewWithConfig(h hal.HAL, cfg Config) func() error {
	s := newSystem(h, cfg)
	return s.step
}

// Run starts the calculator and blocks forever (TinyGo entrypoint).
func Run(h hal.HAL) {
	s := newSystem(h, Config{Splash: true})
	for {
		select {
		case k := <-s.keys:
			s.handleKey(k)
		case now := <-s.ticks:
			s.tick(now)
		}
	}
}

func newSystem(h hal.HAL, cfg Config) *system {
	s := &system{h: h, engine: calc.New()}

	if d := h.Display(); d != nil {
		fb := d.Framebuffer()
		s.r = ui.New(fb)
		if cfg.Splash {
			s.splash = newSplash(fb)
		}
	}
	if in := h.Input(); in != nil {
		if pad := in.Keypad(); pad != nil {
			s.keys = pad.Keys()
		}
	}
	if t := h.Time(); t != nil {
		s.ticks = t.Ticks()
	}

	if l := h.Logger(); l != nil {
		l.WriteLineString("nanocalc " + buildinfo.Short())
	}

	if s.splash == nil {
		s.render()
	}
	return s
}

// step runs one host frame: consume pending ticks, then pending keys.
// Receives never block; an empty poll is a no-op frame.
func (s *system) step() error {
	for {
		select {
		case now := <-s.ticks:
			s.tick(now)
			continue
		default:
		}
		break
	}
	for {
		select {
		case k := <-s.keys:
			s.handleKey(k)
			continue
		default:
		}
		break
	}
	return nil
}

func (s *system) tick(now uint64) {
	s.now = now

	if s.splash != nil && s.splash.stepTick(now) {
		s.splash = nil
		s.render()
	}

	if s.ledOff != 0 && now >= s.ledOff {
		s.ledOff = 0
		if led := s.h.LED(); led != nil {
			led.Low()
		}
	}
}

func (s *system) handleKey(k hal.Key) {
	if k == hal.KeyNone {
		return
	}
	if s.splash != nil {
		// Any key skips the boot animation.
		s.splash = nil
		s.render()
		return
	}

	pending, op, current := s.engine.Snapshot()
	s.engine.HandleKey(k)
	s.blink()

	if k == hal.KeyEquals && pending != "" && current != "" && op != calc.OpNone {
		if l := s.h.Logger(); l != nil {
			_, _, result := s.engine.Snapshot()
			l.WriteLineString(fmt.Sprintf("calc: %s %s %s = %s", pending, op.Glyph(), current, result))
		}
	}

	s.render()
}

func (s *system) blink() {
	led := s.h.LED()
	if led == nil {
		return
	}
	led.High()
	s.ledOff = s.now + ledPulseTicks
}

func (s *system) render() {
	if s.r == nil || s.splash != nil {
		return
	}
	pending, op, current := s.engine.Snapshot()
	s.r.Draw(pending, op, current)
}
