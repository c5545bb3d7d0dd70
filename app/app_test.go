package app

import (
	"strings"
	"testing"

	"nanocalc/hal"
)

type fakeLogger struct {
	lines []string
}

func (l *fakeLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *fakeLogger) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

type fakeLED struct {
	highs int
	lows  int
	on    bool
}

func (l *fakeLED) High() {
	l.highs++
	l.on = true
}

func (l *fakeLED) Low() {
	l.lows++
	l.on = false
}

type fakeFramebuffer struct {
	buf      []byte
	presents int
}

func (f *fakeFramebuffer) Width() int              { return 128 }
func (f *fakeFramebuffer) Height() int             { return 64 }
func (f *fakeFramebuffer) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *fakeFramebuffer) StrideBytes() int        { return 128 * 2 }
func (f *fakeFramebuffer) Buffer() []byte          { return f.buf }
func (f *fakeFramebuffer) Present() error {
	f.presents++
	return nil
}

func (f *fakeFramebuffer) ClearRGB(r, g, b uint8) {
	for i := range f.buf {
		f.buf[i] = 0
	}
	_ = r
	_ = g
	_ = b
}

type fakeKeypad struct {
	ch chan hal.Key
}

func (k *fakeKeypad) Keys() <-chan hal.Key { return k.ch }

type fakeTime struct {
	ch chan uint64
}

func (t *fakeTime) Ticks() <-chan uint64 { return t.ch }

type fakeDisplay struct{ fb *fakeFramebuffer }

func (d fakeDisplay) Framebuffer() hal.Framebuffer { return d.fb }

type fakeInput struct{ pad *fakeKeypad }

func (in fakeInput) Keypad() hal.Keypad { return in.pad }

type fakeHAL struct {
	logger *fakeLogger
	led    *fakeLED
	fb     *fakeFramebuffer
	pad    *fakeKeypad
	t      *fakeTime
}

func newFakeHAL() *fakeHAL {
	return &fakeHAL{
		logger: &fakeLogger{},
		led:    &fakeLED{},
		fb:     &fakeFramebuffer{buf: make([]byte, 128*64*2)},
		pad:    &fakeKeypad{ch: make(chan hal.Key, 64)},
		t:      &fakeTime{ch: make(chan uint64, 64)},
	}
}

func (h *fakeHAL) Logger() hal.Logger   { return h.logger }
func (h *fakeHAL) LED() hal.LED         { return h.led }
func (h *fakeHAL) Display() hal.Display { return fakeDisplay{fb: h.fb} }
func (h *fakeHAL) Input() hal.Input     { return fakeInput{pad: h.pad} }
func (h *fakeHAL) Time() hal.Time       { return h.t }

func runScript(t *testing.T, h *fakeHAL, step func() error, script string) {
	t.Helper()
	for _, r := range script {
		k, ok := hal.KeyForRune(r)
		if !ok {
			t.Fatalf("runScript: no key for %q", r)
		}
		h.pad.ch <- k
	}
	if err := step(); err != nil {
		t.Fatalf("step: %v", err)
	}
}

func TestKeyScriptLogsResult(t *testing.T) {
	h := newFakeHAL()
	step := NewWithConfig(h, Config{Splash: false})

	runScript(t, h, step, "12+3=")

	var found bool
	for _, line := range h.logger.lines {
		if line == "calc: 12 + 3 = 15" {
			found = true
		}
	}
	if !found {
		t.Fatalf("result log line missing; got %q", h.logger.lines)
	}
	if h.fb.presents == 0 {
		t.Fatal("no frame was presented")
	}
}

func TestEqualsWithoutExpressionLogsNothing(t *testing.T) {
	h := newFakeHAL()
	step := NewWithConfig(h, Config{Splash: false})

	runScript(t, h, step, "5=")

	for _, line := range h.logger.lines {
		if strings.HasPrefix(line, "calc:") {
			t.Fatalf("unexpected result log %q", line)
		}
	}
}

func TestLEDPulseOnKeypress(t *testing.T) {
	h := newFakeHAL()
	step := NewWithConfig(h, Config{Splash: false})

	runScript(t, h, step, "7")
	if h.led.highs != 1 || !h.led.on {
		t.Fatalf("LED not lit after keypress: highs = %d", h.led.highs)
	}

	// The pulse ends once enough ticks pass.
	h.t.ch <- 1
	h.t.ch <- ledPulseTicks + 1
	if err := step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if h.led.on {
		t.Fatal("LED still lit after pulse window")
	}
}

func TestSplashSkippedByKeypress(t *testing.T) {
	h := newFakeHAL()
	step := NewWithConfig(h, Config{Splash: true})

	// Start the animation.
	h.t.ch <- 1
	if err := step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	splashPresents := h.fb.presents
	if splashPresents == 0 {
		t.Fatal("splash drew nothing")
	}

	// The first key only dismisses the splash; it must not reach the engine.
	runScript(t, h, step, "5")
	runScript(t, h, step, "7+2=")

	var found bool
	for _, line := range h.logger.lines {
		if line == "calc: 7 + 2 = 9" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected 7+2=9 after splash skip; got %q", h.logger.lines)
	}
}

func TestSplashFinishesOnItsOwn(t *testing.T) {
	h := newFakeHAL()
	step := NewWithConfig(h, Config{Splash: true})

	for i := uint64(1); i <= splashEnd+10; i += 10 {
		h.t.ch <- i
		if err := step(); err != nil {
			t.Fatalf("step: %v", err)
		}
	}

	// Animation over: keys go straight to the engine.
	runScript(t, h, step, "8/0=")
	var found bool
	for _, line := range h.logger.lines {
		if line == "calc: 8 / 0 = 0" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected 8/0=0 after splash end; got %q", h.logger.lines)
	}
}
