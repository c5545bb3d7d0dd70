package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// LED is a minimal output pin abstraction.
type LED interface {
	High()
	Low()
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
//
// The OLED on the device is monochrome; Present maps pixels to on/off by
// luminance, so anything drawn bright shows up there unchanged.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// Keypad yields debounced, single-shot key symbols: one Key per key-down
// transition, no repeat while held. A receive that would block means "no
// key pressed since the last poll".
type Keypad interface {
	Keys() <-chan Key
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keypad() Keypad
}

// Time provides a base tick stream.
//
// The tick duration is platform-defined, roughly one millisecond.
type Time interface {
	Ticks() <-chan uint64
}

// HAL provides the only contact point between the calculator and the
// outside world.
type HAL interface {
	Logger() Logger
	LED() LED
	Display() Display
	Input() Input
	Time() Time
}
