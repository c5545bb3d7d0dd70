//go:build tinygo && baremetal

package hal

import (
	"machine"
)

type tinyGoHAL struct {
	logger *uartLogger
	led    *pinLED
	fb     Framebuffer
	pad    Keypad
	t      *tinyGoTime
}

// New returns the HAL for a Pico-class board: SSD1306 OLED on I2C0
// (GP4/GP5), 4x4 matrix pad on GP6..GP9 (rows) and GP10..GP13
// (columns).
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})

	ledPin := machine.LED
	ledPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	led := &pinLED{pin: ledPin}

	var fb Framebuffer
	if d, err := newOLEDFramebuffer(); err == nil {
		fb = d
	} else {
		fb = &stubFramebuffer{w: oledWidth, h: oledHeight, format: PixelFormatRGB565}
	}

	var pad Keypad
	if p, err := newMatrixKeypad(); err == nil {
		pad = p
	} else {
		pad = &stubKeypad{}
	}

	return &tinyGoHAL{
		logger: &uartLogger{uart: uart},
		led:    led,
		fb:     fb,
		pad:    pad,
		t:      newTinyGoTime(),
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) LED() LED         { return h.led }
func (h *tinyGoHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *tinyGoHAL) Input() Input     { return tinyGoInput{pad: h.pad} }
func (h *tinyGoHAL) Time() Time       { return h.t }
