//go:build tinygo && baremetal

package hal

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ssd1306"
)

const (
	oledWidth  = 128
	oledHeight = 64
	oledAddr   = 0x3C
)

// Pixels at or above this luminance are lit on the monochrome panel.
const oledLumaThreshold = 0x60

// oledFramebuffer keeps the shared RGB565 buffer and presents it to the
// SSD1306 by thresholding each pixel to on/off.
type oledFramebuffer struct {
	w      int
	h      int
	stride int
	buf    []byte

	dev ssd1306.Device
}

func newOLEDFramebuffer() (*oledFramebuffer, error) {
	if err := machine.I2C0.Configure(machine.I2CConfig{
		SDA:       machine.GP4,
		SCL:       machine.GP5,
		Frequency: 400_000,
	}); err != nil {
		return nil, err
	}

	dev := ssd1306.NewI2C(machine.I2C0)
	dev.Configure(ssd1306.Config{
		Width:    oledWidth,
		Height:   oledHeight,
		Address:  oledAddr,
		VccState: ssd1306.SWITCHCAPVCC,
	})
	dev.ClearDisplay()

	f := &oledFramebuffer{
		w:      oledWidth,
		h:      oledHeight,
		stride: oledWidth * 2,
		buf:    make([]byte, oledWidth*oledHeight*2),
		dev:    dev,
	}
	return f, nil
}

func (f *oledFramebuffer) Width() int          { return f.w }
func (f *oledFramebuffer) Height() int         { return f.h }
func (f *oledFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *oledFramebuffer) StrideBytes() int    { return f.stride }
func (f *oledFramebuffer) Buffer() []byte      { return f.buf }

func (f *oledFramebuffer) ClearRGB(r, g, b uint8) {
	pixel := rgb565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

func (f *oledFramebuffer) Present() error {
	f.dev.ClearBuffer()
	white := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	for y := 0; y < f.h; y++ {
		row := y * f.stride
		for x := 0; x < f.w; x++ {
			off := row + x*2
			pixel := uint16(f.buf[off]) | uint16(f.buf[off+1])<<8
			if luma565(pixel) >= oledLumaThreshold {
				f.dev.SetPixel(int16(x), int16(y), white)
			}
		}
	}
	return f.dev.Display()
}
