package led

import (
	"errors"
	"image/color"
)

// ErrPixelRange is returned by Pixels.SetPixel for an index outside the strip.
var ErrPixelRange = errors.New("pixel index out of range")

// Writer sends a full frame of colors to a strip.
// tinygo.org/x/drivers/ws2812.Device satisfies it.
type Writer interface {
	WriteColors(buf []color.RGBA) error
}

// Pixels is a Strip that buffers colors and flushes the whole frame through
// a Writer.
type Pixels struct {
	w   Writer
	buf []color.RGBA
}

// NewPixels returns a strip of n pixels, all off.
func NewPixels(w Writer, n int) *Pixels {
	return &Pixels{
		w:   w,
		buf: make([]color.RGBA, n),
	}
}

// Len returns the number of pixels.
func (p *Pixels) Len() int { return len(p.buf) }

// SetPixel stores c for pixel i without sending it.
func (p *Pixels) SetPixel(i int, c color.RGBA) error {
	if i < 0 || i >= len(p.buf) {
		return ErrPixelRange
	}
	p.buf[i] = c
	return nil
}

// Refresh writes the buffered frame to the strip.
func (p *Pixels) Refresh() error {
	return p.w.WriteColors(p.buf)
}

// Clear blanks the buffer and writes the dark frame.
func (p *Pixels) Clear() error {
	for i := range p.buf {
		p.buf[i] = color.RGBA{}
	}
	return p.w.WriteColors(p.buf)
}
