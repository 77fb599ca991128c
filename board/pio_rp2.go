//go:build tinygo && (rp2040 || rp2350)

package board

import (
	"image/color"
	"machine"

	"github.com/harveysanders/ledcycle/led"
	pio "github.com/tinygo-org/pio/rp2-pio"
	"github.com/tinygo-org/pio/rp2-pio/piolib"
)

// WS2812 data rate.
const ws2812Baud = 800_000

// pioWriter clocks pixels out of a PIO state machine, leaving the CPU free
// during the transfer.
type pioWriter struct {
	ws *piolib.WS2812
}

func newPIOWriter(pin machine.Pin) (led.Writer, error) {
	sm, err := pio.PIO0.ClaimStateMachine()
	if err != nil {
		return nil, err
	}
	ws, err := piolib.NewWS2812(sm, pin, ws2812Baud)
	if err != nil {
		return nil, err
	}
	return &pioWriter{ws: ws}, nil
}

func (w *pioWriter) WriteColors(buf []color.RGBA) error {
	for _, c := range buf {
		w.ws.SetRGB(c.R, c.G, c.B)
	}
	return nil
}
