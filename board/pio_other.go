//go:build tinygo && !rp2040 && !rp2350

package board

import (
	"errors"
	"machine"

	"github.com/harveysanders/ledcycle/led"
)

func newPIOWriter(machine.Pin) (led.Writer, error) {
	return nil, errors.New("pio backend needs an rp2040 or rp2350")
}
