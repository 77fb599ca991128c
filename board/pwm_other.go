//go:build tinygo && !rp2040 && !rp2350

package board

import (
	"errors"
	"machine"

	"github.com/harveysanders/ledcycle/led"
)

func newDimmer(machine.Pin) (*led.Dimmer, error) {
	return nil, errors.New("pwm output needs an rp2040 or rp2350")
}
