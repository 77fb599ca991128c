//go:build tinygo && (rp2040 || rp2350)

package board

import (
	"errors"
	"machine"
	"strconv"
	"time"

	"github.com/harveysanders/ledcycle/led"
)

// 500hz carrier, fast enough that the LED does not visibly flicker.
const pwmPeriod = uint64(time.Second) / 500

type pwmGroup interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Set(channel uint8, value uint32)
	Top() uint32
}

// https://tinygo.org/docs/reference/microcontrollers/pico2-w/
var pwmGroups = [...]pwmGroup{
	machine.PWM0, machine.PWM1, machine.PWM2, machine.PWM3,
	machine.PWM4, machine.PWM5, machine.PWM6, machine.PWM7,
}

func newDimmer(pin machine.Pin) (*led.Dimmer, error) {
	slice, err := machine.PWMPeripheral(pin)
	if err != nil {
		return nil, err
	}
	if int(slice) >= len(pwmGroups) {
		return nil, errors.New("no PWM slice " + strconv.Itoa(int(slice)))
	}
	pwm := pwmGroups[slice]
	err = pwm.Configure(machine.PWMConfig{Period: pwmPeriod})
	if err != nil {
		return nil, errors.New("could not configure PWM:" + err.Error())
	}
	ch, err := pwm.Channel(pin)
	if err != nil {
		return nil, errors.New("could not get channel for pin:" + err.Error())
	}
	d := led.NewDimmer(pwm, ch)
	if err := d.Show(false, led.RGB(0, 0, 0)); err != nil {
		return nil, err
	}
	return d, nil
}
