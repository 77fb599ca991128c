package led

import "image/color"

// PWM is a PWM peripheral. TinyGo's machine.PWMx groups satisfy it.
type PWM interface {
	Set(channel uint8, value uint32)
	Top() uint32
}

// Dimmer is a single-color LED on a PWM channel. It cannot show hue, so it
// shows the brightness of the strongest channel instead.
type Dimmer struct {
	pwm PWM
	ch  uint8
}

// NewDimmer returns an Output on channel ch of pwm.
func NewDimmer(pwm PWM, ch uint8) *Dimmer {
	return &Dimmer{pwm: pwm, ch: ch}
}

// Show sets the duty cycle from the brightest channel of c, or to 0 when off.
func (d *Dimmer) Show(on bool, c color.RGBA) error {
	if !on {
		d.pwm.Set(d.ch, 0)
		return nil
	}
	d.pwm.Set(d.ch, d.Duty(c))
	return nil
}

// Duty returns the duty cycle Show uses for c.
func (d *Dimmer) Duty(c color.RGBA) uint32 {
	v := max(c.R, c.G, c.B)
	return uint32(uint64(d.pwm.Top()) * uint64(v) / 0xFF)
}
