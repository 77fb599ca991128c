package led

import "image/color"

// Output is the LED peripheral the main loop writes to each tick.
type Output interface {
	// Show turns the LED on with color c, or off. Outputs that cannot
	// show color ignore c.
	Show(on bool, c color.RGBA) error
}

// Pin is a digital output. machine.Pin satisfies it.
type Pin interface {
	Set(high bool)
}

// Strip is an addressable LED strip.
type Strip interface {
	// SetPixel stores c for pixel i. Nothing is sent until Refresh.
	SetPixel(i int, c color.RGBA) error
	// Refresh sends the stored pixels to the strip.
	Refresh() error
	// Clear turns every pixel off.
	Clear() error
}

// Digital is a GPIO LED. It is lit while the pin is high.
type Digital struct {
	pin Pin
}

// NewDigital returns an Output driving pin.
func NewDigital(pin Pin) *Digital {
	return &Digital{pin: pin}
}

// Show sets the pin high when on. The color is ignored.
func (d *Digital) Show(on bool, _ color.RGBA) error {
	d.pin.Set(on)
	return nil
}

// Addressable shows colors on the first pixel of a Strip.
type Addressable struct {
	strip Strip
}

// NewAddressable returns an Output showing colors on pixel 0 of strip.
func NewAddressable(strip Strip) *Addressable {
	return &Addressable{strip: strip}
}

// Show sets pixel 0 and refreshes the strip when on. When off the strip is
// cleared and c is ignored.
func (a *Addressable) Show(on bool, c color.RGBA) error {
	if !on {
		return a.strip.Clear()
	}
	if err := a.strip.SetPixel(0, c); err != nil {
		return err
	}
	return a.strip.Refresh()
}
