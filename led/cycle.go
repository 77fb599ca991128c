// Package led drives a single LED, either a plain GPIO LED or one
// addressable RGB pixel, and cycles its color red -> green -> blue -> red.
//
// Nothing in this package touches the machine package, so it builds and
// tests on the host as well as under TinyGo.
package led

import "image/color"

// Cycle maps a progress counter within a phase to a color.
type Cycle interface {
	// Color returns the color at counter (taken modulo period) for the
	// given phase. period must be non-zero.
	Color(counter, period uint32, phase uint8) color.RGBA
}

// PhaseSwitch is the default Cycle. Within a phase one channel ramps up
// from 0 to 255, the previous channel is its bitwise complement, and the
// third channel is held at zero:
//
//	phase 0: red rises, blue falls
//	phase 1: green rises, red falls
//	phase 2: blue rises, green falls
type PhaseSwitch struct{}

// Color implements Cycle.
func (PhaseSwitch) Color(counter, period uint32, phase uint8) color.RGBA {
	rise := ramp(counter%period, period)
	fall := ^rise
	switch phase % 3 {
	case 0:
		return RGB(rise, 0, fall)
	case 1:
		return RGB(fall, rise, 0)
	default:
		return RGB(0, fall, rise)
	}
}

// PhaseOffset derives all three channels from the one counter. Each channel
// is a triangle wave over period, red unshifted, blue shifted by period/3
// and green by 2*period/3. The phase argument is ignored.
type PhaseOffset struct{}

// Color implements Cycle. phase is unused.
func (PhaseOffset) Color(counter, period uint32, _ uint8) color.RGBA {
	c := uint64(counter % period)
	p := uint64(period)
	return RGB(
		triangle(c, p),
		triangle(c+2*p/3, p),
		triangle(c+p/3, p),
	)
}

// triangle rises over the first half of period and falls, as the complement
// of a second ramp, over the rest.
func triangle(pos, period uint64) uint8 {
	pos %= period
	half := period / 2
	if pos < half {
		return ramp64(pos, half)
	}
	return ^ramp64(pos-half, period-half)
}

// ramp scales pos in [0, span) to [0, 255], truncating.
func ramp(pos, span uint32) uint8 {
	return ramp64(uint64(pos), uint64(span))
}

func ramp64(pos, span uint64) uint8 {
	return uint8(0xFF * pos / span)
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

var phaseNames = [3]string{"blue->red", "red->green", "green->blue"}

// PhaseName describes the transition active in phase.
func PhaseName(phase uint8) string {
	return phaseNames[phase%3]
}
