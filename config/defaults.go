package config

import (
	"log/slog"
	"time"
)

// StripPin is the default data pin for an addressable LED. Boards rarely
// wire one to machine.LED, which is usually a plain LED.
const StripPin = 16

// Blinky returns the defaults of the blink program: the board LED toggled
// once a second, stepping one color per blink.
func Blinky() Config {
	return Config{
		Output:   OutputGPIO,
		Backend:  BackendBitbang,
		Pin:      DefaultPin,
		Period:   2, // one on and one off tick per color
		Tick:     1000 * time.Millisecond,
		Cycle:    CycleSwitch,
		LogLevel: slog.LevelInfo,
	}
}

// ColorCycle returns the defaults of the color cycle program: an
// addressable LED on StripPin, one full color phase every 3s.
func ColorCycle() Config {
	return Config{
		Output:   OutputStrip,
		Backend:  BackendBitbang,
		Pin:      StripPin,
		Period:   3000,
		Tick:     time.Millisecond,
		Cycle:    CycleSwitch,
		LogLevel: slog.LevelInfo,
	}
}
