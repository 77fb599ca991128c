// Package config holds the build-time settings of the LED programs.
//
// Values are set with linker flags, for example:
//
//	tinygo flash -target=pico -ldflags "-X github.com/harveysanders/ledcycle/config.output=strip -X github.com/harveysanders/ledcycle/config.pin=16" ./colorcycle
//
// Anything left unset keeps the program's default.
package config

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/harveysanders/ledcycle/led"
)

// Set via linker flags.
var (
	output  string
	backend string
	pin     string
	period  string
	tick    string
	cycle   string
	lcd     string
	level   string
)

// ErrInvalid is the root of every parse and validation error.
var ErrInvalid = errors.New("invalid config")

// Output selects the kind of LED.
type Output uint8

const (
	OutputGPIO  Output = iota // plain LED on a digital pin
	OutputStrip               // one addressable RGB pixel
	OutputPWM                 // plain LED dimmed by PWM duty cycle
)

func (o Output) String() string {
	switch o {
	case OutputGPIO:
		return "gpio"
	case OutputStrip:
		return "strip"
	case OutputPWM:
		return "pwm"
	}
	return "unknown"
}

// Backend selects how pixel data is clocked out to an addressable LED.
type Backend uint8

const (
	BackendBitbang Backend = iota // tinygo.org/x/drivers/ws2812
	BackendPIO                    // RP2040/RP2350 PIO state machine
)

func (b Backend) String() string {
	switch b {
	case BackendBitbang:
		return "bitbang"
	case BackendPIO:
		return "pio"
	}
	return "unknown"
}

// Cycle selects the color cycle policy.
type Cycle uint8

const (
	CycleSwitch Cycle = iota // led.PhaseSwitch
	CycleOffset              // led.PhaseOffset
)

func (c Cycle) String() string {
	switch c {
	case CycleSwitch:
		return "switch"
	case CycleOffset:
		return "offset"
	}
	return "unknown"
}

// Policy returns the led.Cycle for c.
func (c Cycle) Policy() led.Cycle {
	if c == CycleOffset {
		return led.PhaseOffset{}
	}
	return led.PhaseSwitch{}
}

// DefaultPin means the board's own LED (machine.LED).
const DefaultPin = -1

// MaxPin is the highest GPIO number. machine.Pin is a uint8 and 255 is
// machine.NoPin.
const MaxPin = 254

// Config is the parsed build configuration.
type Config struct {
	Output  Output
	Backend Backend
	// Pin is the GPIO number driving the LED, or DefaultPin.
	Pin int
	// Period is the number of ticks in each color phase.
	Period uint32
	// Tick is the delay between loop iterations.
	Tick  time.Duration
	Cycle Cycle
	// LCD enables the HD44780 status display.
	LCD      bool
	LogLevel slog.Level
}

// Raw holds unparsed values. Empty fields keep the default.
type Raw struct {
	Output  string
	Backend string
	Pin     string
	Period  string // ticks
	Tick    string // milliseconds
	Cycle   string
	LCD     string
	Level   string
}

// Linked returns the values set via linker flags.
func Linked() Raw {
	return Raw{
		Output:  output,
		Backend: backend,
		Pin:     pin,
		Period:  period,
		Tick:    tick,
		Cycle:   cycle,
		LCD:     lcd,
		Level:   level,
	}
}

// Load applies the linker flag values on top of def.
func Load(def Config) (Config, error) {
	return Parse(Linked(), def)
}

// Parse applies raw on top of def and validates the result.
func Parse(raw Raw, def Config) (Config, error) {
	cfg := def
	var err error

	if raw.Output != "" {
		switch strings.ToLower(raw.Output) {
		case "gpio", "0":
			cfg.Output = OutputGPIO
		case "strip", "1":
			cfg.Output = OutputStrip
		case "pwm", "2":
			cfg.Output = OutputPWM
		default:
			return cfg, invalid("output", raw.Output)
		}
	}
	if raw.Backend != "" {
		switch strings.ToLower(raw.Backend) {
		case "bitbang":
			cfg.Backend = BackendBitbang
		case "pio":
			cfg.Backend = BackendPIO
		default:
			return cfg, invalid("backend", raw.Backend)
		}
	}
	if raw.Pin != "" {
		cfg.Pin, err = strconv.Atoi(raw.Pin)
		if err != nil || cfg.Pin < 0 || cfg.Pin > MaxPin {
			return cfg, invalid("pin", raw.Pin)
		}
	}
	if raw.Period != "" {
		n, err := strconv.ParseUint(raw.Period, 10, 32)
		if err != nil {
			return cfg, invalid("period", raw.Period)
		}
		cfg.Period = uint32(n)
	}
	if raw.Tick != "" {
		ms, err := strconv.ParseUint(raw.Tick, 10, 32)
		if err != nil {
			return cfg, invalid("tick", raw.Tick)
		}
		cfg.Tick = time.Duration(ms) * time.Millisecond
	}
	if raw.Cycle != "" {
		switch strings.ToLower(raw.Cycle) {
		case "switch":
			cfg.Cycle = CycleSwitch
		case "offset":
			cfg.Cycle = CycleOffset
		default:
			return cfg, invalid("cycle", raw.Cycle)
		}
	}
	if raw.LCD != "" {
		switch strings.ToLower(raw.LCD) {
		case "on", "true", "1":
			cfg.LCD = true
		case "off", "false", "0":
			cfg.LCD = false
		default:
			return cfg, invalid("lcd", raw.LCD)
		}
	}
	if raw.Level != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(raw.Level)); err != nil {
			return cfg, invalid("level", raw.Level)
		}
	}
	return cfg, cfg.Validate()
}

// Validate reports settings the programs cannot run with.
func (c Config) Validate() error {
	if c.Period == 0 {
		return &Error{Field: "period", Reason: led.ErrZeroPeriod.Error()}
	}
	if c.Tick <= 0 {
		return &Error{Field: "tick", Reason: led.ErrZeroInterval.Error()}
	}
	if c.Pin != DefaultPin && (c.Pin < 0 || c.Pin > MaxPin) {
		return &Error{Field: "pin", Value: strconv.Itoa(c.Pin), Reason: "out of range"}
	}
	if c.Output != OutputStrip && c.Backend == BackendPIO {
		return &Error{Field: "backend", Value: c.Backend.String(), Reason: "requires strip output"}
	}
	return nil
}

// Error describes a bad setting. It matches ErrInvalid with errors.Is.
type Error struct {
	Field  string
	Value  string
	Reason string
}

func (e *Error) Error() string {
	msg := ErrInvalid.Error() + ": " + e.Field
	if e.Value != "" {
		msg += " " + strconv.Quote(e.Value)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *Error) Unwrap() error { return ErrInvalid }

func invalid(field, value string) error {
	return &Error{Field: field, Value: value}
}
