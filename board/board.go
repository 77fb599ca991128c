//go:build tinygo

// Package board configures the microcontroller peripherals used by the LED
// programs and hands them to package led.
package board

import (
	"errors"
	"log/slog"
	"machine"
	"time"

	"github.com/harveysanders/ledcycle/config"
	"github.com/harveysanders/ledcycle/led"
	"tinygo.org/x/drivers/ws2812"
)

// Pixels on the strip. Boards carry a single addressable LED.
const stripLen = 1

// Logger returns a text logger writing to the serial console.
func Logger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(machine.Serial, &slog.HandlerOptions{
		Level: level,
	}))
}

// Fatal logs msg @ 1hz and blocks forever. The board has to be reset.
func Fatal(logger *slog.Logger, msg string, args ...any) {
	for {
		logger.Error(msg, args...)
		time.Sleep(time.Second)
	}
}

// LEDPin returns the pin for a configured GPIO number.
func LEDPin(n int) machine.Pin {
	if n == config.DefaultPin {
		return machine.LED
	}
	return machine.Pin(n)
}

// ConfigureOutput sets up the LED selected by cfg. For an addressable LED
// the strip is cleared before it is returned.
func ConfigureOutput(cfg config.Config, logger *slog.Logger) (led.Output, error) {
	pin := LEDPin(cfg.Pin)

	switch cfg.Output {
	case config.OutputGPIO:
		logger.Info("configured to blink GPIO LED", slog.Int("pin", int(pin)))
		pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
		pin.Low()
		return led.NewDigital(pin), nil

	case config.OutputStrip:
		logger.Info("configured to drive addressable LED",
			slog.Int("pin", int(pin)),
			slog.String("backend", cfg.Backend.String()),
		)
		w, err := newWriter(cfg.Backend, pin)
		if err != nil {
			return nil, errors.New("strip " + cfg.Backend.String() + ":" + err.Error())
		}
		px := led.NewPixels(w, stripLen)
		if err := px.Clear(); err != nil {
			return nil, errors.New("strip clear:" + err.Error())
		}
		return led.NewAddressable(px), nil

	case config.OutputPWM:
		logger.Info("configured to dim PWM LED", slog.Int("pin", int(pin)))
		d, err := newDimmer(pin)
		if err != nil {
			return nil, errors.New("pwm:" + err.Error())
		}
		return d, nil
	}
	return nil, errors.New("unsupported output: " + cfg.Output.String())
}

func newWriter(b config.Backend, pin machine.Pin) (led.Writer, error) {
	switch b {
	case config.BackendBitbang:
		pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
		dev := ws2812.New(pin)
		return &dev, nil
	case config.BackendPIO:
		return newPIOWriter(pin)
	}
	return nil, errors.New("unsupported backend")
}
