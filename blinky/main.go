//go:build tinygo

// Blinky toggles an LED on every tick. On an addressable LED the lit ticks
// step through the red -> green -> blue color phases.
//
//	tinygo flash -target=pico ./blinky
package main

import (
	"log/slog"
	"strconv"

	"github.com/harveysanders/ledcycle/board"
	"github.com/harveysanders/ledcycle/config"
	"github.com/harveysanders/ledcycle/lcd"
	"github.com/harveysanders/ledcycle/led"
)

func main() {
	cfg, err := config.Load(config.Blinky())
	logger := board.Logger(cfg.LogLevel)
	if err != nil {
		board.Fatal(logger, "load config", slog.Any("reason", err))
	}

	out, err := board.ConfigureOutput(cfg, logger)
	if err != nil {
		board.Fatal(logger, "configure LED", slog.Any("reason", err))
	}

	loop, err := led.NewLoop(out, led.LoopConfig{
		Cycle:    cfg.Cycle.Policy(),
		Period:   cfg.Period,
		Interval: cfg.Tick,
		Blink:    true,
		On:       false,
		Logger:   logger,
		OnPhase:  statusDisplay(cfg, logger),
	})
	if err != nil {
		board.Fatal(logger, "start loop", slog.Any("reason", err))
	}

	err = loop.Run()
	board.Fatal(logger, "LED output failed", slog.Any("reason", err))
}

// statusDisplay starts the LCD handler when enabled and returns the phase
// hook that feeds it. A missing display is not fatal.
func statusDisplay(cfg config.Config, logger *slog.Logger) func(led.State) {
	if !cfg.LCD {
		return nil
	}
	dev, err := board.ConfigureLCD()
	if err != nil {
		logger.Warn("status display disabled", slog.Any("reason", err))
		return nil
	}
	msgs := make(chan lcd.Message, 4)
	go lcd.NewHandler(dev, msgs, logger).Run()
	lcd.Send(msgs, "blinky", cfg.Output.String())

	return func(s led.State) {
		lcd.Send(msgs, "Phase "+strconv.Itoa(int(s.Phase)), led.PhaseName(s.Phase))
	}
}
