//go:build tinygo

// Colorcycle keeps an addressable LED lit and fades it smoothly from red to
// green to blue and back to red.
//
// The LED data line defaults to GPIO 16 (config.StripPin); set config.pin to
// move it:
//
//	tinygo flash -target=pico -ldflags "-X github.com/harveysanders/ledcycle/config.pin=22" ./colorcycle
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
	cfg, err := config.Load(config.ColorCycle())
	logger := board.Logger(cfg.LogLevel)
	if err != nil {
		board.Fatal(logger, "load config", slog.Any("reason", err))
	}
	logger.Info("color cycle",
		slog.String("cycle", cfg.Cycle.String()),
		slog.Uint64("period", uint64(cfg.Period)),
		slog.Duration("tick", cfg.Tick),
	)

	out, err := board.ConfigureOutput(cfg, logger)
	if err != nil {
		board.Fatal(logger, "configure LED", slog.Any("reason", err))
	}

	var onPhase func(led.State)
	if cfg.LCD {
		onPhase = startStatusDisplay(logger)
	}

	loop, err := led.NewLoop(out, led.LoopConfig{
		Cycle:    cfg.Cycle.Policy(),
		Period:   cfg.Period,
		Interval: cfg.Tick,
		On:       true,
		Logger:   logger,
		OnPhase:  onPhase,
	})
	if err != nil {
		board.Fatal(logger, "start loop", slog.Any("reason", err))
	}

	err = loop.Run()
	board.Fatal(logger, "LED output failed", slog.Any("reason", err))
}

func startStatusDisplay(logger *slog.Logger) func(led.State) {
	dev, err := board.ConfigureLCD()
	if err != nil {
		logger.Warn("status display disabled", slog.Any("reason", err))
		return nil
	}
	msgs := make(chan lcd.Message, 4)
	go lcd.NewHandler(dev, msgs, logger).Run()
	lcd.Send(msgs, "colorcycle", led.PhaseName(0))

	return func(s led.State) {
		lcd.Send(msgs, "Phase "+strconv.Itoa(int(s.Phase)), led.PhaseName(s.Phase))
	}
}
