package led

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"
)

var (
	ErrZeroPeriod   = errors.New("period must be greater than zero")
	ErrZeroInterval = errors.New("interval must be greater than zero")
	ErrNoOutput     = errors.New("nil output")
)

// State is everything the main loop carries from one tick to the next.
type State struct {
	On      bool
	Counter uint32 // progress within the current phase, in [0, Period)
	Phase   uint8  // 0, 1 or 2
}

// LoopConfig configures a Loop.
type LoopConfig struct {
	// Cycle picks the color for each tick. Defaults to PhaseSwitch.
	Cycle Cycle
	// Period is the number of ticks in each phase.
	Period uint32
	// Interval is the delay between ticks.
	Interval time.Duration
	// Blink toggles the LED every tick. Otherwise it stays as On.
	Blink bool
	// On is the initial LED state.
	On bool
	// Logger defaults to discarding everything.
	Logger *slog.Logger
	// Sleep defaults to time.Sleep.
	Sleep func(time.Duration)
	// OnPhase, if set, is called with the new state after every phase change.
	OnPhase func(State)
}

// Loop is the firmware main loop. It owns the output and its state.
type Loop struct {
	out     Output
	cycle   Cycle
	period  uint32
	every   time.Duration
	blink   bool
	log     *slog.Logger
	sleep   func(time.Duration)
	onPhase func(State)

	state State
}

// NewLoop returns a loop driving out, starting at counter 0 in phase 0.
func NewLoop(out Output, cfg LoopConfig) (*Loop, error) {
	if out == nil {
		return nil, ErrNoOutput
	}
	if cfg.Period == 0 {
		return nil, ErrZeroPeriod
	}
	if cfg.Interval <= 0 {
		return nil, ErrZeroInterval
	}
	l := &Loop{
		out:     out,
		cycle:   cfg.Cycle,
		period:  cfg.Period,
		every:   cfg.Interval,
		blink:   cfg.Blink,
		log:     cfg.Logger,
		sleep:   cfg.Sleep,
		onPhase: cfg.OnPhase,
		state:   State{On: cfg.On},
	}
	if l.cycle == nil {
		l.cycle = PhaseSwitch{}
	}
	if l.log == nil {
		l.log = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
			Level: slog.Level(127), // Make temporary logger that does no logging.
		}))
	}
	if l.sleep == nil {
		l.sleep = time.Sleep
	}
	return l, nil
}

// State returns the state the next Step starts from.
func (l *Loop) State() State {
	return l.state
}

// Step runs a single tick without the trailing delay.
func (l *Loop) Step() error {
	s := &l.state
	c := l.cycle.Color(s.Counter, l.period, s.Phase)

	if l.blink {
		l.log.Info(turningMsg(s.On))
	}
	// Runs every tick; building the attrs allocates, so only do it when
	// debug output is wanted.
	if l.log.Enabled(context.Background(), slog.LevelDebug) {
		l.log.Debug("show",
			slog.Bool("on", s.On),
			slog.Uint64("counter", uint64(s.Counter)),
			slog.Int("phase", int(s.Phase)),
			slog.Int("r", int(c.R)), slog.Int("g", int(c.G)), slog.Int("b", int(c.B)),
		)
	}
	if err := l.out.Show(s.On, c); err != nil {
		return errors.New("show:" + err.Error())
	}

	if l.blink {
		s.On = !s.On
	}

	s.Counter++
	if s.Counter >= l.period {
		s.Counter = 0
		s.Phase = (s.Phase + 1) % 3
		l.log.Info("phase advanced",
			slog.Int("phase", int(s.Phase)),
			slog.String("transition", PhaseName(s.Phase)),
		)
		if l.onPhase != nil {
			l.onPhase(*s)
		}
	}
	return nil
}

// Run steps and sleeps forever. It only returns if the output fails.
func (l *Loop) Run() error {
	for {
		if err := l.Step(); err != nil {
			return err
		}
		l.sleep(l.every)
	}
}

func turningMsg(on bool) string {
	if on {
		return "turning the LED ON"
	}
	return "turning the LED OFF"
}
