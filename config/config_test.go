package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harveysanders/ledcycle/led"
)

var colorCycleDefaults = Config{
	Output:  OutputStrip,
	Backend: BackendBitbang,
	Pin:     DefaultPin,
	Period:  3000,
	Tick:    time.Millisecond,
	Cycle:   CycleSwitch,
}

func TestParseEmptyKeepsDefaults(t *testing.T) {
	cfg, err := Parse(Raw{}, colorCycleDefaults)
	require.NoError(t, err)
	assert.Equal(t, colorCycleDefaults, cfg)
}

func TestParseOverrides(t *testing.T) {
	cfg, err := Parse(Raw{
		Output:  "strip",
		Backend: "PIO",
		Pin:     "16",
		Period:  "600",
		Tick:    "20",
		Cycle:   "offset",
		LCD:     "on",
		Level:   "debug",
	}, colorCycleDefaults)
	require.NoError(t, err)

	assert.Equal(t, Config{
		Output:   OutputStrip,
		Backend:  BackendPIO,
		Pin:      16,
		Period:   600,
		Tick:     20 * time.Millisecond,
		Cycle:    CycleOffset,
		LCD:      true,
		LogLevel: slog.LevelDebug,
	}, cfg)
}

func TestParseNumericOutputSwitch(t *testing.T) {
	cfg, err := Parse(Raw{Output: "0"}, colorCycleDefaults)
	require.NoError(t, err)
	assert.Equal(t, OutputGPIO, cfg.Output)

	cfg, err = Parse(Raw{Output: "1"}, cfg)
	require.NoError(t, err)
	assert.Equal(t, OutputStrip, cfg.Output)

	cfg, err = Parse(Raw{Output: "pwm"}, cfg)
	require.NoError(t, err)
	assert.Equal(t, OutputPWM, cfg.Output)
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		raw  Raw
	}{
		{"output", Raw{Output: "matrix"}},
		{"backend", Raw{Backend: "rmt"}},
		{"pin not a number", Raw{Pin: "GP15"}},
		{"negative pin", Raw{Pin: "-3"}},
		{"pin past uint8", Raw{Pin: "300"}},
		{"no pin", Raw{Pin: "255"}},
		{"period not a number", Raw{Period: "fast"}},
		{"zero period", Raw{Period: "0"}},
		{"negative tick", Raw{Tick: "-1"}},
		{"zero tick", Raw{Tick: "0"}},
		{"cycle", Raw{Cycle: "rainbow"}},
		{"lcd", Raw{LCD: "maybe"}},
		{"level", Raw{Level: "loud"}},
		{"pio on gpio", Raw{Output: "gpio", Backend: "pio"}},
		{"pio on pwm", Raw{Output: "2", Backend: "pio"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.raw, colorCycleDefaults)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestPinRange(t *testing.T) {
	cfg, err := Parse(Raw{Pin: "0"}, colorCycleDefaults)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Pin)

	cfg, err = Parse(Raw{Pin: "254"}, colorCycleDefaults)
	require.NoError(t, err)
	assert.Equal(t, MaxPin, cfg.Pin)

	bad := colorCycleDefaults
	bad.Pin = 300
	assert.ErrorIs(t, bad.Validate(), ErrInvalid)
	bad.Pin = -2
	assert.ErrorIs(t, bad.Validate(), ErrInvalid)
}

func TestErrorMessage(t *testing.T) {
	_, err := Parse(Raw{Cycle: "rainbow"}, colorCycleDefaults)
	assert.EqualError(t, err, `invalid config: cycle "rainbow"`)

	_, err = Parse(Raw{Period: "0"}, colorCycleDefaults)
	assert.EqualError(t, err, "invalid config: period: "+led.ErrZeroPeriod.Error())
}

func TestLoadWithoutLinkerFlags(t *testing.T) {
	cfg, err := Load(colorCycleDefaults)
	require.NoError(t, err)
	assert.Equal(t, colorCycleDefaults, cfg)
}

func TestCyclePolicy(t *testing.T) {
	assert.IsType(t, led.PhaseSwitch{}, CycleSwitch.Policy())
	assert.IsType(t, led.PhaseOffset{}, CycleOffset.Policy())
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "gpio", OutputGPIO.String())
	assert.Equal(t, "strip", OutputStrip.String())
	assert.Equal(t, "pwm", OutputPWM.String())
	assert.Equal(t, "bitbang", BackendBitbang.String())
	assert.Equal(t, "pio", BackendPIO.String())
	assert.Equal(t, "switch", CycleSwitch.String())
	assert.Equal(t, "offset", CycleOffset.String())
	assert.Equal(t, "unknown", Output(9).String())
}
