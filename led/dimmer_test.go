package led

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePWM struct {
	top    uint32
	values map[uint8][]uint32
}

func newFakePWM(top uint32) *fakePWM {
	return &fakePWM{top: top, values: map[uint8][]uint32{}}
}

func (p *fakePWM) Set(ch uint8, v uint32) { p.values[ch] = append(p.values[ch], v) }

func (p *fakePWM) Top() uint32 { return p.top }

func TestDimmerBrightestChannel(t *testing.T) {
	pwm := newFakePWM(1000)
	d := NewDimmer(pwm, 1)

	require.NoError(t, d.Show(true, RGB(0xFF, 0, 0)))
	require.NoError(t, d.Show(true, RGB(0x10, 0x7F, 0x20)))
	require.NoError(t, d.Show(true, RGB(0, 0, 0)))

	assert.Equal(t, []uint32{1000, 498, 0}, pwm.values[1])
	assert.Empty(t, pwm.values[0])
}

func TestDimmerOffIgnoresColor(t *testing.T) {
	pwm := newFakePWM(65535)
	d := NewDimmer(pwm, 0)

	require.NoError(t, d.Show(false, RGB(0xFF, 0xFF, 0xFF)))
	assert.Equal(t, []uint32{0}, pwm.values[0])
}

func TestDimmerFollowsPhaseSwitch(t *testing.T) {
	// With PhaseSwitch one channel is always at least half bright, so the
	// LED never goes dark mid cycle.
	pwm := newFakePWM(255)
	d := NewDimmer(pwm, 0)
	for counter := uint32(0); counter < 300; counter++ {
		duty := d.Duty(PhaseSwitch{}.Color(counter, 300, 0))
		require.GreaterOrEqual(t, duty, uint32(0x7F), "counter %d", counter)
	}
}
