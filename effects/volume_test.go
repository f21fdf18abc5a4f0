package effects_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdrkit/nco"
	"github.com/sdrkit/nco/effects"
)

func pair(t *testing.T) (*nco.Oscillator, *nco.Oscillator) {
	t.Helper()
	a, err := nco.New(10)
	require.NoError(t, err)
	b, err := nco.New(10)
	require.NoError(t, err)
	a.SetFrequency(0.05)
	b.SetFrequency(0.05)
	return a, b
}

func TestVolumeGain(t *testing.T) {
	for _, tc := range []struct {
		volume float64
		gain   float64
	}{
		{0, 1},
		{-1, 0.5},
		{1, 2},
		{-3, 0.125},
	} {
		osc, ref := pair(t)
		v := &effects.Volume{Streamer: osc, Base: 2, Volume: tc.volume}

		buf := make([][2]float64, 64)
		n, ok := v.Stream(buf)
		require.True(t, ok)
		require.Equal(t, len(buf), n)
		require.NoError(t, v.Err())
		for i := range buf {
			want := ref.NextSample() * tc.gain
			assert.InDelta(t, want, buf[i][0], 1e-12)
			assert.InDelta(t, want, buf[i][1], 1e-12)
		}
	}
}

func TestVolumeSilentKeepsPhase(t *testing.T) {
	osc, ref := pair(t)
	v := &effects.Volume{Streamer: osc, Base: 2, Silent: true}

	buf := make([][2]float64, 10)
	v.Stream(buf)
	for i := range buf {
		ref.NextSample()
		assert.Equal(t, [2]float64{}, buf[i])
	}

	v.Silent = false
	v.Stream(buf[:1])
	assert.Equal(t, ref.NextSample(), buf[0][0])
	assert.Equal(t, ref.Phase(), osc.Phase())
}
