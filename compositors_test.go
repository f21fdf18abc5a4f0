package nco_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdrkit/nco"
)

// toneData returns an oscillator streaming f cycles per sample together with the first
// numSamples samples it produces, computed on a twin oscillator.
func toneData(t *testing.T, numSamples int, f float64) (nco.Streamer, [][2]float64) {
	t.Helper()
	s, err := nco.New(10)
	require.NoError(t, err)
	twin, err := nco.New(10)
	require.NoError(t, err)
	s.SetFrequency(f)
	twin.SetFrequency(f)

	data := make([][2]float64, numSamples)
	for i := range data {
		v := twin.NextSample()
		data[i] = [2]float64{v, v}
	}
	return s, data
}

// collect drains Streamer s and returns all of the samples it streamed.
func collect(s nco.Streamer) [][2]float64 {
	var (
		result [][2]float64
		buf    [479][2]float64
	)
	for {
		n, ok := s.Stream(buf[:])
		if !ok {
			return result
		}
		result = append(result, buf[:n]...)
	}
}

func TestTake(t *testing.T) {
	for i := 0; i < 7; i++ {
		total := rand.Intn(1e4) + 1e3
		take := rand.Intn(total-1) + 1
		s, data := toneData(t, total, rand.Float64()/2)

		assert.Equal(t, data[:take], collect(nco.Take(take, s)))
	}
}

func TestSeq(t *testing.T) {
	var (
		s    = make([]nco.Streamer, 5)
		want [][2]float64
	)
	for i := range s {
		osc, data := toneData(t, 1000, float64(i+1)/64)
		s[i] = nco.Take(len(data), osc)
		want = append(want, data...)
	}

	assert.Equal(t, want, collect(nco.Seq(s...)))
}

func TestCallback(t *testing.T) {
	calls := 0
	osc, data := toneData(t, 300, 0.1)
	got := collect(nco.Seq(nco.Take(300, osc), nco.Callback(func() { calls++ })))

	assert.Equal(t, data, got)
	assert.Equal(t, 1, calls)
}
