package speaker

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdrkit/nco"
)

func TestReadEncodesPlayingStreamer(t *testing.T) {
	osc, err := nco.New(8)
	require.NoError(t, err)
	osc.SetFrequency(1.0 / 64)
	ref, err := nco.New(8)
	require.NoError(t, err)
	ref.SetFrequency(1.0 / 64)

	Play(osc)
	defer Clear()

	var r sampleReader
	buf := make([]byte, 100*bytesPerSample)
	n, err := r.Read(buf)
	require.NoError(t, err)
	require.Equal(t, len(buf), n)

	for i := 0; i < 100; i++ {
		got, _ := format.DecodeSigned(buf[i*bytesPerSample:])
		want := ref.NextSample()
		assert.InDelta(t, want, got[0], 1.0/32767)
		assert.InDelta(t, want, got[1], 1.0/32767)
	}
}

func TestReadPadsWithSilence(t *testing.T) {
	osc, err := nco.New(8)
	require.NoError(t, err)
	osc.SetFrequency(0.1)

	Play(nco.Take(10, osc))
	defer Clear()

	var r sampleReader
	buf := make([]byte, 64*bytesPerSample)
	n, err := r.Read(buf)
	require.NoError(t, err)
	require.Equal(t, len(buf), n)
	assert.Equal(t, make([]byte, 54*bytesPerSample), buf[10*bytesPerSample:])

	// the drained Streamer is dropped and silence follows
	n, err = r.Read(buf)
	require.NoError(t, err)
	require.Equal(t, len(buf), n)
	assert.Equal(t, make([]byte, len(buf)), buf)
}

type failing struct{}

func (failing) Stream([][2]float64) (int, bool) { return 0, false }
func (failing) Err() error                      { return errors.New("boom") }

func TestReadErrors(t *testing.T) {
	var r sampleReader
	_, err := r.Read(make([]byte, 3))
	assert.Error(t, err)

	Play(failing{})
	defer Clear()
	_, err = r.Read(make([]byte, bytesPerSample))
	assert.EqualError(t, err, "streamer returned error when requesting samples: boom")
}
