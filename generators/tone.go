// Package generators provides tone streamers driven by a numerically controlled oscillator.
//
// Every generator owns one nco.Oscillator. The sine tone reads the oscillator's lookup table; the
// other shapes are computed from its phase word, so all of them stay phase-continuous and cost
// O(1) per sample.
package generators

import (
	"github.com/pkg/errors"

	"github.com/sdrkit/nco"
)

// TableBits is the table-size exponent of the oscillators created by this package.
const TableBits = 12

type toneGenerator struct {
	osc   *nco.Oscillator
	shape func(osc *nco.Oscillator) float64
}

func newTone(name string, sr nco.SampleRate, freq float64, shape func(*nco.Oscillator) float64) (nco.Streamer, error) {
	if sr <= 0 {
		return nil, errors.Errorf("%s tone generator: invalid sample rate %d", name, sr)
	}
	osc, err := nco.New(TableBits)
	if err != nil {
		return nil, errors.Wrapf(err, "%s tone generator", name)
	}
	if err := osc.SetFrequencyChecked(freq / float64(sr)); err != nil {
		return nil, errors.Wrapf(err, "%s tone generator: samplerate must be at least 2 times greater than frequency", name)
	}
	return &toneGenerator{osc: osc, shape: shape}, nil
}

func (g *toneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		v := g.shape(g.osc)
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (*toneGenerator) Err() error {
	return nil
}

// position advances osc by one sample and returns its phase as a fraction of a rotation in [0, 1).
func position(osc *nco.Oscillator) float64 {
	osc.NextSample()
	return float64(osc.Phase()) / nco.OneRotation
}
