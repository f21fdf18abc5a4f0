package generators

import "github.com/sdrkit/nco"

// SawtoothTone creates a streamer which will produce an infinite sawtooth wave with the given
// frequency.
// The sample rate must be more than two times the frequency, otherwise this function returns an
// error.
func SawtoothTone(sr nco.SampleRate, freq float64) (nco.Streamer, error) {
	return newTone("sawtooth", sr, freq, sawtooth)
}

// SawtoothToneReversed is like SawtoothTone, but the slope is negative.
func SawtoothToneReversed(sr nco.SampleRate, freq float64) (nco.Streamer, error) {
	return newTone("sawtooth", sr, freq, func(osc *nco.Oscillator) float64 {
		return -sawtooth(osc)
	})
}

func sawtooth(osc *nco.Oscillator) float64 {
	return 2*position(osc) - 1
}
