package generators

import "github.com/sdrkit/nco"

// SineTone creates a streamer which will produce an infinite sine wave with the given frequency.
// Use other wrappers of this module to change amplitude or add time limit.
// The sample rate must be more than two times the frequency, otherwise this function returns an
// error wrapping nco.ErrAliasing.
func SineTone(sr nco.SampleRate, freq float64) (nco.Streamer, error) {
	return newTone("sine", sr, freq, (*nco.Oscillator).NextSample)
}
