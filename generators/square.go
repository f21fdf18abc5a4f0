package generators

import "github.com/sdrkit/nco"

// SquareTone creates a streamer which will produce an infinite square wave with the given
// frequency. The wave is high for the first half of every rotation.
// The sample rate must be more than two times the frequency, otherwise this function returns an
// error.
func SquareTone(sr nco.SampleRate, freq float64) (nco.Streamer, error) {
	return newTone("square", sr, freq, square)
}

func square(osc *nco.Oscillator) float64 {
	if position(osc) < 0.5 {
		return 1
	}
	return -1
}
