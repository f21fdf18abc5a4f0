package generators

import "github.com/sdrkit/nco"

// TriangleTone creates a streamer which will produce an infinite triangle wave with the given
// frequency, rising from -1 to 1 over the first half of every rotation.
// The sample rate must be more than two times the frequency, otherwise this function returns an
// error.
func TriangleTone(sr nco.SampleRate, freq float64) (nco.Streamer, error) {
	return newTone("triangle", sr, freq, triangle)
}

func triangle(osc *nco.Oscillator) float64 {
	t := position(osc)
	if t < 0.5 {
		return 4*t - 1
	}
	return 3 - 4*t
}
