// Package effects provides sample-level processing for nco.Streamer values.
package effects

import (
	"math"

	"github.com/sdrkit/nco"
)

// Volume scales the amplitude of the wrapped Streamer by Base^Volume.
//
// With Base 2, Volume 0 leaves the signal untouched, -1 halves it and 1 doubles it. Silent mutes
// the output without draining the Streamer, so an oscillator keeps its phase while muted.
type Volume struct {
	Streamer nco.Streamer
	Base     float64
	Volume   float64
	Silent   bool
}

// Stream streams the wrapped Streamer with adjusted volume.
func (v *Volume) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = v.Streamer.Stream(samples)
	gain := 0.0
	if !v.Silent {
		gain = math.Pow(v.Base, v.Volume)
	}
	for i := range samples[:n] {
		samples[i][0] *= gain
		samples[i][1] *= gain
	}
	return n, ok
}

// Err propagates the wrapped Streamer's errors.
func (v *Volume) Err() error {
	return v.Streamer.Err()
}
