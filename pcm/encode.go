// Package pcm writes nco.Streamer output as headerless signed little-endian PCM, suitable for
// piping into tools such as aplay or sox.
package pcm

import (
	"bufio"
	"io"

	"github.com/pkg/errors"

	"github.com/sdrkit/nco"
)

// Encode writes all audio streamed from s to w in raw PCM format. s must be finite.
func Encode(w io.Writer, s nco.Streamer, format nco.Format) error {
	if format.NumChannels <= 0 || format.Precision <= 0 || format.Precision > 7 {
		return errors.Errorf("pcm: invalid format %+v", format)
	}
	var (
		bw      = bufio.NewWriter(w)
		samples = make([][2]float64, 512)
		buffer  = make([]byte, len(samples)*format.Width())
	)
	for {
		n, ok := s.Stream(samples)
		if !ok {
			break
		}
		var offset int
		for _, sample := range samples[:n] {
			offset += format.EncodeSigned(buffer[offset:], sample)
		}
		if _, err := bw.Write(buffer[:offset]); err != nil {
			return errors.Wrap(err, "pcm")
		}
	}
	if err := s.Err(); err != nil {
		return errors.Wrap(err, "pcm")
	}
	return errors.Wrap(bw.Flush(), "pcm")
}
