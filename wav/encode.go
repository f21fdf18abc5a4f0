// Package wav writes nco.Streamer output as RIFF/WAVE PCM files.
package wav

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/sdrkit/nco"
)

// headerSize is the size of the canonical 44-byte PCM header.
const headerSize = 44

type header struct {
	RiffMark      [4]byte
	FileSize      int32
	WaveMark      [4]byte
	FmtMark       [4]byte
	FormatSize    int32
	FormatType    int16
	NumChans      int16
	SampleRate    int32
	ByteRate      int32
	BytesPerFrame int16
	BitsPerSample int16
	DataMark      [4]byte
	DataSize      int32
}

// Encode writes all audio streamed from s to w in WAVE format. The header is written first with
// placeholder sizes and rewritten once s drains, so s must be finite (wrap an oscillator in
// nco.Take).
//
// Format precision must be 1, 2 or 3 bytes.
func Encode(w io.WriteSeeker, s nco.Streamer, format nco.Format) (err error) {
	defer func() {
		if err != nil {
			err = errors.Wrap(err, "wav")
		}
	}()

	if format.NumChannels <= 0 {
		return errors.New("invalid number of channels (less than 1)")
	}
	if format.Precision != 1 && format.Precision != 2 && format.Precision != 3 {
		return errors.New("unsupported precision, 1, 2 or 3 is supported")
	}

	h := header{
		RiffMark:      [4]byte{'R', 'I', 'F', 'F'},
		FileSize:      -1, // finalization
		WaveMark:      [4]byte{'W', 'A', 'V', 'E'},
		FmtMark:       [4]byte{'f', 'm', 't', ' '},
		FormatSize:    16,
		FormatType:    1,
		NumChans:      int16(format.NumChannels),
		SampleRate:    int32(format.SampleRate),
		ByteRate:      int32(int(format.SampleRate) * format.Width()),
		BytesPerFrame: int16(format.Width()),
		BitsPerSample: int16(format.Precision) * 8,
		DataMark:      [4]byte{'d', 'a', 't', 'a'},
		DataSize:      -1, // finalization
	}
	if err := binary.Write(w, binary.LittleEndian, &h); err != nil {
		return err
	}

	var (
		bw      = bufio.NewWriter(w)
		samples = make([][2]float64, 512)
		buffer  = make([]byte, len(samples)*format.Width())
		written int
	)
	for {
		n, ok := s.Stream(samples)
		if !ok {
			break
		}
		buf := buffer
		for _, sample := range samples[:n] {
			switch format.Precision {
			case 1:
				// 8-bit WAVE samples are unsigned
				buf = buf[format.EncodeUnsigned(buf, sample):]
			case 2, 3:
				buf = buf[format.EncodeSigned(buf, sample):]
			default:
				panic(fmt.Errorf("wav: encode: invalid precision: %d", format.Precision))
			}
		}
		nn, err := bw.Write(buffer[:n*format.Width()])
		if err != nil {
			return err
		}
		written += nn
	}
	if err := s.Err(); err != nil {
		return errors.Wrap(err, "streamer failed")
	}
	if err := bw.Flush(); err != nil {
		return err
	}

	h.FileSize = int32(headerSize - 8 + written)
	h.DataSize = int32(written)
	if _, err := w.Seek(0, io.SeekStart); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, &h); err != nil {
		return err
	}
	if _, err := w.Seek(0, io.SeekEnd); err != nil {
		return err
	}
	return nil
}
