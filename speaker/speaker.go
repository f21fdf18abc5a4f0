// Package speaker implements playback of nco.Streamer values through physical speakers.
package speaker

import (
	"io"
	"sync"

	"github.com/hajimehoshi/oto/v2"
	"github.com/pkg/errors"

	"github.com/sdrkit/nco"
)

const channelCount = 2
const bitDepthInBytes = 2
const bytesPerSample = bitDepthInBytes * channelCount

var format = nco.Format{NumChannels: channelCount, Precision: bitDepthInBytes}

var (
	mu      sync.Mutex
	source  nco.Streamer
	context *oto.Context
	player  oto.Player
)

// Init initializes audio playback through speaker. Must be called before using this package.
//
// The bufferSize argument specifies the number of samples of the speaker's buffer. Bigger
// bufferSize means lower CPU usage and more reliable playback. Lower bufferSize means better
// responsiveness and less delay.
func Init(sampleRate nco.SampleRate, bufferSize int) error {
	if context != nil {
		return errors.New("speaker cannot be initialized more than once")
	}

	var err error
	var readyChan chan struct{}
	context, readyChan, err = oto.NewContext(int(sampleRate), channelCount, bitDepthInBytes)
	if err != nil {
		return errors.Wrap(err, "failed to initialize speaker")
	}
	<-readyChan

	player = context.NewPlayer(&sampleReader{})
	player.(oto.BufferSizeSetter).SetBufferSize(bufferSize * bytesPerSample)
	player.Play()

	return nil
}

// Close stops playback and drops the current Streamer.
func Close() {
	if player != nil {
		player.Close()
		player = nil
		Clear()
	}
}

// Lock locks the speaker. While locked, speaker won't pull new data from the playing Streamer.
// Lock before reconfiguring a playing oscillator, e.g. calling SetFrequency, since the speaker
// pulls samples from another goroutine.
//
// Always lock speaker for as little time as possible, to avoid playback glitches.
func Lock() {
	mu.Lock()
}

// Unlock unlocks the speaker. Call after modifying the currently playing Streamer.
func Unlock() {
	mu.Unlock()
}

// Play starts playing s through the speaker, replacing whatever was playing before.
func Play(s nco.Streamer) {
	mu.Lock()
	source = s
	mu.Unlock()
}

// Clear stops playing the current Streamer. The speaker outputs silence afterwards.
func Clear() {
	mu.Lock()
	source = nil
	mu.Unlock()
}

// sampleReader pulls samples from the playing Streamer to implement io.Reader.
type sampleReader struct {
	buf [][2]float64
}

// Read pulls samples from the current Streamer and fills buf with the encoded samples. Read
// expects the size of buf be divisible by the length of a sample (= channel count * bit depth in
// bytes). Silence is produced while no Streamer is playing or after it drains.
func (r *sampleReader) Read(buf []byte) (n int, err error) {
	if len(buf)%bytesPerSample != 0 {
		return 0, errors.New("requested number of bytes do not align with the samples")
	}
	ns := len(buf) / bytesPerSample
	if len(r.buf) < ns {
		r.buf = make([][2]float64, ns)
	}
	samples := r.buf[:ns]

	mu.Lock()
	filled := 0
	if source != nil {
		var ok bool
		filled, ok = source.Stream(samples)
		if !ok {
			if serr := source.Err(); serr != nil {
				err = errors.Wrap(serr, "streamer returned error when requesting samples")
			}
			source = nil
		}
	}
	mu.Unlock()
	if err != nil {
		return 0, err
	}

	for i := filled; i < ns; i++ {
		samples[i] = [2]float64{}
	}
	for i := range samples {
		buf = buf[format.EncodeSigned(buf, samples[i]):]
	}
	return ns * bytesPerSample, nil
}

var _ io.Reader = (*sampleReader)(nil)
