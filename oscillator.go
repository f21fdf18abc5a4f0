package nco

import (
	"math"

	"github.com/pkg/errors"
)

const (
	// PhaseBits is the width of the phase word. The phase accumulator and the phase increment
	// are both uint32, and the full uint32 range is one rotation.
	PhaseBits = 32

	// OneRotation is the phase word range (2^PhaseBits) as a float, so that frequency scaling
	// stays in range.
	OneRotation = float64(1 << PhaseBits)

	// MinTableBits and MaxTableBits bound the table-size exponent accepted by New. At least one
	// bit of the phase word is always left below the index window.
	MinTableBits = 1
	MaxTableBits = PhaseBits - 2
)

// Oscillator is a numerically controlled oscillator.
//
// The zero value is not usable, create Oscillators with New. An Oscillator is not safe for
// concurrent use: guard it with a lock (see speaker.Lock) when one goroutine reconfigures the
// frequency while another pulls samples.
type Oscillator struct {
	bits   uint
	shift  uint
	mask   uint32
	table  []float64
	phase  uint32
	dphase uint32
}

// New creates an Oscillator with a sine table of 2^tableBits entries. The phase and the phase
// increment both start at zero, so the Oscillator is silent until SetFrequency is called.
//
// It returns a *ConstructionError if tableBits is outside [MinTableBits, MaxTableBits].
func New(tableBits uint) (*Oscillator, error) {
	if tableBits < MinTableBits || tableBits > MaxTableBits {
		return nil, errors.WithStack(&ConstructionError{TableBits: tableBits})
	}
	n := 1 << tableBits
	table := make([]float64, n)
	for k := range table {
		table[k] = math.Sin(2 * math.Pi * float64(k) / float64(n))
	}
	return &Oscillator{
		bits:  tableBits,
		shift: PhaseBits - tableBits,
		mask:  uint32(n - 1),
		table: table,
	}, nil
}

// SetFrequency sets the frequency in cycles per sample (real frequency divided by the sample
// rate). The phase is left untouched, so the waveform continues without a discontinuity.
//
// The increment is f*OneRotation truncated toward zero and wrapped into the phase word, which
// biases non-exact frequencies slightly toward zero. Negative frequencies run the phase
// backwards. No range check is made: |f| >= 0.5 aliases, and non-finite values silence the
// Oscillator.
func (o *Oscillator) SetFrequency(f float64) {
	o.dphase = increment(f)
}

// SetFrequencyHz sets the frequency in Hz relative to the sample rate sr.
func (o *Oscillator) SetFrequencyHz(hz float64, sr SampleRate) {
	o.SetFrequency(hz / float64(sr))
}

// SetFrequencyChecked is like SetFrequency, but rejects frequencies that would alias. On error
// the previous frequency stays in effect.
func (o *Oscillator) SetFrequencyChecked(f float64) error {
	if math.IsNaN(f) || math.Abs(f) >= 0.5 {
		return errors.Wrapf(ErrAliasing, "frequency %v", f)
	}
	o.SetFrequency(f)
	return nil
}

func increment(f float64) uint32 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	x := math.Trunc(math.Mod(f*OneRotation, OneRotation))
	return uint32(int64(x))
}

// NextSample advances the phase by one increment and returns the table entry addressed by the
// top TableBits bits of the new phase.
func (o *Oscillator) NextSample() float64 {
	o.phase += o.dphase
	index := (o.phase >> o.shift) & o.mask
	return o.table[index]
}

// Stream fills both channels of samples with consecutive oscillator output. It never drains.
func (o *Oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		v := o.NextSample()
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

// Err always returns nil.
func (o *Oscillator) Err() error {
	return nil
}

// TableBits returns the table-size exponent.
func (o *Oscillator) TableBits() uint { return o.bits }

// Len returns the number of table entries, 2^TableBits.
func (o *Oscillator) Len() int { return len(o.table) }

// Mask returns the index mask, Len()-1.
func (o *Oscillator) Mask() uint32 { return o.mask }

// Phase returns the current phase word.
func (o *Oscillator) Phase() uint32 { return o.phase }

// Increment returns the per-sample phase increment.
func (o *Oscillator) Increment() uint32 { return o.dphase }

// At returns the k-th table entry.
func (o *Oscillator) At(k int) float64 { return o.table[k] }
