package nco

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrAliasing is returned by SetFrequencyChecked for frequencies at or above the Nyquist limit.
var ErrAliasing = errors.New("nco: frequency at or above nyquist (|f| >= 0.5)")

// ConstructionError reports a table-size exponent that New cannot honour.
type ConstructionError struct {
	TableBits uint
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("nco: invalid table size exponent %d (want %d..%d)", e.TableBits, MinTableBits, MaxTableBits)
}
