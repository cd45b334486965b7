package float

import (
	"fmt"
	"math/big"

	"github.com/calebcase/floatbits/integer"
	"github.com/zeebo/errs"
)

var (
	// Error is the error class for this package.
	Error = errs.Class("float")

	// ConfigError is the error class for unusable formats.
	ConfigError = errs.Class("config")
)

var one = big.NewInt(1)

// Format is a floating point format: one sign bit, ExponentWidth exponent
// bits and MantissaWidth mantissa bits.
type Format struct {
	ExponentWidth int
	MantissaWidth int
}

// Validate checks that the format can hold numbers.
func (f Format) Validate() error {
	if f.ExponentWidth < 1 {
		return ConfigError.New("exponent width must be at least 1: %d", f.ExponentWidth)
	}

	if f.MantissaWidth < 0 {
		return ConfigError.New("mantissa width must not be negative: %d", f.MantissaWidth)
	}

	return nil
}

// Width is the total number of bits, 1 + ExponentWidth + MantissaWidth.
func (f Format) Width() int {
	return 1 + f.ExponentWidth + f.MantissaWidth
}

// Excess is the exponent bias, 2^(ExponentWidth-1) - 1.
func (f Format) Excess() (*big.Int, error) {
	err := f.Validate()
	if err != nil {
		return nil, err
	}

	return integer.Excess(f.ExponentWidth)
}

// String returns the format in the 1.E.M notation used by exercises.
func (f Format) String() string {
	return fmt.Sprintf("1.%d.%d", f.ExponentWidth, f.MantissaWidth)
}
