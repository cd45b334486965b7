// Package integer provides the unsigned binary and exponent bias arithmetic
// used when laying out floating point fields.
package integer

import (
	"math/big"

	"github.com/calebcase/floatbits/bit"
	"github.com/zeebo/errs"
)

// Error is the error class for this package.
var Error = errs.Class("integer")

var one = big.NewInt(1)

// Block is a signed integer held as magnitude and sign. The sign is kept
// apart from the magnitude so that negative zero can be represented.
type Block struct {
	Value    *big.Int
	Negative bool
}

// IsZero returns true if the magnitude is zero (regardless of sign).
func (b Block) IsZero() bool {
	return b.Value == nil || b.Value.Sign() == 0
}

// Int returns the signed value. Negative zero becomes zero.
func (b Block) Int() *big.Int {
	i := new(big.Int)
	if b.Value != nil {
		i.Set(b.Value)
	}

	if b.Negative {
		i.Neg(i)
	}

	return i
}

// Excess returns the bias 2^(width-1) - 1 for an exponent field of the given
// width.
func Excess(width int) (_ *big.Int, err error) {
	if width < 1 {
		return nil, Error.New("invalid exponent width: %d", width)
	}

	e := new(big.Int).Lsh(one, uint(width-1))

	return e.Sub(e, one), nil
}

// Unsigned returns the unsigned binary representation of v. If width is zero
// the representation is minimal (zero is a single 0 bit), otherwise it is
// padded with leading zeros to exactly width bits.
func Unsigned(v *big.Int, width int) (s bit.String, err error) {
	if v.Sign() < 0 {
		return s, Error.New("negative value: %d", v)
	}

	if width < 0 {
		return s, Error.New("invalid width: %d", width)
	}

	n := v.BitLen()
	if n == 0 && width == 0 {
		n = 1
	}

	if width > 0 {
		if n > width {
			return s, Error.New("%d does not fit in %d bits", v, width)
		}

		n = width
	}

	for i := n - 1; i >= 0; i-- {
		s.Add(bit.Bit(v.Bit(i)))
	}

	return s, nil
}

// Value reads s as an unsigned binary number.
func Value(s bit.String) *big.Int {
	v := new(big.Int)
	for i := 0; i < s.Len(); i++ {
		v.Lsh(v, 1)
		if s.At(i) == bit.One {
			v.SetBit(v, 0, 1)
		}
	}

	return v
}

// OutOfBoundsOnesComplement returns true if the magnitude of v can not be
// represented in a one's complement number of the given bit length. The
// representable range is ±(2^(length-1) - 1).
func OutOfBoundsOnesComplement(v *big.Int, length *big.Int) bool {
	if length.Sign() <= 0 {
		return true
	}

	// |v| <= 2^(length-1) - 1 exactly when |v| has at most length-1 bits.
	bits := big.NewInt(int64(v.BitLen()))

	return bits.Cmp(new(big.Int).Sub(length, one)) > 0
}
