package float

import (
	"math/big"

	"github.com/calebcase/floatbits/bit"
	"github.com/calebcase/floatbits/integer"
)

// Value is the number a bit pattern holds.
type Value struct {
	Negative bool
	Class    Class

	// Magnitude is the exact absolute value. It is nil for Infinity and
	// NaN.
	Magnitude *big.Rat
}

func (v Value) String() string {
	sign := ""
	if v.Negative {
		sign = "-"
	}

	switch v.Class {
	case Infinity:
		return sign + "inf"
	case NaN:
		return "nan"
	}

	return sign + v.Magnitude.RatString()
}

// Decode reads a bit pattern of the given format. Non-zero exponent fields
// have an implicit leading 1, the all zero exponent field has an explicit
// leading 0 and the exponent 1 - bias.
func Decode(s bit.String, f Format) (v Value, err error) {
	defer Error.WrapP(&err)

	excess, err := f.Excess()
	if err != nil {
		return v, err
	}

	if s.Len() != f.Width() {
		return v, Error.New("%d bits for format %s, want %d", s.Len(), f, f.Width())
	}

	e, m := f.ExponentWidth, f.MantissaWidth

	v.Negative = s.At(0) == bit.One
	expBits := s.Slice(1, 1+e)
	mantBits := s.Slice(1+e, 1+e+m)

	exponent := integer.Value(expBits)
	mantissa := integer.Value(mantBits)

	switch {
	case expBits.All(bit.One):
		if mantBits.All(bit.Zero) {
			v.Class = Infinity
		} else {
			v.Class = NaN
		}

		return v, nil
	case exponent.Sign() == 0 && mantissa.Sign() == 0:
		v.Class = Zero
		v.Magnitude = new(big.Rat)

		return v, nil
	case exponent.Sign() == 0:
		v.Class = Denormal

		// 0.mantissa * 2^(1-bias)
		exponent.SetInt64(1)
	case exponent.Cmp(excess) >= 0:
		v.Class = Normal
		mantissa.Add(mantissa, new(big.Int).Lsh(one, uint(m)))
	default:
		v.Class = NormalFraction
		mantissa.Add(mantissa, new(big.Int).Lsh(one, uint(m)))
	}

	// value = mantissa * 2^(exponent - bias - m)
	shift := exponent.Sub(exponent, excess)
	shift.Sub(shift, big.NewInt(int64(m)))

	if !shift.IsInt64() {
		return v, Error.New("exponent out of range: %d", shift)
	}

	v.Magnitude = new(big.Rat).SetInt(mantissa)

	k := shift.Int64()
	switch {
	case k > 0:
		v.Magnitude.Mul(v.Magnitude, new(big.Rat).SetInt(new(big.Int).Lsh(one, uint(k))))
	case k < 0:
		v.Magnitude.Quo(v.Magnitude, new(big.Rat).SetInt(new(big.Int).Lsh(one, uint(-k))))
	}

	return v, nil
}

// Rat returns the signed value. It is nil for Infinity and NaN.
func (v Value) Rat() *big.Rat {
	if v.Magnitude == nil {
		return nil
	}

	r := new(big.Rat).Set(v.Magnitude)
	if v.Negative {
		r.Neg(r)
	}

	return r
}
