package decimal

import (
	"math/big"
	"strconv"

	"github.com/calebcase/floatbits/bit"
	"github.com/zeebo/errs"
)

// Error is the error class for this package.
var Error = errs.Class("decimal")

var (
	one = big.NewInt(1)
	ten = big.NewInt(10)
)

// Block is an exact non-negative decimal number value * 10^scale.
type Block struct {
	Value *big.Int
	Scale int
}

// Fraction returns the block for the fractional digits of a decimal number.
// The digits are taken verbatim, so "25" is 0.25 and "025" is 0.025.
func Fraction(digits string) (b Block, err error) {
	if len(digits) == 0 {
		return b, Error.New("no fractional digits")
	}

	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return b, Error.New("invalid fractional digit %q at %d", digits[i], i)
		}
	}

	v, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return b, Error.New("invalid fractional digits: %q", digits)
	}

	return Block{
		Value: v,
		Scale: -len(digits),
	}, nil
}

// unit returns 1 expressed at the block's scale, i.e. 10^-scale. Positive
// scales have no integer unit and return nil.
func (b Block) unit() *big.Int {
	if b.Scale > 0 {
		return nil
	}

	return new(big.Int).Exp(ten, big.NewInt(int64(-b.Scale)), nil)
}

func (b Block) value() *big.Int {
	if b.Value == nil {
		return new(big.Int)
	}

	return b.Value
}

// IsZero returns true if the block is zero.
func (b Block) IsZero() bool {
	return b.value().Sign() == 0
}

// Double returns value * 2. The result is exact.
func (b Block) Double() Block {
	return Block{
		Value: new(big.Int).Lsh(b.value(), 1),
		Scale: b.Scale,
	}
}

// LessThanOne returns true if the block is less than one.
func (b Block) LessThanOne() bool {
	u := b.unit()
	if u == nil {
		return b.IsZero()
	}

	return b.value().Cmp(u) < 0
}

// SubtractOne returns value - 1. The block must not be less than one.
func (b Block) SubtractOne() (_ Block, err error) {
	if b.LessThanOne() {
		return b, Error.New("subtract one from value less than one: %s", b)
	}

	u := b.unit()
	if u == nil {
		u = new(big.Int).Exp(ten, big.NewInt(int64(b.Scale)), nil)

		v := new(big.Int).Mul(b.value(), u)

		return Block{Value: v.Sub(v, one)}, nil
	}

	return Block{
		Value: new(big.Int).Sub(b.value(), u),
		Scale: b.Scale,
	}, nil
}

// Next doubles the block and splits off the integer bit: One and the doubled
// value minus one if the doubled value is at least one, otherwise Zero and the
// doubled value. For blocks in [0, 1) this yields the next binary digit of the
// fraction and the remainder to continue from.
func (b Block) Next() (bit.Bit, Block) {
	d := b.Double()
	if d.LessThanOne() {
		return bit.Zero, d
	}

	// Can not fail: d is not less than one.
	r, _ := d.SubtractOne()

	return bit.One, r
}

// Rat returns the exact value as a rational number.
func (b Block) Rat() *big.Rat {
	if u := b.unit(); u != nil {
		return new(big.Rat).SetFrac(b.value(), u)
	}

	p := new(big.Int).Exp(ten, big.NewInt(int64(b.Scale)), nil)

	return new(big.Rat).SetInt(p.Mul(p, b.value()))
}

func (b Block) String() string {
	return b.value().String() + "e" + strconv.Itoa(b.Scale)
}

// Expansion produces the binary digits of a fraction one at a time. The
// expansion of a decimal fraction may not terminate; callers take as many
// bits as they have room for.
type Expansion struct {
	rest Block
}

// NewExpansion returns the expansion of b, which should be in [0, 1).
func NewExpansion(b Block) *Expansion {
	return &Expansion{rest: b}
}

// Next returns the next binary digit.
func (e *Expansion) Next() bit.Bit {
	var b bit.Bit

	b, e.rest = e.rest.Next()

	return b
}

// Take returns the next n binary digits. The expansion is truncated, never
// rounded.
func (e *Expansion) Take(n int) (s bit.String) {
	for i := 0; i < n; i++ {
		s.Add(e.Next())
	}

	return s
}

// Rest returns the part of the fraction not yet expanded, scaled back into
// [0, 1).
func (e *Expansion) Rest() Block {
	return e.rest
}
