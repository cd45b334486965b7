package float

import (
	"math/big"

	"github.com/calebcase/floatbits/bit"
	"github.com/calebcase/floatbits/decimal"
	"github.com/calebcase/floatbits/integer"
	"github.com/calebcase/floatbits/literal"
)

// Request is a literal to encode in a format.
type Request struct {
	Literal string
	Format  Format
}

// Result is an encoded literal.
type Result struct {
	Literal string
	Format  Format
	Class   Class
	Bits    bit.String
}

// String returns the bits grouped into sign, exponent and mantissa.
func (r Result) String() string {
	return r.Bits.Group(1, r.Format.ExponentWidth)
}

// Encode returns the bits of the decimal literal in the given format.
func Encode(text string, f Format) (_ bit.String, err error) {
	r, err := EncodeRequest(Request{
		Literal: text,
		Format:  f,
	})
	if err != nil {
		return bit.String{}, err
	}

	return r.Bits, nil
}

// EncodeRequest encodes a single request.
func EncodeRequest(r Request) (_ Result, err error) {
	defer Error.WrapP(&err)

	err = r.Format.Validate()
	if err != nil {
		return Result{}, err
	}

	l, err := literal.Parse(r.Literal)
	if err != nil {
		return Result{}, err
	}

	p, err := classify(l, r.Format)
	if err != nil {
		return Result{}, err
	}

	bits, err := p.build()
	if err != nil {
		return Result{}, err
	}

	if bits.Len() != r.Format.Width() {
		return Result{}, Error.New("encoded %q to %d bits, want %d", r.Literal, bits.Len(), r.Format.Width())
	}

	return Result{
		Literal: r.Literal,
		Format:  r.Format,
		Class:   p.class,
		Bits:    bits,
	}, nil
}

// plan is everything needed to lay out the bits of one literal.
type plan struct {
	class    Class
	format   Format
	negative bool

	// exponent is the stored exponent for Normal and NormalFraction and the
	// (non-positive) denormal exponent for Denormal.
	exponent *big.Int

	// lead holds the bits of the integer part after its leading 1.
	lead bit.String

	// rest produces the remaining fraction bits. For NormalFraction and
	// Denormal the first 1 bit has already been consumed.
	rest *decimal.Expansion
}

func classify(l *literal.Literal, f Format) (p *plan, err error) {
	excess, err := f.Excess()
	if err != nil {
		return nil, err
	}

	p = &plan{
		format:   f,
		negative: l.Negative(),
	}

	switch {
	case l.Infinite:
		p.class = Infinity
	case !l.Integer.IsZero():
		// The integer part must fit a one's complement number of
		// 2^(E-1)+1 bits, which keeps the exponent below all ones.
		length := new(big.Int).Lsh(one, uint(f.ExponentWidth-1))
		length.Add(length, one)

		if integer.OutOfBoundsOnesComplement(l.Integer.Value, length) {
			p.class = Overflow

			return p, nil
		}

		bits, err := integer.Unsigned(l.Integer.Value, 0)
		if err != nil {
			return nil, err
		}

		frac, err := l.FractionBlock()
		if err != nil {
			return nil, err
		}

		p.class = Normal
		p.lead = bits.Slice(1, bits.Len())
		p.exponent = excess.Add(excess, big.NewInt(int64(p.lead.Len())))
		p.rest = decimal.NewExpansion(frac)
	case l.IsZero():
		p.class = Zero
	default:
		frac, err := l.FractionBlock()
		if err != nil {
			return nil, err
		}

		rest := decimal.NewExpansion(frac)
		lowest := big.NewInt(int64(1 - f.MantissaWidth))
		exponent := excess.Sub(excess, one)

		for {
			if exponent.Cmp(lowest) < 0 {
				p.class = Underflow

				return p, nil
			}

			if rest.Next() == bit.One {
				break
			}

			exponent.Sub(exponent, one)
		}

		p.exponent = exponent
		p.rest = rest

		if exponent.Sign() > 0 {
			p.class = NormalFraction
		} else {
			p.class = Denormal
		}
	}

	return p, nil
}

func (p *plan) build() (s bit.String, err error) {
	e, m := p.format.ExponentWidth, p.format.MantissaWidth

	if p.negative {
		s.Add(bit.One)
	} else {
		s.Add(bit.Zero)
	}

	switch p.class {
	case Infinity, Overflow:
		s.Fill(bit.One, e)
		s.Fill(bit.Zero, m)
	case Zero, Underflow:
		s.Fill(bit.Zero, e+m)
	case Normal:
		exp, err := integer.Unsigned(p.exponent, e)
		if err != nil {
			return s, err
		}
		s.Append(exp)

		lead := p.lead
		if lead.Len() > m {
			lead = lead.Slice(0, m)
		}
		s.Append(lead)
		s.Append(p.rest.Take(m - lead.Len()))
	case NormalFraction:
		exp, err := integer.Unsigned(p.exponent, e)
		if err != nil {
			return s, err
		}
		s.Append(exp)
		s.Append(p.rest.Take(m))
	case Denormal:
		// The exponent is in [1-m, 0]. The zero exponent field and the
		// leading zeros of the mantissa are one run of zeros.
		d := int(p.exponent.Int64())

		s.Fill(bit.Zero, e-d)
		s.Add(bit.One)
		s.Append(p.rest.Take(m + d - 1))
	default:
		return s, Error.New("unexpected class: %s", p.class)
	}

	return s, nil
}
