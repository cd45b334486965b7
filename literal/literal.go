// Package literal parses the decimal number literals exercises are written
// in.
//
// The grammar is:
//
//	literal  = [ "-" ] digits [ "," digits ] | [ "-" ] "inf"
//	digits   = digit { digit }
//
// The comma separates the fractional digits. It is never a thousands
// separator.
package literal

import (
	"math/big"
	"strings"

	"github.com/calebcase/floatbits/decimal"
	"github.com/calebcase/floatbits/integer"
	"github.com/zeebo/errs"
)

// FormatError is the error class for literals that do not match the grammar.
var FormatError = errs.Class("format")

// Separator separates the integer digits from the fractional digits.
const Separator = ","

// Literal is a parsed decimal literal.
type Literal struct {
	// Text is the trimmed input.
	Text string

	// Infinite is true for "inf" and "-inf". Integer is zero and Fraction
	// is empty.
	Infinite bool

	// Integer is the integer part. Its sign is the sign of the whole
	// literal, including for "-0" and "-0,5".
	Integer integer.Block

	// Fraction holds the fractional digits verbatim (leading and trailing
	// zeros included). It is empty when the literal has no comma.
	Fraction string
}

// Negative returns true if the literal starts with a minus sign.
func (l *Literal) Negative() bool {
	return l.Integer.Negative
}

// HasFraction returns true if the literal has fractional digits.
func (l *Literal) HasFraction() bool {
	return len(l.Fraction) > 0
}

// FractionBlock returns the fractional digits as an exact decimal.
func (l *Literal) FractionBlock() (decimal.Block, error) {
	if !l.HasFraction() {
		return decimal.Block{Value: new(big.Int)}, nil
	}

	return decimal.Fraction(l.Fraction)
}

// IsZero returns true if the literal denotes zero, whatever its sign.
func (l *Literal) IsZero() bool {
	if l.Infinite || !l.Integer.IsZero() {
		return false
	}

	return strings.Trim(l.Fraction, "0") == ""
}

func (l *Literal) String() string {
	return l.Text
}

// Parse parses a decimal literal. Surrounding white space is ignored.
func Parse(s string) (l *Literal, err error) {
	text := strings.TrimSpace(s)

	parts := strings.Split(text, Separator)
	if len(parts) > 2 {
		return nil, FormatError.New("%q is not a rational number: more than one %q", s, Separator)
	}

	l = &Literal{Text: text}

	whole := parts[0]
	if strings.HasPrefix(whole, "-") {
		l.Integer.Negative = true
		whole = whole[1:]
	}

	if whole == "inf" {
		if len(parts) != 1 {
			return nil, FormatError.New("%q is not a rational number: infinity with fraction", s)
		}

		l.Infinite = true
		l.Integer.Value = new(big.Int)

		return l, nil
	}

	if !isDigits(whole) {
		return nil, FormatError.New("%q is not a rational number: invalid integer part %q", s, parts[0])
	}

	v, ok := new(big.Int).SetString(whole, 10)
	if !ok {
		return nil, FormatError.New("%q is not a rational number: invalid integer part %q", s, parts[0])
	}

	l.Integer.Value = v

	if len(parts) == 2 {
		if !isDigits(parts[1]) {
			return nil, FormatError.New("%q is not a rational number: invalid fractional part %q", s, parts[1])
		}

		l.Fraction = parts[1]
	}

	return l, nil
}

// isDigits returns true if s is a non-empty run of ASCII decimal digits.
func isDigits(s string) bool {
	if len(s) == 0 {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
