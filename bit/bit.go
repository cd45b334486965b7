// Package bit provides single bits and ordered bit strings.
//
// A String is written most significant bit first. It only grows: bits are
// added one at a time or appended as a sequence. There is no arithmetic.
package bit

import (
	"strings"

	"github.com/zeebo/errs"
)

// Error is the error class for this package.
var Error = errs.Class("bit")

// Bit is a single binary digit.
type Bit uint8

// Bit values.
const (
	Zero Bit = 0
	One  Bit = 1
)

// IsZero returns true if the bit is Zero.
func (b Bit) IsZero() bool {
	return b == Zero
}

func (b Bit) String() string {
	if b == Zero {
		return "0"
	}

	return "1"
}

// String is an ordered sequence of bits.
type String struct {
	bits []Bit
}

// New returns a string holding the given bits.
func New(bits ...Bit) String {
	return String{bits: append([]Bit(nil), bits...)}
}

// Repeat returns a string of n copies of b.
func Repeat(b Bit, n int) String {
	s := String{}
	s.Fill(b, n)

	return s
}

// Parse reads the textual form of a string: a sequence of '0' and '1'
// characters. Spaces are ignored so grouped output can be read back.
func Parse(text string) (s String, err error) {
	for i, c := range text {
		switch c {
		case '0':
			s.Add(Zero)
		case '1':
			s.Add(One)
		case ' ':
		default:
			return String{}, Error.New("invalid character %q at %d", c, i)
		}
	}

	return s, nil
}

// Add appends a single bit.
func (s *String) Add(b Bit) {
	s.bits = append(s.bits, b)
}

// Append appends all bits of o.
func (s *String) Append(o String) {
	s.bits = append(s.bits, o.bits...)
}

// Fill appends n copies of b.
func (s *String) Fill(b Bit, n int) {
	for i := 0; i < n; i++ {
		s.bits = append(s.bits, b)
	}
}

// Len is the number of bits.
func (s String) Len() int {
	return len(s.bits)
}

// At returns the bit at position i counted from the most significant bit.
func (s String) At(i int) Bit {
	return s.bits[i]
}

// Slice returns the bits in [i, j) as a new string.
func (s String) Slice(i, j int) String {
	return New(s.bits[i:j]...)
}

// Bits returns a copy of the bits.
func (s String) Bits() []Bit {
	return append([]Bit(nil), s.bits...)
}

// All returns true if every bit equals b. An empty string matches any bit.
func (s String) All(b Bit) bool {
	for _, v := range s.bits {
		if v != b {
			return false
		}
	}

	return true
}

func (s String) String() string {
	var sb strings.Builder

	sb.Grow(len(s.bits))
	for _, b := range s.bits {
		sb.WriteString(b.String())
	}

	return sb.String()
}

// Group renders the string with a space after each group. Bits beyond the
// last width form a final group.
//
//	New(0, 0, 1, 1, 1, 1, 0, 0).Group(1, 4) == "0 0111 100"
func (s String) Group(widths ...int) string {
	var sb strings.Builder

	text := s.String()
	for _, w := range widths {
		if w > len(text) {
			w = len(text)
		}

		sb.WriteString(text[:w])
		text = text[w:]

		if len(text) > 0 {
			sb.WriteByte(' ')
		}
	}
	sb.WriteString(text)

	return sb.String()
}

// MarshalText implements encoding.TextMarshaler.
func (s String) MarshalText() (text []byte, err error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *String) UnmarshalText(text []byte) (err error) {
	p, err := Parse(string(text))
	if err != nil {
		return err
	}

	*s = p

	return nil
}
