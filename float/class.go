package float

// Class is the kind of number a bit pattern holds.
type Class int

// Classes. NaN is only ever produced by Decode.
const (
	Zero Class = iota
	Infinity
	Overflow
	Normal
	NormalFraction
	Denormal
	Underflow
	NaN
)

var classNames = [...]string{
	Zero:           "zero",
	Infinity:       "infinity",
	Overflow:       "overflow",
	Normal:         "normal",
	NormalFraction: "normal fraction",
	Denormal:       "denormal",
	Underflow:      "underflow",
	NaN:            "nan",
}

func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return "unknown"
	}

	return classNames[c]
}
