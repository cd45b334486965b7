// Package decimal provides exact base 10 numbers and their binary expansion.
//
// The equation for a decimal number is:
//
//	number = value * 10 ^ scale
//
// Where value is an unscaled non-negative integer and scale is a base 10
// exponent. For example:
//
//	0.25 = 25 * 10^-2
//
// Binary Expansion
//
// The binary digits of a fraction in [0, 1) are found by doubling: if the
// doubled number is at least one the next digit is 1 and one is subtracted,
// otherwise the next digit is 0. With a scale of -k one is 10^k, so every step
// is integer arithmetic on value and nothing is ever rounded:
//
//	| step | value * 10^-2 | doubled | bit | rest |
//	|------|---------------|---------|-----|------|
//	|    1 |          0.25 |    0.50 |   0 | 0.50 |
//	|    2 |          0.50 |    1.00 |   1 | 0.00 |
//	|    3 |          0.00 |    0.00 |   0 | 0.00 |
//	|------|---------------|---------|-----|------|
//
// A fraction like 0.1 has no finite binary expansion. The Expansion type
// produces digits lazily and callers stop after the number of bits they can
// store, which truncates the value.
package decimal
