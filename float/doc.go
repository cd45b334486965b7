// Package float encodes decimal literals into the bits of a configurable
// floating point format.
//
// A format with exponent width E and mantissa width M is laid out as:
//
//	| 0    | 1 ... E  | E+1 ... E+M |
//	|------|----------|-------------|
//	| sign | exponent | mantissa    |
//	|------|----------|-------------|
//
// The exponent is stored with a bias (excess) of 2^(E-1) - 1. A non-zero
// exponent field has an implicit leading 1 in front of the mantissa. An all
// zero exponent field holds zero or a denormalized number whose mantissa has an
// explicit leading 0 and the exponent 1 - bias. An all one exponent field with
// an all zero mantissa is infinity.
//
// Encoding is exact: the binary digits of the literal are computed with
// integer arithmetic on the decimal digits, and the only loss of precision is
// the truncation to M mantissa bits. Values too large for the exponent field
// become infinity. Values too small for even the smallest denormal become
// zero.
//
// Examples
//
// With E = 4 (bias 7) and M = 3:
//
//	| literal | sign | exponent | mantissa | class           |
//	|---------|------|----------|----------|-----------------|
//	|     1,5 |    0 |     0111 |      100 | normal          |
//	|    -1,5 |    1 |     0111 |      100 | normal          |
//	|     0,5 |    0 |     0110 |      000 | normal fraction |
//	|     255 |    0 |     1110 |      111 | normal          |
//	|     256 |    0 |     1111 |      000 | overflow        |
//	| 0,00781 |    0 |     0000 |      011 | denormal        |
//	|       0 |    0 |     0000 |      000 | zero            |
//	|     inf |    0 |     1111 |      000 | infinity        |
//	|    -inf |    1 |     1111 |      000 | infinity        |
//	|---------|------|----------|----------|-----------------|
//
// The 255 example shows truncation: 255 is 1.1111111 * 2^7, but only the first
// three bits after the leading 1 fit.
package float
