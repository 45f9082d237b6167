// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

// Mul returns a*b, dispatching through mulMagnitude's three-tier
// schoolbook/Karatsuba/FFT strategy (spec.md §4.A / §4.M).
func Mul(a, b Int) Int {
	neg := a.IsNegative() != b.IsNegative()
	mag := mulMagnitude(a.magnitude(), b.magnitude())
	return fromSignedMagnitude(neg, mag)
}

// Square returns v*v using the specialized doubling-trick squaring
// routine (spec.md §4.M), which a plain Mul(v, v) would not take
// advantage of since Mul has no way to know its two operands alias.
func Square(v Int) Int {
	return fromSignedMagnitude(false, squareMagnitude(v.magnitude()))
}

// Pow returns base^exp (spec.md §4.S ipow).
func Pow(base Int, exp int) (Int, error) {
	return ipow(base, exp)
}
