// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

// GCD returns the greatest common divisor of a and b (always
// non-negative), per spec.md §4.B: inputs are first replaced by their
// absolute values, binary GCD handles comparable-size operands, and the
// classical Euclidean a,b := b, a mod b loop takes over when operand
// sizes diverge by more than gcdSizeSkewLimbs limbs (big_rtl.c's bigGcd
// dispatch, SPEC_FULL.md §4).
func GCD(a, b Int) Int {
	g := gcdMagnitude(a.magnitude(), b.magnitude())
	return fromSignedMagnitude(false, g)
}

func gcdMagnitude(a, b []word) []word {
	a = trimMagnitude(a)
	b = trimMagnitude(b)
	if isZeroMagnitude(a) {
		return trimMagnitude(b)
	}
	if isZeroMagnitude(b) {
		return trimMagnitude(a)
	}
	if sizeSkew(a, b) > gcdSizeSkewLimbs {
		return gcdEuclidean(a, b)
	}
	return gcdBinary(a, b)
}

func sizeSkew(a, b []word) int {
	d := len(a) - len(b)
	if d < 0 {
		d = -d
	}
	return d
}

// gcdEuclidean runs the classical a,b := b, a mod b loop, used when
// operand sizes are too skewed for binary GCD's shift-heavy inner loop to
// pay off.
func gcdEuclidean(a, b []word) []word {
	for !isZeroMagnitude(b) {
		_, r := divModMagnitude(a, b)
		a, b = b, r
	}
	return trimMagnitude(a)
}

// gcdBinary runs Stein's binary GCD: strip common factors of two, then
// repeatedly strip b's remaining factors of two and subtract-and-swap
// until b reaches zero.
func gcdBinary(a, b []word) []word {
	shift := 0
	for isEvenMagnitude(a) && isEvenMagnitude(b) {
		a = shiftRightMagnitudeBy1(a)
		b = shiftRightMagnitudeBy1(b)
		shift++
	}
	for isEvenMagnitude(a) {
		a = shiftRightMagnitudeBy1(a)
	}
	for !isZeroMagnitude(b) {
		for isEvenMagnitude(b) {
			b = shiftRightMagnitudeBy1(b)
		}
		if compareMagnitude(a, b) > 0 {
			a, b = b, a
		}
		b = subMagnitude(b, a)
	}
	return shiftLeftMagnitude(a, shift)
}

func isEvenMagnitude(mag []word) bool {
	return mag[0]&1 == 0
}

func shiftRightMagnitudeBy1(mag []word) []word {
	result := make([]word, len(mag))
	copy(result, mag)
	shiftRightSmall(result, 1)
	return trimMagnitude(result)
}

// shiftLeftMagnitude performs an unsigned (zero-filled both ends) left
// shift of a magnitude by k bits, used to restore the common factor of
// two gcdBinary stripped off up front.
func shiftLeftMagnitude(mag []word, k int) []word {
	if k == 0 {
		return trimMagnitude(mag)
	}
	q, r := k/wordBits, uint(k%wordBits)
	result := allocLimbs(len(mag) + q + 1)
	copy(result[q:], mag)
	if r != 0 {
		shiftLeftSmall(result[q:], r)
	}
	return trimMagnitude(result)
}
