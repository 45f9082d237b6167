// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

// Signed-digit fast paths (spec.md §4.S): operations specialized for a
// single machine-word operand, avoiding the allocation and generality of
// the full magnitude path when it isn't needed.

// multiplyBySignedLimb computes v * n where n is a signed machine word.
// It combines the signs of v and n into the result sign, takes v's
// magnitude, multiplies it by |n| with one addMulVWW pass, and rebuilds
// the signed result with fromSignedMagnitude. The negations run as
// separate passes before and after the multiply; they are not fused into
// it, and there are no per-sign-combination specializations.
func multiplyBySignedLimb(v Int, n int32) Int {
	if n == 0 || v.IsZero() {
		return Zero()
	}

	negative := v.IsNegative()
	var limb word
	if n < 0 {
		negative = !negative
		limb = word(uint32(-int64(n)))
	} else {
		limb = word(n)
	}

	mag := v.magnitude()
	result := allocLimbs(len(mag) + 1)
	result[len(mag)] = addMulVWW(result[:len(mag)], mag, limb)
	return fromSignedMagnitude(negative, result)
}

// ipow computes base^exp for exp >= 0, raising Numeric for negative
// exponents (spec.md §4.S). When base magnitude fits one limb and is a
// power of two, it delegates to leftShiftOne; otherwise it runs
// square-and-multiply on magnitudes.
func ipow(base Int, exp int) (Int, error) {
	const op = "ipow"
	if exp < 0 {
		return Int{}, raisef(op, ErrNumeric, "negative exponent %d", exp)
	}
	if exp == 0 {
		return fromSignedMagnitude(false, []word{1}), nil
	}
	if exp == 1 {
		return fromLimbs(base.clone()), nil
	}

	mag := base.magnitude()
	if len(mag) == 1 && isPowerOfTwo(mag[0]) {
		shift := mostSignificantBit(mag[0])
		negative := base.IsNegative() && exp%2 != 0
		return leftShiftOne(shift*exp, negative), nil
	}

	result := []word{1}
	b := mag
	e := exp
	for e > 0 {
		if e&1 != 0 {
			result = mulMagnitude(result, b)
		}
		e >>= 1
		if e > 0 {
			b = mulMagnitude(b, b)
		}
	}

	negative := base.IsNegative() && exp%2 != 0
	return fromSignedMagnitude(negative, result), nil
}

// isPowerOfTwo reports whether x is a nonzero power of two.
func isPowerOfTwo(x word) bool {
	return x != 0 && x&(x-1) == 0
}
