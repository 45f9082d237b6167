// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

// QuoRem returns the truncating (round-toward-zero) quotient and
// remainder of a/b: q*b+r == a, with r taking the sign of a (or zero).
// Both Div and Rem are thin projections of this shared computation
// (spec.md §4.M "Remainder uses the same algorithm but returns the
// residue instead of the quotient").
//
// The classical "dividend shorter than divisor" shortcut spec.md §4.M
// warns about (the -2^(k*W-1) / +2^(k*W-1) = -1 edge case, where the
// positive operand's canonical two's-complement form needs one more limb
// than the negative operand's even though their magnitudes are equal)
// never needs special-casing here: divModMagnitude compares true
// magnitudes via compareMagnitude, not limb counts, so the equal-
// magnitude case is detected correctly regardless of how many limbs
// either operand's signed representation happens to occupy.
func QuoRem(a, b Int) (q, r Int, err error) {
	const op = "QuoRem"
	if b.IsZero() {
		return Int{}, Int{}, raisef(op, ErrNumeric, "division by zero")
	}
	qm, rm := divModMagnitude(a.magnitude(), b.magnitude())
	qNeg := a.IsNegative() != b.IsNegative()
	rNeg := a.IsNegative()
	return fromSignedMagnitude(qNeg, qm), fromSignedMagnitude(rNeg, rm), nil
}

// Div returns the truncating quotient a/b.
func Div(a, b Int) (Int, error) {
	q, _, err := QuoRem(a, b)
	return q, err
}

// Rem returns the truncating remainder of a/b (same sign as a, or zero).
func Rem(a, b Int) (Int, error) {
	_, r, err := QuoRem(a, b)
	return r, err
}

// Mod returns a's residue modulo b with the sign of b (or zero),
// derived from Rem by adding the divisor back in when the dividend and
// divisor signs differ and the remainder is nonzero (spec.md §4.M).
func Mod(a, b Int) (Int, error) {
	r, err := Rem(a, b)
	if err != nil {
		return Int{}, err
	}
	if !r.IsZero() && a.IsNegative() != b.IsNegative() {
		r = Add(r, b)
	}
	return r, nil
}

// MDiv returns the flooring (round-toward-negative-infinity) quotient of
// a/b, satisfying a == MDiv(a,b)*b + Mod(a,b) with 0 <= Mod < |b| when
// b>0 (spec.md §4.M).
func MDiv(a, b Int) (Int, error) {
	q, r, err := QuoRem(a, b)
	if err != nil {
		return Int{}, err
	}
	if !r.IsZero() && a.IsNegative() != b.IsNegative() {
		q = Sub(q, fromSignedMagnitude(false, []word{1}))
	}
	return q, nil
}
