// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

// Neg returns -v.
func Neg(v Int) Int {
	if v.IsZero() {
		return Zero()
	}
	return fromSignedMagnitude(!v.IsNegative(), v.magnitude())
}

// Abs returns |v|.
func Abs(v Int) Int {
	if v.IsNegative() {
		return Neg(v)
	}
	return fromLimbs(v.clone())
}

// Sub returns a-b, defined as Add(a, Neg(b)) (spec.md §4.A pure form).
func Sub(a, b Int) Int {
	return Add(a, Neg(b))
}

// SubTemp is Sub(a, b) with a dropped afterward (spec.md §4.A "sbtrTemp"
// temp form).
func SubTemp(a, b Int) Int {
	return Sub(a, b)
}
