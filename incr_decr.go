// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

// Pred/Succ (pure forms) and the in-place mutating forms: Grow backs
// `+=`, Shrink backs `-=`, Incr/Decr are the unit-step specializations,
// and MultAssign backs `*=` (spec.md §4.A).

var one = fromSignedMagnitude(false, []word{1})

// Pred returns v-1.
func Pred(v Int) Int {
	return Sub(v, one)
}

// Succ returns v+1.
func Succ(v Int) Int {
	return Add(v, one)
}

// PredTemp is Pred(v) with v dropped afterward (spec.md §4.A temp form).
func PredTemp(v Int) Int {
	return Pred(v)
}

// SuccTemp is Succ(v) with v dropped afterward (spec.md §4.A temp form).
func SuccTemp(v Int) Int {
	return Succ(v)
}

// Grow implements `v += w` in place (spec.md §4.A's "grow"): the
// receiver is replaced with a newly-canonicalized sum. Go's garbage
// collector retires the old backing array; there is no explicit
// OutOfMemory/free-and-null-sentinel path to express since allocation
// failure in Go is a fatal runtime condition, not a recoverable error
// (the one place this package's error model diverges from the original
// collaborator contract, recorded in DESIGN.md).
func (v *Int) Grow(w Int) {
	*v = Add(*v, w)
}

// Shrink implements `v -= w` in place.
func (v *Int) Shrink(w Int) {
	*v = Sub(*v, w)
}

// Incr implements `v++` in place.
func (v *Int) Incr() {
	*v = Succ(*v)
}

// Decr implements `v--` in place.
func (v *Int) Decr() {
	*v = Pred(*v)
}

// MultAssign implements `v *= w` in place.
func (v *Int) MultAssign(w Int) {
	*v = Mul(*v, w)
}
