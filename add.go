// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

// Add returns a+b (spec.md §4.A pure form). Operands are borrowed; the
// result is freshly allocated. Equal-sign operands add magnitudes
// directly; opposite-sign operands subtract the smaller magnitude from
// the larger and take the sign of the larger, per the data-flow spec.md
// §2 describes for every public arithmetic entry point.
func Add(a, b Int) Int {
	aNeg, bNeg := a.IsNegative(), b.IsNegative()
	am, bm := a.magnitude(), b.magnitude()

	if aNeg == bNeg {
		return fromSignedMagnitude(aNeg, addMagnitude(am, bm))
	}
	switch compareMagnitude(am, bm) {
	case 0:
		return Zero()
	case 1:
		return fromSignedMagnitude(aNeg, subMagnitude(am, bm))
	default:
		return fromSignedMagnitude(bNeg, subMagnitude(bm, am))
	}
}

// AddTemp is semantically Add(a, b) with a dropped afterward (spec.md
// §4.A "temp form"); it exists so callers chaining computations can
// signal that a's storage is no longer needed. Add itself never mutates
// its operands, so AddTemp is expressed directly in terms of it.
func AddTemp(a, b Int) Int {
	return Add(a, b)
}
