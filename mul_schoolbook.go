// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

// mulSchoolbook computes the full n+m-limb product of magnitudes a and b
// with the classical O(n*m) algorithm (spec.md §4.M), row by row: for
// each nonzero limb b[i] it runs one addMulVWW pass adding a*b[i] into
// the result at offset i and stores that row's carry limb at i+len(a).
// It does not accumulate column by column; addMulVWW's one-limb carry
// is enough for each row, mirroring the teacher's dispatch-driven
// mpnAddMulVWW being the sole carry-sensitive primitive in the stack.
func mulSchoolbook(a, b []word) []word {
	a = trimMagnitude(a)
	b = trimMagnitude(b)
	if isZeroMagnitude(a) || isZeroMagnitude(b) {
		return allocLimbs(1)
	}
	result := allocLimbs(len(a) + len(b))
	for i, bi := range b {
		if bi == 0 {
			continue
		}
		carry := addMulVWW(result[i:i+len(a)], a, bi)
		result[i+len(a)] = carry
	}
	return trimMagnitude(result)
}
