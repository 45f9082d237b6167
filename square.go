// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

import "math/bits"

// squareMagnitude computes a*a using the off-diagonal doubling trick
// (spec.md §4.M): the cross terms a[i]*a[j] for i<j each appear twice in
// the full product, so they are accumulated once and doubled, while the
// diagonal terms a[i]*a[i] are added in separately. This roughly halves
// the number of word multiplications against calling mulSchoolbook(a, a).
func squareMagnitude(a []word) []word {
	a = trimMagnitude(a)
	n := len(a)
	if isZeroMagnitude(a) {
		return allocLimbs(1)
	}
	result := allocLimbs(2 * n)

	// Off-diagonal sum: for each i, accumulate a[i] * a[i+1:] once at
	// offset 2i+1.
	for i := 0; i < n-1; i++ {
		if a[i] == 0 {
			continue
		}
		window := result[2*i+1 : 2*i+1+(n-i-1)]
		carry := addMulVWW(window, a[i+1:], a[i])
		j := 2*i + 1 + (n - i - 1)
		for carry != 0 && j < len(result) {
			sum := dword(result[j]) + dword(carry)
			result[j] = loWord(sum)
			carry = hiWord(sum)
			j++
		}
	}

	// Double the off-diagonal sum in place, tracking the carry produced
	// by the top bit shifted out of each limb.
	var carry word
	for i := range result {
		v := result[i]
		result[i] = v<<1 | carry
		carry = v >> (wordBits - 1)
	}

	// Add in the diagonal terms a[i]*a[i] at offset 2i.
	var acc word
	for i := 0; i < n; i++ {
		hi, lo := bits.Mul32(a[i], a[i])
		sum := dword(result[2*i]) + dword(lo) + dword(acc)
		result[2*i] = loWord(sum)
		carry1 := hiWord(sum)
		sum2 := dword(result[2*i+1]) + dword(hi) + dword(carry1)
		result[2*i+1] = loWord(sum2)
		acc = hiWord(sum2)
	}
	for i := 2 * n; acc != 0 && i < len(result); i++ {
		sum := dword(result[i]) + dword(acc)
		result[i] = loWord(sum)
		acc = hiWord(sum)
	}

	return trimMagnitude(result)
}
