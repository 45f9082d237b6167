// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

import (
	"math/big"

	"github.com/remyoudompheng/bigfft"
)

// mulMagnitude is the multiply entry point used by every caller above the
// M layer: it picks schoolbook, Karatsuba, or bigfft's FFT multiply by
// operand size, the three-tier dispatch spec.md §4.M describes (SPEC_FULL.md
// §3 wires github.com/remyoudompheng/bigfft in as the tier above Karatsuba,
// the same dependency several of the retrieved manifests pull in for
// exactly this purpose).
func mulMagnitude(a, b []word) []word {
	a = trimMagnitude(a)
	b = trimMagnitude(b)
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	switch {
	case n >= bigfftThreshold:
		return mulBigFFT(a, b)
	case len(a) >= karatsubaThreshold && len(b) >= karatsubaThreshold:
		return mulKaratsuba(a, b)
	default:
		return mulSchoolbook(a, b)
	}
}

// mulKaratsuba implements the recursive three-product algorithm (spec.md
// §4.M). For skewed operand sizes (one at least twice the other) it slabs
// the larger operand into smaller-size chunks and sums the partial
// products at the right offsets, rather than recursing on a wildly
// unbalanced split.
func mulKaratsuba(a, b []word) []word {
	if len(a) < karatsubaThreshold || len(b) < karatsubaThreshold {
		return mulSchoolbook(a, b)
	}
	if len(a) < len(b) {
		a, b = b, a
	}
	if len(a) >= 2*len(b) {
		return mulSlabbed(a, b)
	}

	k := len(a) / 2
	aLo, aHi := trimMagnitude(a[:k]), trimMagnitude(a[k:])
	var bLo, bHi []word
	if k < len(b) {
		bLo, bHi = trimMagnitude(b[:k]), trimMagnitude(b[k:])
	} else {
		bLo, bHi = trimMagnitude(b), allocLimbs(1)
	}

	p0 := mulKaratsuba(aLo, bLo)
	p2 := mulKaratsuba(aHi, bHi)

	sumA := addMagnitude(aLo, aHi)
	sumB := addMagnitude(bLo, bHi)
	mid := mulKaratsuba(sumA, sumB)
	mid = subMagnitude(mid, p0)
	mid = subMagnitude(mid, p2)

	result := allocLimbs(len(a) + len(b) + 1)
	copy(result[:len(p0)], p0)
	addAssignGrow(result, mid, k)
	addAssignGrow(result, p2, 2*k)
	return trimMagnitude(result)
}

// addAssignGrow adds b into a at the given limb offset, growing past a's
// current occupied length as needed; unlike mpn.go's addAssign it doesn't
// assume headroom already holds meaningful data, only that cap(a) is
// large enough, which mulKaratsuba's pre-sized result buffer guarantees.
func addAssignGrow(a, b []word, offset int) {
	if len(b) == 0 {
		return
	}
	window := a[offset : offset+len(b)]
	carry := addVV(window, window, b)
	for i := offset + len(b); carry != 0 && i < len(a); i++ {
		sum := dword(a[i]) + dword(carry)
		a[i] = loWord(sum)
		carry = hiWord(sum)
	}
}

// mulSlabbed handles a Karatsuba call whose operands differ in size by a
// factor of two or more: it cuts the larger operand into len(b)-sized
// slabs, multiplies each by b, and accumulates at the matching offset.
func mulSlabbed(a, b []word) []word {
	result := allocLimbs(len(a) + len(b) + 1)
	step := len(b)
	for offset := 0; offset < len(a); offset += step {
		end := offset + step
		if end > len(a) {
			end = len(a)
		}
		slab := trimMagnitude(a[offset:end])
		partial := mulKaratsuba(slab, b)
		addAssignGrow(result, partial, offset)
	}
	return trimMagnitude(result)
}

// mulBigFFT delegates to github.com/remyoudompheng/bigfft's FFT-based
// multiply for operands large enough that Karatsuba's O(n^1.585) stops
// paying for itself. bigfft operates on *math/big.Int, so operands round
// trip through big.Int's byte representation rather than reimplementing
// an FFT ourselves — the FFT kernel is exactly the kind of specialized
// numeric code this package depends on a library for instead of
// hand-rolling (SPEC_FULL.md §3).
func mulBigFFT(a, b []word) []word {
	ai := magnitudeToBigInt(a)
	bi := magnitudeToBigInt(b)
	product := bigfft.Mul(ai, bi)
	return bigIntToMagnitude(product)
}

// magnitudeToBigInt packs a little-endian limb magnitude into a
// big.Int via its big-endian byte SetBytes constructor.
func magnitudeToBigInt(a []word) *big.Int {
	a = trimMagnitude(a)
	buf := make([]byte, len(a)*4)
	for i, limb := range a {
		off := len(buf) - (i+1)*4
		buf[off] = byte(limb >> 24)
		buf[off+1] = byte(limb >> 16)
		buf[off+2] = byte(limb >> 8)
		buf[off+3] = byte(limb)
	}
	return new(big.Int).SetBytes(buf)
}

// bigIntToMagnitude unpacks a non-negative big.Int back into a
// little-endian limb magnitude.
func bigIntToMagnitude(v *big.Int) []word {
	buf := v.Bytes()
	n := (len(buf) + 3) / 4
	if n == 0 {
		n = 1
	}
	result := allocLimbs(n)
	for i, bb := range buf {
		distFromEnd := len(buf) - 1 - i
		limbIdx := distFromEnd / 4
		byteInLimb := distFromEnd % 4
		result[limbIdx] |= word(bb) << uint(8*byteInLimb)
	}
	return trimMagnitude(result)
}
