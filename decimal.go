// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

import (
	"strconv"
	"strings"
)

// Decimal parse/print (spec.md §4.C), batched by decimalChunkDigits
// (9 digits per limb-sized chunk for W=32, SPEC_FULL.md §4) rather than
// one digit at a time, mirroring big_rtl.c's uBigMultBy10AndAdd /
// uBigDivideByPowerOf10.

// ParseDecimal parses an optional leading '-' followed by one or more
// ASCII digits, with no embedded whitespace. Any non-digit, or an empty
// input, raises Range.
func ParseDecimal(s string) (Int, error) {
	const op = "ParseDecimal"
	if s == "" {
		return Int{}, raisef(op, ErrRange, "empty decimal string")
	}

	negative := false
	i := 0
	if s[0] == '-' {
		negative = true
		i = 1
	}
	digits := s[i:]
	if len(digits) == 0 {
		return Int{}, raisef(op, ErrRange, "missing digits after sign")
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return Int{}, raisef(op, ErrRange, "invalid decimal digit %q", c)
		}
	}

	mag := []word{0}
	pos := 0
	first := len(digits) % decimalChunkDigits
	if first == 0 {
		first = decimalChunkDigits
	}
	for pos < len(digits) {
		chunkLen := decimalChunkDigits
		if pos == 0 {
			chunkLen = first
		}
		chunkVal, err := strconv.ParseUint(digits[pos:pos+chunkLen], 10, 64)
		if err != nil {
			return Int{}, raisef(op, ErrRange, "invalid decimal chunk: %v", err)
		}
		grown := allocLimbs(len(mag) + 1)
		copy(grown, mag)
		mulByLimbAdd(grown, pow10(chunkLen), word(chunkVal))
		mag = trimMagnitude(grown)
		pos += chunkLen
	}

	return fromSignedMagnitude(negative, mag), nil
}

// String renders v in decimal, satisfying fmt.Stringer. It divides a
// working copy of the magnitude by decimalChunkBase repeatedly, collecting
// low-to-high digit batches, then prints them most-significant first —
// every batch except the most significant is zero-padded to
// decimalChunkDigits, matching big_rtl.c's "final pass fixes the leading
// zeros of non-final batches".
func (v Int) String() string {
	if v.IsZero() {
		return "0"
	}
	mag := v.magnitude()

	var chunks []word
	for !isZeroMagnitude(mag) {
		working := make([]word, len(mag))
		copy(working, mag)
		rem := divByLimb(working, decimalChunkBase)
		mag = trimMagnitude(working)
		chunks = append(chunks, rem)
	}

	var b strings.Builder
	if v.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString(strconv.FormatUint(uint64(chunks[len(chunks)-1]), 10))
	for i := len(chunks) - 2; i >= 0; i-- {
		s := strconv.FormatUint(uint64(chunks[i]), 10)
		b.WriteString(strings.Repeat("0", decimalChunkDigits-len(s)))
		b.WriteString(s)
	}
	return b.String()
}

// pow10 returns 10^n for small non-negative n, used to derive the base
// argument to mulByLimbAdd for a partial leading chunk.
func pow10(n int) word {
	p := word(1)
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}
