// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

// BitLen, LowestSetBit, LogBase2 (spec.md §4.B).

// BitLen returns the number of bits needed to represent |v|, with the
// convention spec.md §4.B gives for negative values: the bit length of
// |v|-1 (so that, e.g., -1 and 0 both report 0, matching two's
// complement's "no bits needed to express the magnitude below the
// implicit sign"). Zero reports 0.
func (v Int) BitLen() (int, error) {
	const op = "BitLen"
	if v.IsZero() {
		return 0, nil
	}
	mag := v.magnitude()
	if v.IsNegative() {
		mag = decrementMagnitude(mag)
		if isZeroMagnitude(mag) {
			return 0, nil
		}
	}
	top := trimMagnitude(mag)
	n := len(top)
	bits := (n-1)*wordBits + mostSignificantBit(top[n-1]) + 1
	if bits < 0 {
		return 0, raisef(op, ErrRange, "bit length overflow")
	}
	return bits, nil
}

// decrementMagnitude returns mag-1 for a nonzero magnitude.
func decrementMagnitude(mag []word) []word {
	result := make([]word, len(mag))
	copy(result, mag)
	for i := range result {
		if result[i] != 0 {
			result[i]--
			break
		}
		result[i] = maxWord
	}
	return trimMagnitude(result)
}

// LowestSetBit scans limbs low-to-high for the first nonzero limb, then
// returns the position of its lowest set bit within that limb. Returns -1
// for zero.
func (v Int) LowestSetBit() (int, error) {
	if v.IsZero() {
		return -1, nil
	}
	mag := v.magnitude()
	for i, limb := range mag {
		if limb != 0 {
			pos := i*wordBits + leastSignificantBit(limb)
			if pos < 0 {
				return 0, raisef("LowestSetBit", ErrRange, "bit position overflow")
			}
			return pos, nil
		}
	}
	return -1, nil
}

// LogBase2 returns floor(log2(v)) for non-negative v (with -1 for v=0),
// and raises Numeric for negative v.
func (v Int) LogBase2() (int, error) {
	const op = "LogBase2"
	if v.IsNegative() {
		return 0, raisef(op, ErrNumeric, "logBase2 of negative value")
	}
	if v.IsZero() {
		return -1, nil
	}
	mag := trimMagnitude(v.magnitude())
	n := len(mag)
	return (n-1)*wordBits + mostSignificantBit(mag[n-1]), nil
}
