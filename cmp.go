// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

// Compare returns -1, 0, or 1 as v is less than, equal to, or greater
// than w.
func (v Int) Compare(w Int) int {
	sv, sw := v.Sign(), w.Sign()
	if sv != sw {
		if sv < sw {
			return -1
		}
		return 1
	}
	if sv == 0 {
		return 0
	}
	c := compareMagnitude(v.magnitude(), w.magnitude())
	if sv < 0 {
		return -c
	}
	return c
}

// Equal reports whether v and w denote the same integer. Both values are
// canonical, so this is a structural limb-by-limb comparison.
func (v Int) Equal(w Int) bool {
	return equalBytes(v.limbs, w.limbs)
}

// Less reports whether v < w.
func (v Int) Less(w Int) bool {
	return v.Compare(w) < 0
}

// CompareInt64 implements spec.md §4.S's compareWithInt: it decides by
// sign where the signs differ, and otherwise compares v's magnitude
// against n's two-limb magnitude (by length first, then limb by limb)
// rather than materializing n into a full Int. Extracting v's magnitude
// copies all of v's limbs, so the cost grows with v's length.
func (v Int) CompareInt64(n int64) int {
	sv := v.Sign()
	sn := 0
	switch {
	case n > 0:
		sn = 1
	case n < 0:
		sn = -1
	}
	if sv != sn {
		if sv < sn {
			return -1
		}
		return 1
	}
	if sv == 0 {
		return 0
	}

	var mag uint64
	if n < 0 {
		mag = uint64(-(n + 1)) + 1
	} else {
		mag = uint64(n)
	}
	nLimbs := []word{loWord(mag), hiWord(mag)}
	nLimbs = trimMagnitude(nLimbs)

	c := compareMagnitude(v.magnitude(), nLimbs)
	if sv < 0 {
		return -c
	}
	return c
}
