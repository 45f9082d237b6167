// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

// Hash and Equal (spec.md §4.H). Equal is defined as same limb count and
// byte-equal limbs (the canonical form guarantees one representation per
// value, so this is also structural equality). Hash mixes limb[0], the
// length, and the top limb — good enough for hash tables, not a
// cryptographic digest.

// Hash returns a 64-bit hash of v suitable for hash-table use.
func (v Int) Hash() uint64 {
	n := len(v.limbs)
	h := uint64(0x9E3779B97F4A7C15)
	h ^= uint64(v.limbs[0]) * 0xFF51AFD7ED558CCD
	h ^= uint64(n) * 0xC4CEB9FE1A85EC53
	h ^= uint64(v.limbs[n-1]) << 21
	h ^= h >> 33
	h *= 0xFF51AFD7ED558CCD
	h ^= h >> 33
	return h
}

// equalBytes reports whether a and b are the same limb count with
// byte-equal limbs, the structural-equality definition spec.md §4.H
// gives; Int.Equal in cmp.go is implemented with it.
func equalBytes(a, b []word) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
