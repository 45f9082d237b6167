// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

// Int is an arbitrary-precision signed integer, stored as a canonical
// two's-complement limb sequence, least-significant limb first (spec.md
// §3). The zero value of Int is invalid: every Int must come from Zero,
// a constructor, or an arithmetic result. There is no public way to
// reach into limbs from outside the package, mirroring spec.md §3's
// "every value is conceptually owned by the caller that creates it".
type Int struct {
	limbs []word
}

// Zero returns the canonical representation of 0 (spec.md §3: n=1,
// limb[0]=0).
func Zero() Int {
	return Int{limbs: []word{0}}
}

// fromLimbs wraps an already-normalized limb slice. Callers that built
// limbs by hand (constructors, conversions) must normalize before calling
// this; arithmetic internals that already call normalize() on their
// result path should prefer this over re-normalizing twice.
func fromLimbs(limbs []word) Int {
	if len(limbs) == 0 {
		return Zero()
	}
	return Int{limbs: limbs}
}

// IsValid reports whether v was produced by this package rather than
// being a bare zero-value Int{}.
func (v Int) IsValid() bool {
	return len(v.limbs) > 0
}

// Sign returns -1, 0, or 1 according to the sign of v.
func (v Int) Sign() int {
	if isZeroMagnitude(v.limbs) && !isNegative(v.limbs) {
		return 0
	}
	if isNegative(v.limbs) {
		return -1
	}
	return 1
}

// IsZero reports whether v equals zero.
func (v Int) IsZero() bool {
	return v.Sign() == 0
}

// IsNegative reports whether v is strictly less than zero.
func (v Int) IsNegative() bool {
	return isNegative(v.limbs)
}

// Len returns the number of limbs in v's canonical representation. It is
// a diagnostic accessor, not part of the arithmetic contract.
func (v Int) Len() int {
	return len(v.limbs)
}

// clone returns a defensive copy of v's limb buffer, for callers about to
// mutate (temp/in-place forms).
func (v Int) clone() []word {
	c := make([]word, len(v.limbs))
	copy(c, v.limbs)
	return c
}

// magnitude returns the absolute value of v as an unsigned limb
// magnitude, negating via two's-complement if v is negative.
func (v Int) magnitude() []word {
	if !isNegative(v.limbs) {
		return trimMagnitude(v.clone())
	}
	return negateTwosComplement(v.limbs)
}

// negateTwosComplement computes the two's-complement negation of limbs
// (invert all bits, add 1) and returns it as an unsigned magnitude,
// growing by one limb first so the negation of the most negative value
// representable in len(limbs) limbs doesn't silently overflow back to
// itself.
func negateTwosComplement(limbs []word) []word {
	grown := growForSignFlip(limbs)
	result := allocLimbs(len(grown))
	for i, l := range grown {
		result[i] = ^l
	}
	var carry word = 1
	for i := range result {
		sum := dword(result[i]) + dword(carry)
		result[i] = loWord(sum)
		carry = hiWord(sum)
		if carry == 0 {
			break
		}
	}
	return trimMagnitude(result)
}

// fromSignedMagnitude builds a canonical Int from a sign and an unsigned
// magnitude, negating into two's-complement form when sign < 0.
func fromSignedMagnitude(negative bool, mag []word) Int {
	mag = trimMagnitude(mag)
	if isZeroMagnitude(mag) {
		return Zero()
	}
	limbs := make([]word, len(mag)+1)
	copy(limbs, mag)
	if negative {
		for i := range limbs {
			limbs[i] = ^limbs[i]
		}
		var carry word = 1
		for i := range limbs {
			sum := dword(limbs[i]) + dword(carry)
			limbs[i] = loWord(sum)
			carry = hiWord(sum)
			if carry == 0 {
				break
			}
		}
	}
	return Int{limbs: normalize(limbs)}
}
