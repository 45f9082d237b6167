// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

import "math/rand/v2"

// Random returns a uniform sample in [lo, hi] inclusive (spec.md §4.R).
// Requires lo <= hi, else Range. It computes scale = hi - lo, repeatedly
// fills a limb buffer from the runtime PRNG, masks the top limb down to
// scale's bit length, and rejects-and-retries samples that exceed scale,
// finally adding lo back in.
func Random(lo, hi Int) (Int, error) {
	const op = "Random"
	if lo.Compare(hi) > 0 {
		return Int{}, raisef(op, ErrRange, "lo must be <= hi")
	}
	if lo.Equal(hi) {
		return lo, nil
	}

	scaleInt := Sub(hi, lo)
	scale := scaleInt.magnitude()
	bitLen, err := scaleInt.BitLen()
	if err != nil {
		return Int{}, err
	}
	if bitLen == 0 {
		return lo, nil
	}

	topLimbBits := bitLen % wordBits
	if topLimbBits == 0 {
		topLimbBits = wordBits
	}
	topMask := word(1)<<uint(topLimbBits) - 1
	nLimbs := (bitLen + wordBits - 1) / wordBits

	for {
		sample := make([]word, nLimbs)
		for i := range sample {
			sample[i] = word(rand.Uint32())
		}
		sample[nLimbs-1] &= topMask
		if compareMagnitude(sample, scale) <= 0 {
			return Add(lo, fromSignedMagnitude(false, trimMagnitude(sample))), nil
		}
	}
}
