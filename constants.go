// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

// Tunable thresholds, all unexported package-level vars and consts rather
// than a config struct — this package has no configuration surface
// (SPEC_FULL.md §2.3).

// karatsubaThreshold is the limb count at which multiply switches from
// schoolbook O(n*m) to recursive Karatsuba, per spec.md §4.M's
// recommendation of 32 limbs.
var karatsubaThreshold = 32

// bigfftThreshold is the limb count at which Karatsuba itself defers to
// github.com/remyoudompheng/bigfft's FFT multiply (SPEC_FULL.md §3). Set
// high enough that ordinary Karatsuba recursion handles everything a
// calculator or language runtime will see in practice. No test in this
// package changes it, so the FFT path runs only for operands of at least
// this many limbs.
var bigfftThreshold = 4096

// gcdSizeSkewLimbs is the limb-count difference at which GCD switches
// from binary GCD to the Euclidean a,b = b, a mod b loop, ported from
// big_rtl.c's bigGcd (SPEC_FULL.md §4).
const gcdSizeSkewLimbs = 10

// decimalChunkBase is the largest power of ten that fits in one word
// (word = 32 bits here), and decimalChunkDigits is its digit count. Both
// mirror big_rtl.c's POWER_OF_10_IN_BIGDIGIT / BIGDIGIT_SIZE==32 case.
const (
	decimalChunkBase   word = 1000000000
	decimalChunkDigits      = 9
)
