// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

import "sync/atomic"

// allocStats mirrors the byte-level allocation-accounting macros the
// original runtime wraps around every ALLOC/REALLOC/FREE call (spec.md §6,
// "Allocator interface"). Go's GC makes an explicit free hook moot, but the
// accounting counters stay so a long-running host process can still
// observe how many limb words this package has allocated — the same
// motivation spec.md §9 gives for keeping the hooks even in a rewrite.
var (
	limbWordsAllocated int64
	limbBuffersGrown   int64
)

// allocLimbs returns a zeroed limb buffer of length n and updates the
// accounting counters. Only allocations made through this function are
// counted; several sites in this package (for example Int.clone, the
// division scratch buffers in divide.go, and decimal printing) allocate
// limb slices with make directly, and those are not counted.
func allocLimbs(n int) []word {
	atomic.AddInt64(&limbWordsAllocated, int64(n))
	atomic.AddInt64(&limbBuffersGrown, 1)
	return make([]word, n)
}

// AllocStats reports cumulative limb words and buffers allocated through
// allocLimbs since process start. It is a debug/diagnostic
// aid, not part of the arithmetic contract.
func AllocStats() (wordsAllocated, buffersGrown int64) {
	return atomic.LoadInt64(&limbWordsAllocated), atomic.LoadInt64(&limbBuffersGrown)
}
