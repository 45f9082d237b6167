// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

// Package bigint implements arbitrary-precision signed integers.
//
// Values are stored as a two's-complement limb sequence, least-significant
// limb first, the same representation a C runtime would use for a variable
// width integer: the sign lives in the top bit of the most significant
// limb rather than in a separate field. Every exported operation returns
// the result in canonical (normalized) form: the shortest limb sequence
// whose top limb is not a pure sign-extension of the limb below it.
//
// The package mirrors three calling conventions for binary operators where
// it matters for allocation pressure:
//
//   - pure forms (Add, Sub, Mul, ...) borrow both operands and allocate a
//     fresh result;
//   - temp forms (AddTemp, SubTemp, ...) consume their first argument;
//     they call the pure form and do not reuse its storage;
//   - in-place forms (Grow, Shrink, Incr, Decr, LShiftAssign, ...) replace
//     the target with the result of the pure form, which is always a
//     newly allocated buffer; the old buffer is not updated in place.
package bigint
