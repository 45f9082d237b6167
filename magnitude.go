// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

// Unsigned magnitude arithmetic (spec.md §4.M). Everything in this file
// treats a []word as a plain base-2^W unsigned integer, least-significant
// limb first, with no two's-complement sign convention and no minimum
// length beyond 1 — trimMagnitude drops leading zero limbs the same way
// the teacher's basic_ops.go trims a result slice after mpnAddN, just
// generalized to unequal-length operands (the teacher only ever adds
// same-length internal limb vectors; our signed layer feeds this
// unequal-length magnitudes whenever the two operands differ in size).

// trimMagnitude drops leading (high) zero limbs, keeping at least one.
func trimMagnitude(limbs []word) []word {
	n := len(limbs)
	for n > 1 && limbs[n-1] == 0 {
		n--
	}
	return limbs[:n]
}

// isZeroMagnitude reports whether limbs represents zero.
func isZeroMagnitude(limbs []word) bool {
	for _, l := range limbs {
		if l != 0 {
			return false
		}
	}
	return true
}

// compareMagnitude returns -1, 0, or 1 comparing a and b as unsigned
// integers, independent of their slice lengths.
func compareMagnitude(a, b []word) int {
	a = trimMagnitude(a)
	b = trimMagnitude(b)
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// addMagnitude returns a freshly allocated a+b, trimmed to its minimal
// length. Operand lengths may differ.
func addMagnitude(a, b []word) []word {
	if len(a) < len(b) {
		a, b = b, a
	}
	result := allocLimbs(len(a) + 1)
	carry := addVV(result[:len(b)], a[:len(b)], b)
	copy(result[len(b):len(a)], a[len(b):])
	for i := len(b); carry != 0 && i < len(a); i++ {
		sum := dword(result[i]) + dword(carry)
		result[i] = loWord(sum)
		carry = hiWord(sum)
	}
	result[len(a)] = carry
	return trimMagnitude(result)
}

// subMagnitude returns a freshly allocated a-b, trimmed to its minimal
// length. Precondition: compareMagnitude(a, b) >= 0.
func subMagnitude(a, b []word) []word {
	result := allocLimbs(len(a))
	borrow := subVV(result[:len(b)], a[:len(b)], b)
	copy(result[len(b):], a[len(b):])
	for i := len(b); borrow != 0 && i < len(result); i++ {
		prev := result[i]
		result[i] = prev - 1
		if prev != 0 {
			borrow = 0
		}
	}
	return trimMagnitude(result)
}

// addMagnitudeInto adds a+b into dst, which must have length at least
// max(len(a),len(b))+1; returns the used (trimmed) length. Nothing in
// this package calls it: mulKaratsuba builds its P1 operands with
// addMagnitude, allocating fresh buffers at each recursion level rather
// than working in a pre-sized scratch buffer.
func addMagnitudeInto(dst, a, b []word) int {
	if len(a) < len(b) {
		a, b = b, a
	}
	for i := range dst {
		dst[i] = 0
	}
	carry := addVV(dst[:len(b)], a[:len(b)], b)
	copy(dst[len(b):len(a)], a[len(b):])
	for i := len(b); carry != 0 && i < len(a); i++ {
		sum := dword(dst[i]) + dword(carry)
		dst[i] = loWord(sum)
		carry = hiWord(sum)
	}
	n := len(a)
	if carry != 0 {
		dst[n] = carry
		n++
	}
	for n > 1 && dst[n-1] == 0 {
		n--
	}
	return n
}

// subMagnitudeInto subtracts b from a into dst, which must have length at
// least len(a). Precondition: compareMagnitude(a, b) >= 0. Returns the
// trimmed used length. Like addMagnitudeInto, nothing in this package
// calls it.
func subMagnitudeInto(dst, a, b []word) int {
	for i := range dst {
		dst[i] = 0
	}
	borrow := subVV(dst[:len(b)], a[:len(b)], b)
	copy(dst[len(b):len(a)], a[len(b):])
	for i := len(b); borrow != 0 && i < len(a); i++ {
		prev := dst[i]
		dst[i] = prev - 1
		if prev != 0 {
			borrow = 0
		}
	}
	n := len(a)
	for n > 1 && dst[n-1] == 0 {
		n--
	}
	return n
}
