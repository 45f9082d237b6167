// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

import "math/bits"

// divModMagnitude computes the unsigned quotient and remainder of a/b
// (spec.md §4.M, "Division (Knuth Algorithm D)"). Requires b nonzero.
// Special-cases a single-limb divisor (delegating to divByLimb) and a
// dividend smaller than the divisor (quotient zero) before falling
// through to the general multi-limb algorithm.
func divModMagnitude(a, b []word) (quotient, remainder []word) {
	a = trimMagnitude(a)
	b = trimMagnitude(b)

	if len(b) == 1 {
		q := make([]word, len(a))
		copy(q, a)
		rem := divByLimb(q, b[0])
		return trimMagnitude(q), []word{rem}
	}

	if compareMagnitude(a, b) < 0 {
		rem := make([]word, len(a))
		copy(rem, a)
		return allocLimbs(1), trimMagnitude(rem)
	}

	return knuthD(a, b)
}

// knuthD implements Knuth's Algorithm D (TAOCP vol.2 §4.3.1) for
// len(v) >= 2 and u >= v. u and v are normalized (the divisor's top bit
// is forced set) into scratch buffers, the classical two-limb-by-one-limb
// quotient-digit estimate with back-correction runs one digit at a time
// via mpn.go's mulSub/addAssign, and the remainder is denormalized at the
// end.
func knuthD(u, v []word) (quotient, remainder []word) {
	n := len(v)
	m := len(u) - n

	s := uint(bits.LeadingZeros32(uint32(v[n-1])))

	vn := make([]word, n)
	for i := n - 1; i > 0; i-- {
		vn[i] = v[i]<<s | v[i-1]>>(wordBits-s)
	}
	vn[0] = v[0] << s

	un := make([]word, len(u)+1)
	un[len(u)] = u[len(u)-1] >> (wordBits - s)
	for i := len(u) - 1; i > 0; i-- {
		un[i] = u[i]<<s | u[i-1]>>(wordBits-s)
	}
	un[0] = u[0] << s

	base := dword(1) << wordBits
	q := allocLimbs(m + 1)

	for j := m; j >= 0; j-- {
		numerator := dword(un[j+n])<<wordBits | dword(un[j+n-1])
		vTop := dword(vn[n-1])
		qhat := numerator / vTop
		rhat := numerator % vTop

		for qhat >= base || qhat*dword(vn[n-2]) > rhat<<wordBits|dword(un[j+n-2]) {
			qhat--
			rhat += vTop
			if rhat >= base {
				break
			}
		}

		borrow := mulSub(un, vn, word(qhat), j)
		if borrow != 0 {
			qhat--
			addAssign(un, vn, j)
		}
		q[j] = word(qhat)
	}

	rem := make([]word, n)
	if s == 0 {
		copy(rem, un[:n])
	} else {
		for i := 0; i < n; i++ {
			lo := un[i] >> s
			var hi word
			if i+1 < len(un) {
				hi = un[i+1] << (wordBits - s)
			}
			rem[i] = lo | hi
		}
	}

	return trimMagnitude(q), trimMagnitude(rem)
}
