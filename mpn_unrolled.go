// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

import "math/bits"

// Four-word-unrolled limb primitives, selected by dispatch_amd64.go when
// CPUFeatures.HasBMI2 is set. These compute the identical result as
// mpn_generic.go's scalar loop — unrolling only reduces the number of
// carry-dependent branches the scheduler has to serialize, the same
// rationale the teacher gives for its ADCX/ADOX dual-carry-chain variant
// of mpnAddN (basic_ops_amd64.go / mpn_decl.go's mpnAddNDualCarry).

func addVVUnrolled(z, x, y []word) word {
	var carry word
	n := len(z)
	i := 0
	for ; i+4 <= n; i += 4 {
		for j := 0; j < 4; j++ {
			sum := dword(x[i+j]) + dword(y[i+j]) + dword(carry)
			z[i+j] = loWord(sum)
			carry = hiWord(sum)
		}
	}
	for ; i < n; i++ {
		sum := dword(x[i]) + dword(y[i]) + dword(carry)
		z[i] = loWord(sum)
		carry = hiWord(sum)
	}
	return carry
}

func subVVUnrolled(z, x, y []word) word {
	var borrow word
	n := len(z)
	i := 0
	for ; i+4 <= n; i += 4 {
		for j := 0; j < 4; j++ {
			diff := dword(x[i+j]) - dword(y[i+j]) - dword(borrow)
			z[i+j] = loWord(diff)
			borrow = 0
			if hiWord(diff) != 0 {
				borrow = 1
			}
		}
	}
	for ; i < n; i++ {
		diff := dword(x[i]) - dword(y[i]) - dword(borrow)
		z[i] = loWord(diff)
		borrow = 0
		if hiWord(diff) != 0 {
			borrow = 1
		}
	}
	return borrow
}

func addMulVWWUnrolled(z, x []word, m word) word {
	var carry word
	n := len(z)
	i := 0
	for ; i+4 <= n; i += 4 {
		for j := 0; j < 4; j++ {
			hi, lo := bits.Mul32(x[i+j], m)
			sum := dword(lo) + dword(z[i+j]) + dword(carry)
			z[i+j] = loWord(sum)
			carry = hi + hiWord(sum)
		}
	}
	for ; i < n; i++ {
		hi, lo := bits.Mul32(x[i], m)
		sum := dword(lo) + dword(z[i]) + dword(carry)
		z[i] = loWord(sum)
		carry = hi + hiWord(sum)
	}
	return carry
}
