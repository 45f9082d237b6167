// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

import (
	"strings"
	"testing"
)

// repunit returns a decimal string of n copies of the digit d (1-9).
func repunit(d byte, n int) string {
	return strings.Repeat(string(d), n)
}

// TestMulKaratsubaDistributive multiplies operands large enough to cross
// karatsubaThreshold (32 limbs, ~308 decimal digits) and checks
// (a+b)*c == a*c + b*c, which a broken split/recombine step in the
// Karatsuba tier would violate even though it can't be checked against a
// known closed-form product by hand.
func TestMulKaratsubaDistributive(t *testing.T) {
	a := mustParse(t, repunit('7', 400))
	b := mustParse(t, repunit('3', 410))
	c := mustParse(t, repunit('9', 350))

	lhs := Mul(Add(a, b), c)
	rhs := Add(Mul(a, c), Mul(b, c))
	if lhs.Compare(rhs) != 0 {
		t.Errorf("(a+b)*c != a*c+b*c for large operands\nlhs=%s\nrhs=%s", lhs.String(), rhs.String())
	}
}

// TestMulKaratsubaAssociative exercises a three-way product both ways;
// a and b are both above karatsubaThreshold, so a*b takes the Karatsuba
// tier.
func TestMulKaratsubaAssociative(t *testing.T) {
	a := mustParse(t, repunit('1', 350))
	b := mustParse(t, repunit('2', 330))
	c := mustParse(t, "987654321987654321")

	left := Mul(Mul(a, b), c)
	right := Mul(a, Mul(b, c))
	if left.Compare(right) != 0 {
		t.Errorf("(a*b)*c != a*(b*c) for large operands\nleft=%s\nright=%s", left.String(), right.String())
	}
}

func TestSquareLargeMatchesMul(t *testing.T) {
	v := mustParse(t, "-"+repunit('9', 400))
	sq := Square(v)
	mu := Mul(v, v)
	if sq.Compare(mu) != 0 {
		t.Errorf("Square and Mul(v,v) disagree for large v")
	}
	if sq.IsNegative() {
		t.Error("Square of any value must be non-negative")
	}
}

func TestDivLargeRoundTrip(t *testing.T) {
	a := mustParse(t, repunit('8', 500))
	b := mustParse(t, repunit('3', 123))

	q, r, err := QuoRem(a, b)
	if err != nil {
		t.Fatalf("QuoRem error: %v", err)
	}
	recon := Add(Mul(q, b), r)
	if recon.Compare(a) != 0 {
		t.Errorf("q*b+r != a for large division\nrecon=%s\na=%s", recon.String(), a.String())
	}
	if r.CompareInt64(0) < 0 || compareMagnitude(r.magnitude(), b.magnitude()) >= 0 {
		t.Errorf("remainder %s out of range for divisor magnitude", r.String())
	}
}
