// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

import "testing"

func mustParse(t *testing.T, s string) Int {
	t.Helper()
	v, err := ParseDecimal(s)
	if err != nil {
		t.Fatalf("ParseDecimal(%q): %v", s, err)
	}
	return v
}

func TestAddSub(t *testing.T) {
	tests := []struct {
		name    string
		a, b    string
		sum     string
		diff    string
	}{
		{"both_positive", "123", "456", "579", "-333"},
		{"both_negative", "-123", "-456", "-579", "333"},
		{"mixed_a_bigger", "500", "-100", "400", "600"},
		{"mixed_b_bigger", "-500", "100", "-400", "-600"},
		{"equal_opposite", "77", "-77", "0", "154"},
		{"zero_operand", "0", "42", "42", "-42"},
		{"carry_across_limbs", "4294967295", "1", "4294967296", "4294967294"},
		{"large", "123456789012345678901234567890", "1", "123456789012345678901234567891", "123456789012345678901234567889"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustParse(t, tt.a)
			b := mustParse(t, tt.b)

			if got := Add(a, b).String(); got != tt.sum {
				t.Errorf("Add(%s,%s) = %s, want %s", tt.a, tt.b, got, tt.sum)
			}
			if got := Sub(a, b).String(); got != tt.diff {
				t.Errorf("Sub(%s,%s) = %s, want %s", tt.a, tt.b, got, tt.diff)
			}
		})
	}
}

func TestMul(t *testing.T) {
	tests := []struct{ a, b, want string }{
		{"0", "12345", "0"},
		{"1", "-99", "-99"},
		{"12", "13", "156"},
		{"-7", "-8", "56"},
		{"-7", "8", "-56"},
		{"4294967295", "2", "8589934590"},
		{"123456789", "987654321", "121932631112635269"},
	}
	for _, tt := range tests {
		t.Run(tt.a+"_times_"+tt.b, func(t *testing.T) {
			a := mustParse(t, tt.a)
			b := mustParse(t, tt.b)
			if got := Mul(a, b).String(); got != tt.want {
				t.Errorf("Mul(%s,%s) = %s, want %s", tt.a, tt.b, got, tt.want)
			}
			// Mul should be commutative.
			if got := Mul(b, a).String(); got != tt.want {
				t.Errorf("Mul(%s,%s) = %s, want %s", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestSquareMatchesMul(t *testing.T) {
	inputs := []string{"0", "1", "-1", "12345", "-99999", "123456789012345"}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			v := mustParse(t, in)
			sq := Square(v)
			mu := Mul(v, v)
			if sq.Compare(mu) != 0 {
				t.Errorf("Square(%s) = %s, Mul(%s,%s) = %s", in, sq.String(), in, in, mu.String())
			}
		})
	}
}

func TestQuoRem(t *testing.T) {
	tests := []struct {
		a, b     string
		q, r     string
	}{
		{"7", "2", "3", "1"},
		{"-7", "2", "-3", "-1"},
		{"7", "-2", "-3", "1"},
		{"-7", "-2", "3", "-1"},
		{"100", "10", "10", "0"},
		{"0", "5", "0", "0"},
		{"123456789012345678901234567890", "1000000000", "123456789012345678901", "234567890"},
	}
	for _, tt := range tests {
		t.Run(tt.a+"_div_"+tt.b, func(t *testing.T) {
			a := mustParse(t, tt.a)
			b := mustParse(t, tt.b)
			q, r, err := QuoRem(a, b)
			if err != nil {
				t.Fatalf("QuoRem error: %v", err)
			}
			if q.String() != tt.q {
				t.Errorf("quotient = %s, want %s", q.String(), tt.q)
			}
			if r.String() != tt.r {
				t.Errorf("remainder = %s, want %s", r.String(), tt.r)
			}
			// Invariant: q*b + r == a.
			recon := Add(Mul(q, b), r)
			if recon.Compare(a) != 0 {
				t.Errorf("q*b+r = %s, want %s", recon.String(), tt.a)
			}
		})
	}
}

func TestDivisionByZero(t *testing.T) {
	a := mustParse(t, "5")
	zero := Zero()
	if _, _, err := QuoRem(a, zero); err == nil {
		t.Error("QuoRem by zero should error")
	}
	if _, err := Div(a, zero); err == nil {
		t.Error("Div by zero should error")
	}
}

func TestMod(t *testing.T) {
	tests := []struct{ a, b, want string }{
		{"7", "3", "1"},
		{"-7", "3", "2"},
		{"7", "-3", "-2"},
		{"-7", "-3", "-1"},
	}
	for _, tt := range tests {
		t.Run(tt.a+"_mod_"+tt.b, func(t *testing.T) {
			a := mustParse(t, tt.a)
			b := mustParse(t, tt.b)
			m, err := Mod(a, b)
			if err != nil {
				t.Fatalf("Mod error: %v", err)
			}
			if m.String() != tt.want {
				t.Errorf("Mod(%s,%s) = %s, want %s", tt.a, tt.b, m.String(), tt.want)
			}
		})
	}
}

func TestMDivFloors(t *testing.T) {
	tests := []struct{ a, b, want string }{
		{"7", "2", "3"},
		{"-7", "2", "-4"},
		{"7", "-2", "-4"},
		{"-7", "-2", "3"},
	}
	for _, tt := range tests {
		t.Run(tt.a+"_mdiv_"+tt.b, func(t *testing.T) {
			a := mustParse(t, tt.a)
			b := mustParse(t, tt.b)
			q, err := MDiv(a, b)
			if err != nil {
				t.Fatalf("MDiv error: %v", err)
			}
			if q.String() != tt.want {
				t.Errorf("MDiv(%s,%s) = %s, want %s", tt.a, tt.b, q.String(), tt.want)
			}
		})
	}
}

func TestNegAbs(t *testing.T) {
	v := mustParse(t, "42")
	n := Neg(v)
	if n.String() != "-42" {
		t.Errorf("Neg(42) = %s, want -42", n.String())
	}
	if Neg(Neg(v)).Compare(v) != 0 {
		t.Error("Neg(Neg(v)) != v")
	}
	if Abs(n).Compare(v) != 0 {
		t.Error("Abs(-42) != 42")
	}
	if !Neg(Zero()).IsZero() {
		t.Error("Neg(0) should still be zero")
	}
}

func TestPredSucc(t *testing.T) {
	v := mustParse(t, "0")
	if Pred(v).String() != "-1" {
		t.Errorf("Pred(0) = %s, want -1", Pred(v).String())
	}
	if Succ(v).String() != "1" {
		t.Errorf("Succ(0) = %s, want 1", Succ(v).String())
	}
	// Crossing a limb boundary.
	top := mustParse(t, "4294967295")
	if Succ(top).String() != "4294967296" {
		t.Errorf("Succ(4294967295) = %s, want 4294967296", Succ(top).String())
	}
}

func TestInPlaceOps(t *testing.T) {
	v := mustParse(t, "10")
	v.Grow(mustParse(t, "5"))
	if v.String() != "15" {
		t.Errorf("after Grow(5): %s, want 15", v.String())
	}
	v.Shrink(mustParse(t, "20"))
	if v.String() != "-5" {
		t.Errorf("after Shrink(20): %s, want -5", v.String())
	}
	v.Incr()
	if v.String() != "-4" {
		t.Errorf("after Incr: %s, want -4", v.String())
	}
	v.Decr()
	v.Decr()
	if v.String() != "-6" {
		t.Errorf("after two Decr: %s, want -6", v.String())
	}
	v.MultAssign(mustParse(t, "3"))
	if v.String() != "-18" {
		t.Errorf("after MultAssign(3): %s, want -18", v.String())
	}
}

func TestCompare(t *testing.T) {
	a := mustParse(t, "5")
	b := mustParse(t, "-5")
	c := mustParse(t, "5")

	if a.Compare(b) <= 0 {
		t.Error("5 should compare greater than -5")
	}
	if !a.Equal(c) {
		t.Error("5 should equal 5")
	}
	if !b.Less(a) {
		t.Error("-5 should be less than 5")
	}
	if a.CompareInt64(5) != 0 {
		t.Error("CompareInt64(5) against 5 should be 0")
	}
	if a.CompareInt64(-5) <= 0 {
		t.Error("5 should compare greater than int64(-5)")
	}
}

func TestPow(t *testing.T) {
	tests := []struct {
		base string
		exp  int
		want string
	}{
		{"2", 0, "1"},
		{"2", 10, "1024"},
		{"-2", 3, "-8"},
		{"-2", 4, "16"},
		{"3", 5, "243"},
		{"10", 20, "100000000000000000000"},
	}
	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			base := mustParse(t, tt.base)
			got, err := Pow(base, tt.exp)
			if err != nil {
				t.Fatalf("Pow error: %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("Pow(%s,%d) = %s, want %s", tt.base, tt.exp, got.String(), tt.want)
			}
		})
	}
}

func TestPowNegativeExponent(t *testing.T) {
	base := mustParse(t, "2")
	if _, err := Pow(base, -1); err == nil {
		t.Error("Pow with negative exponent should error")
	}
}
