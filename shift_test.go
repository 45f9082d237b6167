// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

import "testing"

func TestLShift(t *testing.T) {
	tests := []struct {
		in   string
		k    int
		want string
	}{
		{"1", 0, "1"},
		{"1", 3, "8"},
		{"-5", 3, "-40"},
		{"1", 32, "4294967296"},
		{"-1", 32, "-4294967296"},
		{"0", 10, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v := mustParse(t, tt.in)
			got, err := LShift(v, tt.k)
			if err != nil {
				t.Fatalf("LShift error: %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("LShift(%s,%d) = %s, want %s", tt.in, tt.k, got.String(), tt.want)
			}
		})
	}
}

func TestRShift(t *testing.T) {
	tests := []struct {
		in   string
		k    int
		want string
	}{
		{"8", 3, "1"},
		{"-40", 3, "-5"},
		{"-5", 3, "-1"},
		{"7", 1, "3"},
		{"-1", 100, "-1"},
		{"0", 5, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v := mustParse(t, tt.in)
			got, err := RShift(v, tt.k)
			if err != nil {
				t.Fatalf("RShift error: %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("RShift(%s,%d) = %s, want %s", tt.in, tt.k, got.String(), tt.want)
			}
		})
	}
}

func TestShiftAssign(t *testing.T) {
	v := mustParse(t, "3")
	if err := LShiftAssign(&v, 4); err != nil {
		t.Fatalf("LShiftAssign error: %v", err)
	}
	if v.String() != "48" {
		t.Errorf("after LShiftAssign(4): %s, want 48", v.String())
	}
	if err := RShiftAssign(&v, 2); err != nil {
		t.Fatalf("RShiftAssign error: %v", err)
	}
	if v.String() != "12" {
		t.Errorf("after RShiftAssign(2): %s, want 12", v.String())
	}
}

func TestBitLen(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"0", 0},
		{"1", 1},
		{"-1", 0},
		{"4", 3},
		{"-4", 2},
		{"255", 8},
		{"256", 9},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v := mustParse(t, tt.in)
			got, err := v.BitLen()
			if err != nil {
				t.Fatalf("BitLen error: %v", err)
			}
			if got != tt.want {
				t.Errorf("BitLen(%s) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestLowestSetBit(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"1", 0},
		{"2", 1},
		{"12", 2},
		{"-8", 3},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v := mustParse(t, tt.in)
			got, err := v.LowestSetBit()
			if err != nil {
				t.Fatalf("LowestSetBit error: %v", err)
			}
			if got != tt.want {
				t.Errorf("LowestSetBit(%s) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestLogBase2(t *testing.T) {
	v := mustParse(t, "16")
	got, err := v.LogBase2()
	if err != nil {
		t.Fatalf("LogBase2 error: %v", err)
	}
	if got != 4 {
		t.Errorf("LogBase2(16) = %d, want 4", got)
	}
}
