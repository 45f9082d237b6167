// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

import "testing"

func TestParseDecimalRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"zero", "0"},
		{"small_positive", "42"},
		{"small_negative", "-42"},
		{"negative_zero", "-0"},
		{"nine_digits", "123456789"},
		{"ten_digits", "1234567890"},
		{"large", "123456789012345678901234567890"},
		{"large_negative", "-98765432109876543210"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseDecimal(tt.in)
			if err != nil {
				t.Fatalf("ParseDecimal(%q) error: %v", tt.in, err)
			}
			got := v.String()
			want := tt.in
			if want == "-0" {
				want = "0"
			}
			if got != want {
				t.Errorf("ParseDecimal(%q).String() = %q, want %q", tt.in, got, want)
			}
		})
	}
}

func TestParseDecimalInvalid(t *testing.T) {
	tests := []string{"", "-", "abc", "12a3", "1.5", "--5", "12 3"}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			if _, err := ParseDecimal(in); err == nil {
				t.Errorf("ParseDecimal(%q) expected error, got nil", in)
			}
		})
	}
}
