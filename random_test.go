// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

import "testing"

func TestRandomWithinRange(t *testing.T) {
	lo := mustParse(t, "-100")
	hi := mustParse(t, "100")

	for i := 0; i < 200; i++ {
		v, err := Random(lo, hi)
		if err != nil {
			t.Fatalf("Random error: %v", err)
		}
		if v.Compare(lo) < 0 || v.Compare(hi) > 0 {
			t.Fatalf("Random(%s,%s) produced out-of-range value %s", lo.String(), hi.String(), v.String())
		}
	}
}

func TestRandomDegenerateRange(t *testing.T) {
	same := mustParse(t, "7")
	v, err := Random(same, same)
	if err != nil {
		t.Fatalf("Random error: %v", err)
	}
	if v.Compare(same) != 0 {
		t.Errorf("Random(7,7) = %s, want 7", v.String())
	}
}

func TestRandomInvalidRange(t *testing.T) {
	lo := mustParse(t, "10")
	hi := mustParse(t, "5")
	if _, err := Random(lo, hi); err == nil {
		t.Error("Random(10,5) should error since lo > hi")
	}
}

func TestHashConsistentAndDistinguishing(t *testing.T) {
	a := mustParse(t, "12345")
	b := mustParse(t, "12345")
	c := mustParse(t, "12346")

	if a.Hash() != b.Hash() {
		t.Error("equal values must hash equal")
	}
	if a.Hash() == c.Hash() {
		t.Error("differing values should (overwhelmingly likely) hash differently")
	}
}
