// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

// Machine-width conversions (spec.md §4.C). Signed types pack directly as
// two's-complement limbs; unsigned types append a zero limb so the top
// bit is never misread as a sign bit.

// FromInt32 converts a native int32 to an Int.
func FromInt32(n int32) Int {
	return Int{limbs: normalize([]word{word(uint32(n))})}
}

// FromInt64 converts a native int64 to an Int.
func FromInt64(n int64) Int {
	u := uint64(n)
	return Int{limbs: normalize([]word{word(u), word(u >> wordBits)})}
}

// FromUint32 converts a native uint32 to an Int, always non-negative.
func FromUint32(n uint32) Int {
	return Int{limbs: normalize([]word{word(n), 0})}
}

// FromUint64 converts a native uint64 to an Int, always non-negative.
func FromUint64(n uint64) Int {
	return Int{limbs: normalize([]word{word(n), word(n >> wordBits), 0})}
}

// ToInt32 converts v to a native int32, raising Range if v does not fit.
func (v Int) ToInt32() (int32, error) {
	if len(v.limbs) > 1 {
		return 0, raisef("ToInt32", ErrRange, "value does not fit in int32")
	}
	return int32(v.limbs[0]), nil
}

// ToInt64 converts v to a native int64, raising Range if v does not fit.
func (v Int) ToInt64() (int64, error) {
	switch len(v.limbs) {
	case 1:
		return int64(int32(v.limbs[0])), nil
	case 2:
		return int64(joinWords(v.limbs[1], v.limbs[0])), nil
	default:
		return 0, raisef("ToInt64", ErrRange, "value does not fit in int64")
	}
}

// ToUint32 converts v to a native uint32, raising Range if v is negative
// or does not fit.
func (v Int) ToUint32() (uint32, error) {
	const op = "ToUint32"
	if v.IsNegative() {
		return 0, raisef(op, ErrRange, "negative value has no uint32 representation")
	}
	switch len(v.limbs) {
	case 1:
		return v.limbs[0], nil
	case 2:
		if v.limbs[1] != 0 {
			return 0, raisef(op, ErrRange, "value does not fit in uint32")
		}
		return v.limbs[0], nil
	default:
		return 0, raisef(op, ErrRange, "value does not fit in uint32")
	}
}

// ToUint64 converts v to a native uint64, raising Range if v is negative
// or does not fit.
func (v Int) ToUint64() (uint64, error) {
	const op = "ToUint64"
	if v.IsNegative() {
		return 0, raisef(op, ErrRange, "negative value has no uint64 representation")
	}
	switch len(v.limbs) {
	case 1:
		return uint64(v.limbs[0]), nil
	case 2:
		return joinWords(v.limbs[1], v.limbs[0]), nil
	case 3:
		if v.limbs[2] != 0 {
			return 0, raisef(op, ErrRange, "value does not fit in uint64")
		}
		return joinWords(v.limbs[1], v.limbs[0]), nil
	default:
		return 0, raisef(op, ErrRange, "value does not fit in uint64")
	}
}
