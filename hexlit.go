// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

import (
	"fmt"
	"strings"
)

// HexCLit, CLit, Import (spec.md §4.C). HexCLit is a debug/serialization
// form ("16#" + uppercase hex limbs, most to least significant, with the
// top limb's redundant FF/00 byte-pairs compacted); CLit/Import round-trip
// a value through a length-prefixed big-endian byte payload. Both are
// ported from big_rtl.c's bigHexCStri / bigCLit / bigImport.

// HexCLit renders v as "16#" followed by its limbs in hex, most
// significant first, with the top limb compacted: redundant leading FF
// byte-pairs are stripped for negative values, 00 byte-pairs for
// non-negative ones, stopping as soon as stripping further would flip the
// apparent sign of the remaining bytes.
func (v Int) HexCLit() string {
	if !v.IsValid() {
		return " *NULL_BIGINT* "
	}
	if len(v.limbs) == 0 {
		return " *ZERO_SIZE_BIGINT* "
	}
	var b strings.Builder
	b.WriteString("16#")
	top := fmt.Sprintf("%08X", v.limbs[len(v.limbs)-1])
	b.WriteString(compactTopHex(top, v.IsNegative()))
	for i := len(v.limbs) - 2; i >= 0; i-- {
		fmt.Fprintf(&b, "%08X", v.limbs[i])
	}
	return b.String()
}

func compactTopHex(hex string, negative bool) string {
	for len(hex) > 2 {
		if negative {
			if hex[:2] == "FF" && isHighHexNibble(hex[2]) {
				hex = hex[2:]
				continue
			}
		} else {
			if hex[:2] == "00" && isLowHexNibble(hex[2]) {
				hex = hex[2:]
				continue
			}
		}
		break
	}
	return hex
}

func isHighHexNibble(c byte) bool {
	return (c >= '8' && c <= '9') || (c >= 'A' && c <= 'F')
}

func isLowHexNibble(c byte) bool {
	return c >= '0' && c <= '7'
}

// CLit emits a C struct literal {0xXX,0xXX,...} of the four-byte
// big-endian byte count followed by v's minimal two's-complement byte
// sequence, most significant byte first. The count is always >= 1.
func (v Int) CLit() string {
	payload := v.canonicalBigEndianBytes()
	n := uint32(len(payload))
	var b strings.Builder
	b.WriteByte('{')
	fmt.Fprintf(&b, "0x%02X,0x%02X,0x%02X,0x%02X",
		byte(n>>24), byte(n>>16), byte(n>>8), byte(n))
	for _, pb := range payload {
		fmt.Fprintf(&b, ",0x%02X", pb)
	}
	b.WriteByte('}')
	return b.String()
}

// canonicalBigEndianBytes returns v's minimal two's-complement byte
// sequence, most significant byte first.
func (v Int) canonicalBigEndianBytes() []byte {
	little := make([]byte, len(v.limbs)*4)
	for i, l := range v.limbs {
		little[4*i] = byte(l)
		little[4*i+1] = byte(l >> 8)
		little[4*i+2] = byte(l >> 16)
		little[4*i+3] = byte(l >> 24)
	}
	trimmed := trimToMinimalBytes(little)
	out := make([]byte, len(trimmed))
	for i, bb := range trimmed {
		out[len(trimmed)-1-i] = bb
	}
	return out
}

// trimToMinimalBytes applies normalize()'s limb-level canonicalization
// rule at byte granularity instead of word granularity.
func trimToMinimalBytes(buf []byte) []byte {
	n := len(buf)
	if n < 2 {
		return buf
	}
	pos := n - 1
	switch buf[pos] {
	case 0xFF:
		for pos > 0 && buf[pos] == 0xFF {
			pos--
		}
		if buf[pos]&0x80 == 0 {
			pos++
		}
	case 0:
		for pos > 0 && buf[pos] == 0 {
			pos--
		}
		if buf[pos]&0x80 != 0 {
			pos++
		}
	default:
		pos++
		return buf[:pos]
	}
	pos++
	return buf[:pos]
}

// Import parses a buffer laid out the way CLit's payload is: a four-byte
// big-endian count N at offset 0, followed by N bytes of big-endian
// two's-complement magnitude. N=0 is tolerated as zero (positive sign),
// per big_rtl.c's bigImport behavior (SPEC_FULL.md §4).
func Import(buf []byte) (Int, error) {
	const op = "Import"
	if len(buf) < 4 {
		return Int{}, raisef(op, ErrRange, "buffer too short for length prefix")
	}
	n := uint32(buf[0])<<24 | uint32(buf[1])<<16 | uint32(buf[2])<<8 | uint32(buf[3])
	if uint64(len(buf)-4) < uint64(n) {
		return Int{}, raisef(op, ErrRange, "buffer shorter than declared payload")
	}
	if n == 0 {
		return Zero(), nil
	}
	payload := buf[4 : 4+n]

	pad := (4 - int(n)%4) % 4
	padByte := byte(0)
	if payload[0]&0x80 != 0 {
		padByte = 0xFF
	}
	padded := make([]byte, pad+int(n))
	for i := 0; i < pad; i++ {
		padded[i] = padByte
	}
	copy(padded[pad:], payload)

	limbCount := len(padded) / 4
	limbs := make([]word, limbCount)
	for i := 0; i < limbCount; i++ {
		off := len(padded) - (i+1)*4
		limbs[i] = word(padded[off])<<24 | word(padded[off+1])<<16 | word(padded[off+2])<<8 | word(padded[off+3])
	}
	return Int{limbs: normalize(limbs)}, nil
}
