// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

//go:build arm64

package bigint

// detectAMD64Features is not applicable on ARM64.
func detectAMD64Features(features *CPUFeatures) {
}

// detectARM64Features detects ARM64-specific CPU features.
func detectARM64Features(features *CPUFeatures) {
	// NEON is standard on ARMv8.
	features.HasNEON = true
}
