// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

//go:build !amd64 && !arm64

package bigint

// detectAMD64Features is not applicable for non-AMD64 platforms.
func detectAMD64Features(features *CPUFeatures) {
}

// detectARM64Features is not applicable for non-ARM64 platforms.
func detectARM64Features(features *CPUFeatures) {
}
