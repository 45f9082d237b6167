// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

import (
	"runtime"
	"sync"
)

// CPUFeatures holds detected CPU capabilities relevant to limb-buffer
// arithmetic. Ported from the teacher's CPUFeatures/GetCPUFeatures
// singleton, trimmed to a few architecture flags. Only HasBMI2 changes
// behavior: dispatch_amd64.go gives BMI2-class chips the four-wide
// unrolled carry chain in mpn_unrolled.go; everyone else gets the scalar
// loop in mpn_generic.go.
type CPUFeatures struct {
	HasBMI2 bool // AMD64: wide add/sub/mul-add carry chains pay off
	HasNEON bool // ARM64: NEON is baseline on ARMv8, still worth a flag
	IsAMD64 bool
	IsARM64 bool
}

var (
	cpuFeatures     CPUFeatures
	cpuFeaturesOnce sync.Once
)

// detectCPUFeatures performs runtime CPU feature detection.
func detectCPUFeatures() CPUFeatures {
	var features CPUFeatures

	arch := runtime.GOARCH
	features.IsAMD64 = arch == "amd64"
	features.IsARM64 = arch == "arm64"

	if features.IsAMD64 {
		detectAMD64Features(&features)
	} else if features.IsARM64 {
		detectARM64Features(&features)
	}

	return features
}

// GetCPUFeatures returns the detected CPU features (cached).
func GetCPUFeatures() CPUFeatures {
	cpuFeaturesOnce.Do(func() {
		cpuFeatures = detectCPUFeatures()
	})
	return cpuFeatures
}

// detectAMD64Features and detectARM64Features are implemented in
// architecture-specific files: cpu_detect_amd64.go, cpu_detect_arm64.go,
// cpu_detect_generic.go.
