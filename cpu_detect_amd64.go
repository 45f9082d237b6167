// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

//go:build amd64

package bigint

// detectAMD64Features detects AMD64-specific CPU features.
//
// BMI2 (ADCX/ADOX-style carry chains) has shipped on every mainstream
// AMD64 chip since Broadwell/Excavator; rather than pull in a CPUID
// dependency for a single flag, this assumes it is present the same way
// the teacher's ARM64 detector assumes NEON is present on ARMv8 — a
// conservative baseline, not a hardware probe.
func detectAMD64Features(features *CPUFeatures) {
	features.HasBMI2 = true
}

// detectARM64Features is not applicable on AMD64.
func detectARM64Features(features *CPUFeatures) {
}
