// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

//go:build arm64

package bigint

// initDispatcherImpl sets up ARM64-specific function pointers. NEON gives
// no benefit to the sequential carry-chain primitives the way it does to
// the teacher's packed vector math, so ARM64 uses the same scalar loop as
// the non-BMI2 AMD64 path.
func initDispatcherImpl(d *Dispatcher) {
	d.AddVV = addVVGeneric
	d.SubVV = subVVGeneric
	d.AddMulVWW = addMulVWWGeneric
}
