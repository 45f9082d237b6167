// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

//go:build amd64

package bigint

// initDispatcherImpl sets up AMD64-specific function pointers.
func initDispatcherImpl(d *Dispatcher) {
	if d.Features.HasBMI2 {
		d.AddVV = addVVUnrolled
		d.SubVV = subVVUnrolled
		d.AddMulVWW = addMulVWWUnrolled
	} else {
		d.AddVV = addVVGeneric
		d.SubVV = subVVGeneric
		d.AddMulVWW = addMulVWWGeneric
	}
}
