// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

//go:build !amd64 && !arm64

package bigint

// initDispatcherImpl sets up generic (pure-Go) function pointers for
// platforms other than AMD64/ARM64.
func initDispatcherImpl(d *Dispatcher) {
	d.AddVV = addVVGeneric
	d.SubVV = subVVGeneric
	d.AddMulVWW = addMulVWWGeneric
}
