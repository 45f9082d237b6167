// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

import "sync"

// addVVFunc/subVVFunc/addMulVWWFunc are the function-pointer shapes
// mpn.go dispatches through, mirroring the teacher's Dispatcher: one
// struct of func fields, selected once from CPU features on the first
// call that needs it (getDispatcher), rather than a branch on every call.
type (
	addVVFunc    func(z, x, y []word) word
	subVVFunc    func(z, x, y []word) word
	addMulVWWFunc func(z, x []word, m word) word
)

// Dispatcher holds the limb-primitive implementations selected at runtime.
// Where the teacher's Dispatcher chooses among AVX2/AMD64/ARM64/generic
// vector-math backends, this one chooses between the scalar carry loop
// (mpn_generic.go) and a four-word-unrolled carry loop (mpn_unrolled.go)
// for the three hot primitives that dominate schoolbook multiply and
// Knuth-D division.
type Dispatcher struct {
	AddVV    addVVFunc
	SubVV    subVVFunc
	AddMulVWW addMulVWWFunc

	Features CPUFeatures
}

var (
	dispatcher     *Dispatcher
	dispatcherOnce sync.Once
)

// initDispatcher initializes the function dispatcher based on CPU
// capabilities. The actual implementation selection is done in
// architecture-specific files.
func initDispatcher() *Dispatcher {
	d := &Dispatcher{}
	d.Features = GetCPUFeatures()
	initDispatcherImpl(d)
	return d
}

// getDispatcher returns the initialized dispatcher (singleton).
func getDispatcher() *Dispatcher {
	dispatcherOnce.Do(func() {
		dispatcher = initDispatcher()
	})
	return dispatcher
}
