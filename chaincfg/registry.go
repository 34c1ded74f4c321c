// Copyright (c) 2021-2022 The Bitcoin DX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import "sync/atomic"

// activeParams holds the parameters selected for the process.  It is assigned
// at most once.
var activeParams atomic.Pointer[Params]

// Select builds the parameters of the named network and makes them the
// process wide active parameters.  It must be called once during startup,
// before any call to Current.  Later calls return ErrParamsAlreadySelected
// and leave the active parameters unchanged.
func Select(network string, args ArgSource) error {
	if activeParams.Load() != nil {
		return ErrParamsAlreadySelected
	}

	p, err := Build(network, args)
	if err != nil {
		return err
	}

	if !activeParams.CompareAndSwap(nil, p) {
		return ErrParamsAlreadySelected
	}

	log.Infof("Selected %v", p)
	return nil
}

// Current returns the active parameters.  It panics if Select has not
// succeeded yet.
func Current() *Params {
	p := activeParams.Load()
	if p == nil {
		panic("chaincfg: Current called before Select")
	}
	return p
}

// IsSelected reports whether the active parameters have been selected.
func IsSelected() bool {
	return activeParams.Load() != nil
}

// resetActiveParams clears the active parameters.  Only for tests.
func resetActiveParams() {
	activeParams.Store(nil)
}
