// Copyright (c) 2021-2022 The Bitcoin DX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"strconv"
)

// Names of the arguments the network builders read.
const (
	ArgSegwitHeight    = "segwitheight"
	ArgVBParams        = "vbparams"
	ArgSignetChallenge = "signetchallenge"
	ArgSignetSeedNode  = "signetseednode"
	ArgFastPrune       = "fastprune"
)

// ArgSource provides already parsed argument values to the network builders.
type ArgSource interface {
	// IsArgSet reports whether the argument was given at least once.
	IsArgSet(name string) bool

	// GetArgs returns every value given for the argument, in order.
	GetArgs(name string) []string
}

// Args is a simple ArgSource backed by a map.  A nil Args has no arguments
// set.
type Args map[string][]string

// IsArgSet reports whether the argument was given at least once.
func (a Args) IsArgSet(name string) bool {
	_, ok := a[name]
	return ok
}

// GetArgs returns every value given for the argument, in order.
func (a Args) GetArgs(name string) []string {
	return a[name]
}

// Set replaces the values of the argument with the single value v.
func (a Args) Set(name, v string) {
	a[name] = []string{v}
}

// Add appends v to the values of the argument.
func (a Args) Add(name, v string) {
	a[name] = append(a[name], v)
}

// lastArg returns the last value of a single valued argument.
func lastArg(args ArgSource, name string) (string, bool) {
	if !args.IsArgSet(name) {
		return "", false
	}
	values := args.GetArgs(name)
	if len(values) == 0 {
		return "", true
	}
	return values[len(values)-1], true
}

// boolArg returns the value of a boolean argument.  An argument given without
// a value is true.
func boolArg(args ArgSource, name string, def bool) (bool, error) {
	v, ok := lastArg(args, name)
	if !ok {
		return def, nil
	}
	if v == "" {
		return true, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%w: -%s=%s", ErrInvalidBoolArg, name, v)
	}
	return b, nil
}

// noArgs is the ArgSource used when the caller passes nil.
var noArgs = Args(nil)
