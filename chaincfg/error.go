// Copyright (c) 2021-2022 The Bitcoin DX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import "errors"

var (
	// ErrUnknownNetwork describes an error where the requested network is
	// not one of the known selector tokens.
	ErrUnknownNetwork = errors.New("unknown chain")

	// ErrSegwitHeightRange describes an error where -segwitheight is
	// outside of the accepted range.
	ErrSegwitHeightRange = errors.New("activation height for segwit is " +
		"out of valid range, use -1 to disable segwit")

	// ErrInvalidSegwitHeight describes an error where -segwitheight is not
	// an integer.
	ErrInvalidSegwitHeight = errors.New("invalid segwit activation height")

	// ErrMalformedVBParams describes an error where a -vbparams value does
	// not have the expected number of fields.
	ErrMalformedVBParams = errors.New("version bits parameters malformed, " +
		"expecting deployment:start:end[:min_activation_height]")

	// ErrInvalidStartTime describes an error where the start field of a
	// -vbparams value is not a 64-bit integer.
	ErrInvalidStartTime = errors.New("invalid nStartTime")

	// ErrInvalidTimeout describes an error where the timeout field of a
	// -vbparams value is not a 64-bit integer.
	ErrInvalidTimeout = errors.New("invalid nTimeout")

	// ErrInvalidMinActivationHeight describes an error where the optional
	// fourth field of a -vbparams value is not a 32-bit integer.
	ErrInvalidMinActivationHeight = errors.New("invalid min_activation_height")

	// ErrUnknownDeployment describes an error where a -vbparams value names
	// a deployment that does not exist.
	ErrUnknownDeployment = errors.New("invalid deployment")

	// ErrMultipleSignetChallenges describes an error where more than one
	// -signetchallenge value was given.
	ErrMultipleSignetChallenges = errors.New("-signetchallenge cannot be " +
		"multiple values")

	// ErrMissingSignetChallenge describes an error where -signetchallenge
	// was set without a value.
	ErrMissingSignetChallenge = errors.New("-signetchallenge requires a " +
		"value")

	// ErrInvalidSignetChallenge describes an error where the signet
	// challenge is not valid hex.
	ErrInvalidSignetChallenge = errors.New("invalid signet challenge")

	// ErrInvalidBoolArg describes an error where a boolean argument has a
	// value that is not a boolean.
	ErrInvalidBoolArg = errors.New("invalid boolean argument")

	// ErrParamsAlreadySelected describes an error where the active chain
	// parameters are selected more than once.
	ErrParamsAlreadySelected = errors.New("chain parameters already selected")
)
