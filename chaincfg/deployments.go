// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2021-2022 The Bitcoin DX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"math"
	"time"
)

// DeploymentTimeKind tags the meaning of a DeploymentTime.
type DeploymentTimeKind uint8

const (
	// DeploymentTimeAt is a concrete median time past.
	DeploymentTimeAt DeploymentTimeKind = iota

	// DeploymentAlwaysActive marks a deployment that is active from
	// genesis.  Only meaningful as a start time.
	DeploymentAlwaysActive

	// DeploymentNeverActive marks a deployment that can never activate.
	// Only meaningful as a start time.
	DeploymentNeverActive

	// DeploymentNoTimeout marks a deployment that never times out.  Only
	// meaningful as a timeout.
	DeploymentNoTimeout
)

// Numeric encodings of the DeploymentTime sentinels.  They are what the
// activation state machine compares against and what -vbparams accepts.
const (
	alwaysActiveTime int64 = -1
	neverActiveTime  int64 = -2
	noTimeoutTime    int64 = math.MaxInt64
)

// DeploymentTime is the start time or timeout of a deployment.  The sentinel
// values are explicit kinds instead of magic numbers.
type DeploymentTime struct {
	Kind DeploymentTimeKind
	Unix int64
}

// DeploymentTimeFromInt64 converts the numeric encoding of a deployment time
// into a DeploymentTime.
func DeploymentTimeFromInt64(v int64) DeploymentTime {
	switch v {
	case alwaysActiveTime:
		return AlwaysActive()
	case neverActiveTime:
		return NeverActive()
	case noTimeoutTime:
		return NoTimeout()
	}
	return DeploymentTime{Kind: DeploymentTimeAt, Unix: v}
}

// At returns a DeploymentTime at the given time.
func At(t time.Time) DeploymentTime {
	return DeploymentTime{Kind: DeploymentTimeAt, Unix: t.Unix()}
}

// AlwaysActive returns the always active start time.
func AlwaysActive() DeploymentTime {
	return DeploymentTime{Kind: DeploymentAlwaysActive}
}

// NeverActive returns the never active start time.
func NeverActive() DeploymentTime {
	return DeploymentTime{Kind: DeploymentNeverActive}
}

// NoTimeout returns the timeout of a deployment that never expires.
func NoTimeout() DeploymentTime {
	return DeploymentTime{Kind: DeploymentNoTimeout}
}

// Int64 returns the numeric encoding of the deployment time.
func (d DeploymentTime) Int64() int64 {
	switch d.Kind {
	case DeploymentAlwaysActive:
		return alwaysActiveTime
	case DeploymentNeverActive:
		return neverActiveTime
	case DeploymentNoTimeout:
		return noTimeoutTime
	}
	return d.Unix
}

// String returns the deployment time in human-readable form.
func (d DeploymentTime) String() string {
	switch d.Kind {
	case DeploymentAlwaysActive:
		return "always active"
	case DeploymentNeverActive:
		return "never active"
	case DeploymentNoTimeout:
		return "no timeout"
	}
	return time.Unix(d.Unix, 0).UTC().String()
}

// ConsensusDeployment defines details related to a specific consensus rule
// change that is voted in.  This is part of BIP0009.
type ConsensusDeployment struct {
	// BitNumber defines the specific bit number within the block version
	// this particular soft-fork deployment refers to.
	BitNumber uint8

	// StartTime is the median time past after which voting starts.
	StartTime DeploymentTime

	// Timeout is the median time past after which a deployment that has
	// not locked in fails.
	Timeout DeploymentTime

	// MinActivationHeight is an optional field that when set (default
	// value being zero), modifies the traditional BIP 9 state machine by
	// only transitioning from LockedIn to Active once the block height is
	// greater than (or equal to) thus specified height.
	MinActivationHeight int32
}

// maxVersionBitsDeploymentBit bounds the bit numbers a deployment may use.
const maxVersionBitsDeploymentBit = 29

// Constants that define the deployment offset in the deployments field of the
// consensus parameters for each deployment.  This is useful to be able to get
// the details of a specific deployment by name.
const (
	// DeploymentTestDummy defines the rule change deployment ID for testing
	// purposes.
	DeploymentTestDummy = iota

	// DeploymentTaproot defines the rule change deployment ID for the
	// Taproot (+Schnorr) soft-fork package. The taproot package includes
	// the deployment of BIPS 340, 341 and 342.
	DeploymentTaproot

	// NOTE: DefinedDeployments must always come last since it is used to
	// determine how many defined deployments there currently are.

	// DefinedDeployments is the number of currently defined deployments.
	DefinedDeployments
)

// deploymentNames maps each deployment to the name -vbparams uses for it.
var deploymentNames = [DefinedDeployments]string{
	DeploymentTestDummy: "testdummy",
	DeploymentTaproot:   "taproot",
}

// DeploymentName returns the name of the deployment with the given ID.
func DeploymentName(id int) string {
	if id < 0 || id >= DefinedDeployments {
		return fmt.Sprintf("unknown deployment (%d)", id)
	}
	return deploymentNames[id]
}

// lookupDeployment returns the ID of the deployment with the given name.  The
// match is case-sensitive.
func lookupDeployment(name string) (int, bool) {
	for id, n := range deploymentNames {
		if n == name {
			return id, true
		}
	}
	return 0, false
}

// validateDeployments checks that every deployment uses a distinct bit below
// maxVersionBitsDeploymentBit.
func validateDeployments(deployments *[DefinedDeployments]ConsensusDeployment) error {
	var used uint32
	for id, d := range deployments {
		if d.BitNumber >= maxVersionBitsDeploymentBit {
			return fmt.Errorf("deployment %s uses bit %d, must be "+
				"below %d", DeploymentName(id), d.BitNumber,
				maxVersionBitsDeploymentBit)
		}
		if used&(1<<d.BitNumber) != 0 {
			return fmt.Errorf("deployment %s reuses bit %d",
				DeploymentName(id), d.BitNumber)
		}
		used |= 1 << d.BitNumber
	}
	return nil
}
