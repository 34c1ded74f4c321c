// Copyright (c) 2021-2022 The Bitcoin DX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import "fmt"

// Network identifies one of the network variants the node can run on.
type Network uint8

const (
	// MainNet is the production network.
	MainNet Network = iota

	// TestNet is the public test network.
	TestNet

	// SigNet is the signed test network (BIP0325).
	SigNet

	// RegTest is the local regression test network.
	RegTest

	// NOTE: numNetworks must always come last.
	numNetworks
)

// Network selector tokens accepted by Build and Select.
const (
	MainNetName = "main"
	TestNetName = "test"
	SigNetName  = "signet"
	RegTestName = "regtest"
)

var networkNames = [numNetworks]string{
	MainNet: MainNetName,
	TestNet: TestNetName,
	SigNet:  SigNetName,
	RegTest: RegTestName,
}

// String returns the selector token of the network.
func (n Network) String() string {
	if n < numNetworks {
		return networkNames[n]
	}
	return fmt.Sprintf("Unknown Network (%d)", uint8(n))
}

// ParseNetwork returns the network named by the given selector token.  The
// match is exact.
func ParseNetwork(name string) (Network, error) {
	for n, s := range networkNames {
		if s == name {
			return Network(n), nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownNetwork, name)
}
