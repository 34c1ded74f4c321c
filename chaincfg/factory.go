// Copyright (c) 2021-2022 The Bitcoin DX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import "fmt"

// networkVariant describes how to build the parameters of one network.
type networkVariant struct {
	// template returns freshly allocated parameters holding the literal
	// values of the network.
	template func() *Params

	// applyArgs applies the runtime overrides the network accepts.
	applyArgs func(p *Params, args ArgSource) error

	// genesis holds the genesis inputs and expected hashes.
	genesis *genesisSpec
}

// variants is indexed by Network.
var variants = [numNetworks]networkVariant{
	MainNet: {
		template:  mainNetParams,
		applyArgs: ignoreArgs,
		genesis:   &mainGenesis,
	},
	TestNet: {
		template:  testNetParams,
		applyArgs: ignoreArgs,
		genesis:   &testGenesis,
	},
	SigNet: {
		template:  sigNetParams,
		applyArgs: applySignetArgs,
		genesis:   &testGenesis,
	},
	RegTest: {
		template:  regTestParams,
		applyArgs: applyRegTestArgs,
		genesis:   &regTestGenesis,
	},
}

// overrideArgs are the arguments only some networks honor.
var overrideArgs = []string{
	ArgSegwitHeight,
	ArgVBParams,
	ArgSignetChallenge,
	ArgSignetSeedNode,
	ArgFastPrune,
}

// ignoreArgs is the override hook of the public networks.  Their parameters
// are fixed, so overrides are reported and dropped.
func ignoreArgs(p *Params, args ArgSource) error {
	for _, name := range overrideArgs {
		if args.IsArgSet(name) {
			log.Warnf("Ignoring -%s on %s", name, p.Network)
		}
	}
	return nil
}

// applyRegTestArgs applies -fastprune and the activation overrides.
func applyRegTestArgs(p *Params, args ArgSource) error {
	fastPrune, err := boolArg(args, ArgFastPrune, false)
	if err != nil {
		return err
	}
	if fastPrune {
		p.PruneAfterHeight = 100
	}

	return updateActivationParams(&p.Consensus, args)
}

// Build returns the parameters of the named network with the overrides in
// args applied.  A nil args applies no overrides.  Every call returns newly
// allocated parameters.
//
// Build panics if the constructed genesis block does not match the hard-coded
// hash or merkle root of the network.
func Build(network string, args ArgSource) (*Params, error) {
	net, err := ParseNetwork(network)
	if err != nil {
		return nil, err
	}
	if args == nil {
		args = noArgs
	}

	variant := &variants[net]
	p := variant.template()
	if err := variant.applyArgs(p, args); err != nil {
		return nil, err
	}

	p.GenesisBlock = buildGenesis(net, variant.genesis)
	p.Consensus.GenesisHash = p.GenesisBlock.BlockHash()

	if err := validateDeployments(&p.Consensus.Deployments); err != nil {
		return nil, fmt.Errorf("%s: %w", net, err)
	}

	return p, nil
}
