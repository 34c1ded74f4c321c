// Copyright (c) 2021-2022 The Bitcoin DX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dxutil

import (
	"time"

	"github.com/bitcoindx/dxd/chaincfg"
	"github.com/btcsuite/btcd/blockchain"
	btcdchaincfg "github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const (
	// coinbaseMaturity is the number of blocks before a coinbase output can
	// be spent.
	coinbaseMaturity = 100

	// retargetAdjustmentFactor bounds a single difficulty adjustment.
	retargetAdjustmentFactor = 4
)

// deploymentMap maps the deployments to their btcd counterparts.
var deploymentMap = [chaincfg.DefinedDeployments]int{
	chaincfg.DeploymentTestDummy: btcdchaincfg.DeploymentTestDummy,
	chaincfg.DeploymentTaproot:   btcdchaincfg.DeploymentTaproot,
}

// neverActiveEnd is the end time given to deployments that can never
// activate.  Every block is past it so the deployment fails at once.
var neverActiveEnd = time.Unix(0, 0)

// deploymentStarter converts a deployment start time.  The zero time means
// always started.
func deploymentStarter(t chaincfg.DeploymentTime) btcdchaincfg.ConsensusDeploymentStarter {
	switch t.Kind {
	case chaincfg.DeploymentTimeAt:
		return btcdchaincfg.NewMedianTimeDeploymentStarter(time.Unix(t.Unix, 0))
	default:
		return btcdchaincfg.NewMedianTimeDeploymentStarter(time.Time{})
	}
}

// deploymentEnder converts a deployment timeout.  The zero time means never
// ending.
func deploymentEnder(start, timeout chaincfg.DeploymentTime) btcdchaincfg.ConsensusDeploymentEnder {
	switch {
	case start.Kind == chaincfg.DeploymentNeverActive:
		return btcdchaincfg.NewMedianTimeDeploymentEnder(neverActiveEnd)
	case timeout.Kind == chaincfg.DeploymentTimeAt:
		return btcdchaincfg.NewMedianTimeDeploymentEnder(time.Unix(timeout.Unix, 0))
	default:
		return btcdchaincfg.NewMedianTimeDeploymentEnder(time.Time{})
	}
}

// BtcdParams returns the btcd network parameters equivalent to p so the
// btcd and btcutil packages can be used with a Bitcoin DX network.  Rules
// btcd has no notion of, such as signet challenges and assume utxo data, are
// not carried over.  Deployments btcd defines but p does not are left
// unset.
func BtcdParams(p *chaincfg.Params) *btcdchaincfg.Params {
	params := &btcdchaincfg.Params{
		Name:        p.Network.String(),
		Net:         p.Net(),
		DefaultPort: p.DefaultPort,

		GenesisBlock: p.GenesisBlock,
		GenesisHash:  p.GenesisHash(),

		PowLimit:                 p.Consensus.PowLimit,
		PowLimitBits:             blockchain.BigToCompact(p.Consensus.PowLimit),
		PoWNoRetargeting:         p.Consensus.PowNoRetargeting,
		BIP0034Height:            p.Consensus.BIP34Height,
		BIP0065Height:            p.Consensus.BIP65Height,
		BIP0066Height:            p.Consensus.BIP66Height,
		CoinbaseMaturity:         coinbaseMaturity,
		SubsidyReductionInterval: p.Consensus.SubsidyHalvingInterval,
		TargetTimespan:           p.Consensus.PowTargetTimespan,
		TargetTimePerBlock:       p.Consensus.PowTargetSpacing,
		RetargetAdjustmentFactor: retargetAdjustmentFactor,
		ReduceMinDifficulty:      p.Consensus.PowAllowMinDifficultyBlocks,
		MinDiffReductionTime:     p.Consensus.PowTargetSpacing * 2,
		GenerateSupported:        p.IsMockableChain,

		RuleChangeActivationThreshold: p.Consensus.RuleChangeActivationThreshold,
		MinerConfirmationWindow:       p.Consensus.MinerConfirmationWindow,

		RelayNonStdTxs: !p.RequireStandard,

		Bech32HRPSegwit: p.Bech32HRP,

		// Address encoding magics
		PubKeyHashAddrID:        p.Base58Prefixes.PubKeyHash,
		ScriptHashAddrID:        p.Base58Prefixes.ScriptHash,
		PrivateKeyID:            p.Base58Prefixes.SecretKey,
		WitnessPubKeyHashAddrID: 0x06,
		WitnessScriptHashAddrID: 0x0a,

		HDPrivateKeyID: p.Base58Prefixes.ExtSecretKey,
		HDPublicKeyID:  p.Base58Prefixes.ExtPublicKey,
	}
	if p.IsTestChain {
		params.HDCoinType = 1
	}

	for _, seed := range p.DNSSeeds {
		params.DNSSeeds = append(params.DNSSeeds, btcdchaincfg.DNSSeed{
			Host:         seed.Host,
			HasFiltering: seed.HasFiltering,
		})
	}

	params.Checkpoints = make([]btcdchaincfg.Checkpoint, len(p.Checkpoints))
	for i, cp := range p.Checkpoints {
		var hash chainhash.Hash
		copy(hash[:], cp.Hash[:])

		params.Checkpoints[i] = btcdchaincfg.Checkpoint{
			Height: cp.Height,
			Hash:   &hash,
		}
	}

	for id, d := range p.Consensus.Deployments {
		var minHeight uint32
		if d.MinActivationHeight > 0 {
			minHeight = uint32(d.MinActivationHeight)
		}
		params.Deployments[deploymentMap[id]] = btcdchaincfg.ConsensusDeployment{
			BitNumber:           d.BitNumber,
			MinActivationHeight: minHeight,
			DeploymentStarter:   deploymentStarter(d.StartTime),
			DeploymentEnder:     deploymentEnder(d.StartTime, d.Timeout),
		}
	}

	return params
}
