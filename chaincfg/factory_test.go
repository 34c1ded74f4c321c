// Copyright (c) 2021-2022 The Bitcoin DX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestBuildDeterministic ensures repeated builds give equal but independent
// parameters.
func TestBuildDeterministic(t *testing.T) {
	for _, name := range []string{MainNetName, TestNetName, SigNetName, RegTestName} {
		a, err := Build(name, nil)
		require.NoError(t, err)
		b, err := Build(name, Args{})
		require.NoError(t, err)
		require.Equal(t, a, b, name)

		// Mutating one result must not leak into the other.
		a.Consensus.PowLimit.SetInt64(1)
		a.GenesisBlock.Header.Nonce++
		if len(a.DNSSeeds) > 0 {
			a.DNSSeeds[0].Host = "mutated"
		}
		if a.Consensus.MinimumChainWork != nil {
			a.Consensus.MinimumChainWork.SetInt64(7)
		}

		c, err := Build(name, nil)
		require.NoError(t, err)
		require.Equal(t, b, c, name)
	}
}

func TestBuildUnknownNetwork(t *testing.T) {
	for _, name := range []string{"", "mainnet", "Main", "testnet3", "simnet"} {
		p, err := Build(name, nil)
		require.ErrorIs(t, err, ErrUnknownNetwork)
		require.ErrorContains(t, err, name)
		require.Nil(t, p)
	}
}

func TestNetworkParams(t *testing.T) {
	tests := []struct {
		name      string
		network   Network
		magic     [4]byte
		port      string
		hrp       string
		pkh       byte
		halving   int32
		threshold uint32
		window    uint32
		testChain bool
	}{
		{MainNetName, MainNet, [4]byte{0xf6, 0xbd, 0xc4, 0xd2}, "8333", "bc", 26, 105120, 1815, 2016, false},
		{TestNetName, TestNet, [4]byte{0x0b, 0x11, 0x09, 0x07}, "18333", "tb", 111, 105120, 1512, 2016, true},
		{SigNetName, SigNet, [4]byte{0x0a, 0x03, 0xcf, 0x40}, "38333", "tb", 111, 105120, 1815, 2016, true},
		{RegTestName, RegTest, [4]byte{0xfc, 0xba, 0xb5, 0xda}, "18444", "bcrt", 111, 150, 108, 144, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p, err := Build(test.name, nil)
			require.NoError(t, err)

			require.Equal(t, test.network, p.Network)
			require.Equal(t, test.magic, p.MessageStart)
			require.Equal(t, test.port, p.DefaultPort)
			require.Equal(t, test.hrp, p.Bech32HRP)
			require.Equal(t, test.pkh, p.Base58Prefixes.PubKeyHash)
			require.Equal(t, test.halving, p.Consensus.SubsidyHalvingInterval)
			require.Equal(t, test.threshold, p.Consensus.RuleChangeActivationThreshold)
			require.Equal(t, test.window, p.Consensus.MinerConfirmationWindow)
			require.Equal(t, test.testChain, p.IsTestChain)

			require.Equal(t, 4320*time.Second, p.Consensus.PowTargetTimespan)
			require.Equal(t, 240*time.Second, p.Consensus.PowTargetSpacing)
			require.EqualValues(t, 18, p.Consensus.DifficultyAdjustmentInterval())
			require.Equal(t, p.GenesisBlock.BlockHash(), p.Consensus.GenesisHash)
			require.Equal(t, p.Consensus.GenesisHash, *p.GenesisHash())
		})
	}
}

// TestCheckpointsOrdered ensures checkpoint heights strictly increase and the
// genesis checkpoint matches the genesis block.
func TestCheckpointsOrdered(t *testing.T) {
	p, err := Build(MainNetName, nil)
	require.NoError(t, err)

	require.Len(t, p.Checkpoints, 18)
	for i := 1; i < len(p.Checkpoints); i++ {
		require.Greater(t, p.Checkpoints[i].Height, p.Checkpoints[i-1].Height)
	}
	require.Equal(t, p.Consensus.GenesisHash, *p.Checkpoints[0].Hash)

	cp := p.Checkpoint(36906)
	require.NotNil(t, cp)
	require.Equal(t, "000000000000001f4093459e177d276ece931fb642a55a182cd67ff6f7565342",
		cp.Hash.String())
	require.Nil(t, p.Checkpoint(36907))
	require.Nil(t, p.Checkpoint(40000))

	for _, name := range []string{TestNetName, SigNetName, RegTestName} {
		p, err := Build(name, nil)
		require.NoError(t, err)
		require.Empty(t, p.Checkpoints)
		require.Nil(t, p.Checkpoint(0))
	}
}

func TestRegTestParams(t *testing.T) {
	p, err := Build(RegTestName, nil)
	require.NoError(t, err)

	require.EqualValues(t, 1000, p.PruneAfterHeight)
	require.Zero(t, p.Consensus.SegwitHeight)
	require.True(t, p.Consensus.PowNoRetargeting)
	require.True(t, p.IsMockableChain)
	require.Empty(t, p.DNSSeeds)
	require.Equal(t, []int32{110, 200}, p.AssumeUTXOHeights())
	require.Equal(t, "1ebbf5850204c0bdb15bf030f47c7fe91d45c44c712697e4509ba67adb01c618",
		p.AssumeUTXO[110].SerializedHash.String())
	require.EqualValues(t, 200, p.AssumeUTXO[200].ChainTxCount)

	for _, value := range []string{"", "1", "true"} {
		p, err := Build(RegTestName, Args{ArgFastPrune: {value}})
		require.NoError(t, err)
		require.EqualValues(t, 100, p.PruneAfterHeight, "value %q", value)
	}

	p, err = Build(RegTestName, Args{ArgFastPrune: {"0"}})
	require.NoError(t, err)
	require.EqualValues(t, 1000, p.PruneAfterHeight)

	_, err = Build(RegTestName, Args{ArgFastPrune: {"maybe"}})
	require.ErrorIs(t, err, ErrInvalidBoolArg)
}

func TestDeploymentTables(t *testing.T) {
	mainParams, err := Build(MainNetName, nil)
	require.NoError(t, err)
	taproot := mainParams.Consensus.Deployments[DeploymentTaproot]
	require.EqualValues(t, 2, taproot.BitNumber)
	require.EqualValues(t, 1619222400, taproot.StartTime.Int64())
	require.EqualValues(t, 1628640000, taproot.Timeout.Int64())
	require.EqualValues(t, 709632, taproot.MinActivationHeight)
	require.Equal(t, NeverActive(), mainParams.Consensus.Deployments[DeploymentTestDummy].StartTime)

	reg, err := Build(RegTestName, nil)
	require.NoError(t, err)
	require.Equal(t, AlwaysActive(), reg.Consensus.Deployments[DeploymentTaproot].StartTime)
	require.EqualValues(t, 0, reg.Consensus.Deployments[DeploymentTestDummy].StartTime.Int64())
	require.EqualValues(t, int64(math.MaxInt64),
		reg.Consensus.Deployments[DeploymentTestDummy].Timeout.Int64())
}

func TestParamsNet(t *testing.T) {
	p, err := Build(MainNetName, nil)
	require.NoError(t, err)
	require.EqualValues(t, 0xd2c4bdf6, p.Net())
	require.Contains(t, p.String(), "main")
	require.Contains(t, p.String(), "f6bdc4d2")
}
