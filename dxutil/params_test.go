// Copyright (c) 2021-2022 The Bitcoin DX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dxutil

import (
	"testing"

	"github.com/bitcoindx/dxd/chaincfg"
	btcdchaincfg "github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/require"
)

func TestBtcdParams(t *testing.T) {
	p, err := chaincfg.Build(chaincfg.MainNetName, nil)
	require.NoError(t, err)

	params := BtcdParams(p)
	require.Equal(t, "main", params.Name)
	require.Equal(t, p.Net(), params.Net)
	require.Equal(t, "8333", params.DefaultPort)
	require.Equal(t, p.Consensus.GenesisHash, *params.GenesisHash)
	require.Equal(t, uint32(0x1e0fffff), params.PowLimitBits)
	require.EqualValues(t, 105120, params.SubsidyReductionInterval)
	require.EqualValues(t, 26, params.PubKeyHashAddrID)
	require.EqualValues(t, 5, params.ScriptHashAddrID)
	require.EqualValues(t, 128, params.PrivateKeyID)
	require.Equal(t, "bc", params.Bech32HRPSegwit)
	require.Equal(t, [4]byte{0x04, 0x88, 0xad, 0xe4}, params.HDPrivateKeyID)
	require.Zero(t, params.HDCoinType)
	require.False(t, params.RelayNonStdTxs)
	require.Len(t, params.DNSSeeds, 3)

	require.Len(t, params.Checkpoints, len(p.Checkpoints))
	for i, cp := range params.Checkpoints {
		require.Equal(t, p.Checkpoints[i].Height, cp.Height)
		require.Equal(t, *p.Checkpoints[i].Hash, *cp.Hash)
	}

	taproot := params.Deployments[btcdchaincfg.DeploymentTaproot]
	require.EqualValues(t, 2, taproot.BitNumber)
	require.EqualValues(t, 709632, taproot.MinActivationHeight)
	require.NotNil(t, taproot.DeploymentStarter)
	require.NotNil(t, taproot.DeploymentEnder)

	dummy := params.Deployments[btcdchaincfg.DeploymentTestDummy]
	require.EqualValues(t, 28, dummy.BitNumber)
}

func TestBtcdParamsTestNetworks(t *testing.T) {
	for _, name := range []string{chaincfg.TestNetName, chaincfg.SigNetName, chaincfg.RegTestName} {
		p, err := chaincfg.Build(name, nil)
		require.NoError(t, err)

		params := BtcdParams(p)
		require.EqualValues(t, 1, params.HDCoinType, name)
		require.EqualValues(t, 111, params.PubKeyHashAddrID, name)
		require.Equal(t, p.Bech32HRP, params.Bech32HRPSegwit, name)
	}

	p, err := chaincfg.Build(chaincfg.RegTestName, nil)
	require.NoError(t, err)
	params := BtcdParams(p)
	require.True(t, params.PoWNoRetargeting)
	require.True(t, params.GenerateSupported)
	require.Empty(t, params.Checkpoints)
	require.Empty(t, params.DNSSeeds)
}

// TestBtcdParamsNegativeMinActivationHeight ensures a negative minimum
// activation height does not wrap around in the btcd parameters.
func TestBtcdParamsNegativeMinActivationHeight(t *testing.T) {
	p, err := chaincfg.Build(chaincfg.RegTestName, nil)
	require.NoError(t, err)
	p.Consensus.Deployments[chaincfg.DeploymentTestDummy].MinActivationHeight = -5

	params := BtcdParams(p)
	dummy := params.Deployments[btcdchaincfg.DeploymentTestDummy]
	require.Zero(t, dummy.MinActivationHeight)
}
