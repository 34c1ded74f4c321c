// Copyright (c) 2021-2022 The Bitcoin DX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"testing"

	"github.com/bitcoindx/dxd/chaincfg"
	"github.com/stretchr/testify/require"
)

func TestParseAndSetDebugLevels(t *testing.T) {
	tests := []struct {
		level string
		err   string
	}{
		{level: "debug"},
		{level: "CHCF=trace,DXCF=info"},
		{level: "bogus", err: "is invalid"},
		{level: "CHCF", err: "is invalid"},
		{level: "CHCF=debug,DXCF", err: "invalid subsystem/level pair"},
		{level: "NOPE=debug", err: "supported subsytems [CHCF DXCF]"},
		{level: "CHCF=loud", err: "[loud] is invalid"},
	}

	for _, test := range tests {
		err := parseAndSetDebugLevels(test.level)
		if test.err == "" {
			require.NoError(t, err, test.level)
			continue
		}
		require.ErrorContains(t, err, test.err, test.level)
	}
	setLogLevels("info")
}

func TestShowSubsystems(t *testing.T) {
	var buf bytes.Buffer
	err := dxChainCfgMain([]string{"--debuglevel=show"}, &buf)
	require.NoError(t, err)
	require.Contains(t, buf.String(), "CHCF")
}

// TestSelectionFailure ensures a bad override is reported without selecting
// any parameters.
func TestSelectionFailure(t *testing.T) {
	var buf bytes.Buffer
	err := dxChainCfgMain([]string{"--regtest", "--nofilelogging",
		"--vbparams=bogus:1:2"}, &buf)
	require.ErrorIs(t, err, chaincfg.ErrUnknownDeployment)
	require.False(t, chaincfg.IsSelected())

	err = dxChainCfgMain([]string{"--testnet", "--signet"}, &buf)
	require.Error(t, err)
	require.False(t, chaincfg.IsSelected())
}

func TestWriteSummary(t *testing.T) {
	p, err := chaincfg.Build(chaincfg.RegTestName, chaincfg.Args{
		chaincfg.ArgSegwitHeight: {"-1"},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeSummary(&buf, p))

	out := buf.String()
	require.Contains(t, out, "regtest")
	require.Contains(t, out, "fcbab5da")
	require.Contains(t, out, "17497b697bb99d748e655d825a650b4c51193ad9596c3a69b3e2135246bb5943")
	require.Contains(t, out, "Segwit height:        2147483647")
	require.Contains(t, out, "Deployment taproot")
	require.Contains(t, out, "Assume utxo:          110")
	require.Contains(t, out, "bcrt1q")
}

func TestSummaryOutput(t *testing.T) {
	var buf bytes.Buffer
	err := dxChainCfgMain([]string{"--signet", "--nofilelogging",
		"--signetchallenge=51"}, &buf)
	require.NoError(t, err)
	require.True(t, chaincfg.IsSelected())

	magic := chaincfg.SignetMessageStart([]byte{0x51})
	require.Contains(t, buf.String(), "Signet challenge:     51")
	require.Equal(t, magic, chaincfg.Current().MessageStart)

	// The parameters can only be selected once per process.
	err = dxChainCfgMain([]string{"--regtest", "--nofilelogging"}, &buf)
	require.ErrorIs(t, err, chaincfg.ErrParamsAlreadySelected)
}
