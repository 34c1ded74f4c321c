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

func TestParseNetwork(t *testing.T) {
	for n := MainNet; n < numNetworks; n++ {
		got, err := ParseNetwork(n.String())
		require.NoError(t, err)
		require.Equal(t, n, got)
	}

	_, err := ParseNetwork("MAIN")
	require.ErrorIs(t, err, ErrUnknownNetwork)
	require.Equal(t, "Unknown Network (9)", Network(9).String())
}

func TestDeploymentTime(t *testing.T) {
	tests := []struct {
		in   int64
		want DeploymentTime
		str  string
	}{
		{-1, AlwaysActive(), "always active"},
		{-2, NeverActive(), "never active"},
		{math.MaxInt64, NoTimeout(), "no timeout"},
		{0, At(time.Unix(0, 0)), "1970-01-01 00:00:00 +0000 UTC"},
		{-3, DeploymentTime{Kind: DeploymentTimeAt, Unix: -3}, "1969-12-31 23:59:57 +0000 UTC"},
	}

	for _, test := range tests {
		got := DeploymentTimeFromInt64(test.in)
		require.Equal(t, test.want, got)
		require.Equal(t, test.in, got.Int64())
		require.Equal(t, test.str, got.String())
	}
}

func TestDeploymentNames(t *testing.T) {
	for id := 0; id < DefinedDeployments; id++ {
		got, ok := lookupDeployment(DeploymentName(id))
		require.True(t, ok)
		require.Equal(t, id, got)
	}
	_, ok := lookupDeployment("segwit")
	require.False(t, ok)
	require.Contains(t, DeploymentName(DefinedDeployments), "unknown")
}

func TestValidateDeployments(t *testing.T) {
	p := regTestParams()
	require.NoError(t, validateDeployments(&p.Consensus.Deployments))

	p.Consensus.Deployments[DeploymentTaproot].BitNumber = 28
	require.ErrorContains(t, validateDeployments(&p.Consensus.Deployments), "reuses bit 28")

	p.Consensus.Deployments[DeploymentTaproot].BitNumber = 29
	require.ErrorContains(t, validateDeployments(&p.Consensus.Deployments), "below 29")
}
