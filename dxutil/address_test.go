// Copyright (c) 2021-2022 The Bitcoin DX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dxutil

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/bitcoindx/dxd/chaincfg"
	"github.com/stretchr/testify/require"
)

func newEncoder(t *testing.T, network string) *Encoder {
	t.Helper()

	p, err := chaincfg.Build(network, nil)
	require.NoError(t, err)
	e, err := NewEncoder(p)
	require.NoError(t, err)
	return e
}

func TestPubKeyHashAddress(t *testing.T) {
	pkHash := bytes.Repeat([]byte{0x11}, 20)

	tests := []struct {
		network string
		version byte
	}{
		{chaincfg.MainNetName, 26},
		{chaincfg.TestNetName, 111},
		{chaincfg.RegTestName, 111},
	}

	for _, test := range tests {
		e := newEncoder(t, test.network)
		addr, err := e.PubKeyHashAddress(pkHash)
		require.NoError(t, err)

		version, err := Base58Version(addr)
		require.NoError(t, err)
		require.Equal(t, test.version, version)

		decoded, err := e.DecodeAddress(addr)
		require.NoError(t, err)
		require.Equal(t, pkHash, decoded.ScriptAddress())
	}

	e := newEncoder(t, chaincfg.MainNetName)
	addr, err := e.PubKeyHashAddress(pkHash)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(addr, "B"), addr)

	_, err = e.PubKeyHashAddress(pkHash[:19])
	require.Error(t, err)
}

func TestScriptHashAddress(t *testing.T) {
	e := newEncoder(t, chaincfg.MainNetName)
	addr, err := e.ScriptHashAddress([]byte{0x51})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(addr, "3"), addr)

	version, err := Base58Version(addr)
	require.NoError(t, err)
	require.EqualValues(t, 5, version)
}

func TestWitnessAddress(t *testing.T) {
	pkHash := bytes.Repeat([]byte{0x22}, 20)

	for network, prefix := range map[string]string{
		chaincfg.MainNetName: "bc1q",
		chaincfg.SigNetName:  "tb1q",
		chaincfg.RegTestName: "bcrt1q",
	} {
		e := newEncoder(t, network)
		addr, err := e.WitnessPubKeyHashAddress(pkHash)
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(addr, prefix), addr)

		decoded, err := e.DecodeAddress(addr)
		require.NoError(t, err)
		require.Equal(t, pkHash, decoded.ScriptAddress())
	}

	// A regtest address does not decode on main.
	regtest := newEncoder(t, chaincfg.RegTestName)
	addr, err := regtest.WitnessPubKeyHashAddress(pkHash)
	require.NoError(t, err)
	_, err = newEncoder(t, chaincfg.MainNetName).DecodeAddress(addr)
	require.Error(t, err)
}

func TestWIF(t *testing.T) {
	privKey := bytes.Repeat([]byte{0x01}, 32)

	mainEnc := newEncoder(t, chaincfg.MainNetName)
	s, err := mainEnc.WIF(privKey, true)
	require.NoError(t, err)

	wif, err := mainEnc.DecodeWIF(s)
	require.NoError(t, err)
	require.True(t, wif.CompressPubKey)
	require.Equal(t, privKey, wif.PrivKey.Serialize())

	version, err := Base58Version(s)
	require.NoError(t, err)
	require.EqualValues(t, 128, version)

	test := newEncoder(t, chaincfg.TestNetName)
	_, err = test.DecodeWIF(s)
	require.ErrorIs(t, err, ErrWrongNetwork)

	_, err = mainEnc.WIF(privKey[:31], false)
	require.Error(t, err)
}

func TestNewMaster(t *testing.T) {
	seed := bytes.Repeat([]byte{0x42}, 32)

	tests := []struct {
		network string
		priv    string
		pub     string
	}{
		{chaincfg.MainNetName, "xprv", "xpub"},
		{chaincfg.TestNetName, "tprv", "tpub"},
	}

	for _, test := range tests {
		e := newEncoder(t, test.network)
		master, err := e.NewMaster(seed)
		require.NoError(t, err)
		require.True(t, master.IsPrivate())
		require.True(t, strings.HasPrefix(master.String(), test.priv))

		pub, err := master.Neuter()
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(pub.String(), test.pub))

		addr, err := pub.Address(e.Params())
		require.NoError(t, err)
		require.True(t, addr.IsForNet(e.Params()))
	}
}

// TestNewEncoderConcurrent ensures encoders can be created from several
// goroutines at once.
func TestNewEncoderConcurrent(t *testing.T) {
	networks := []string{
		chaincfg.MainNetName, chaincfg.TestNetName,
		chaincfg.SigNetName, chaincfg.RegTestName,
	}

	params := make([]*chaincfg.Params, len(networks))
	for i, name := range networks {
		p, err := chaincfg.Build(name, nil)
		require.NoError(t, err)
		params[i] = p
	}

	var wg sync.WaitGroup
	errs := make(chan error, 4*len(params))
	for i := 0; i < 4; i++ {
		for _, p := range params {
			wg.Add(1)
			go func(p *chaincfg.Params) {
				defer wg.Done()
				_, err := NewEncoder(p)
				errs <- err
			}(p)
		}
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
}
