// Copyright (c) 2021-2022 The Bitcoin DX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dxutil

import (
	"errors"
	"fmt"
	"sync"

	"github.com/bitcoindx/dxd/chaincfg"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	btcdchaincfg "github.com/btcsuite/btcd/chaincfg"
)

// ErrWrongNetwork is returned when an address or key belongs to another
// network.
var ErrWrongNetwork = errors.New("address is for another network")

// Encoder renders addresses and keys with the prefixes of one network.
type Encoder struct {
	params *btcdchaincfg.Params
}

// hdKeyIDs guards the unsynchronized btcd HD key id registry.  Each key pair
// is registered once.
var hdKeyIDs = struct {
	sync.Mutex
	registered map[[8]byte]struct{}
}{registered: make(map[[8]byte]struct{})}

// registerHDKeyIDs registers the extended key magics of params with btcd
// unless that was already done.
func registerHDKeyIDs(params *btcdchaincfg.Params) error {
	var key [8]byte
	copy(key[:4], params.HDPublicKeyID[:])
	copy(key[4:], params.HDPrivateKeyID[:])

	hdKeyIDs.Lock()
	defer hdKeyIDs.Unlock()

	if _, ok := hdKeyIDs.registered[key]; ok {
		return nil
	}
	err := btcdchaincfg.RegisterHDKeyID(params.HDPublicKeyID[:],
		params.HDPrivateKeyID[:])
	if err != nil {
		return err
	}
	hdKeyIDs.registered[key] = struct{}{}
	return nil
}

// NewEncoder returns an Encoder for the network described by p.  The extended
// key magics of the network are registered with btcd so extended private keys
// can be neutered.  It is safe for concurrent use, but btcd's registry is
// only guarded against other callers of NewEncoder.
func NewEncoder(p *chaincfg.Params) (*Encoder, error) {
	params := BtcdParams(p)
	if err := registerHDKeyIDs(params); err != nil {
		return nil, err
	}
	return &Encoder{params: params}, nil
}

// Params returns the btcd parameters used by the encoder.
func (e *Encoder) Params() *btcdchaincfg.Params {
	return e.params
}

// PubKeyHashAddress returns the P2PKH address of a 20 byte public key hash.
func (e *Encoder) PubKeyHashAddress(pkHash []byte) (string, error) {
	addr, err := btcutil.NewAddressPubKeyHash(pkHash, e.params)
	if err != nil {
		return "", err
	}
	return addr.EncodeAddress(), nil
}

// ScriptHashAddress returns the P2SH address paying to the redeem script.
func (e *Encoder) ScriptHashAddress(redeemScript []byte) (string, error) {
	addr, err := btcutil.NewAddressScriptHash(redeemScript, e.params)
	if err != nil {
		return "", err
	}
	return addr.EncodeAddress(), nil
}

// WitnessPubKeyHashAddress returns the bech32 P2WPKH address of a 20 byte
// public key hash.
func (e *Encoder) WitnessPubKeyHashAddress(pkHash []byte) (string, error) {
	addr, err := btcutil.NewAddressWitnessPubKeyHash(pkHash, e.params)
	if err != nil {
		return "", err
	}
	return addr.EncodeAddress(), nil
}

// DecodeAddress decodes addr and checks that it belongs to the network.
func (e *Encoder) DecodeAddress(addr string) (btcutil.Address, error) {
	decoded, err := btcutil.DecodeAddress(addr, e.params)
	if err != nil {
		return nil, err
	}
	if !decoded.IsForNet(e.params) {
		return nil, fmt.Errorf("%w: %s", ErrWrongNetwork, addr)
	}
	return decoded, nil
}

// WIF returns the wallet import format of a 32 byte private key.
func (e *Encoder) WIF(privKey []byte, compress bool) (string, error) {
	if len(privKey) != btcec.PrivKeyBytesLen {
		return "", fmt.Errorf("private key must be %d bytes, got %d",
			btcec.PrivKeyBytesLen, len(privKey))
	}
	key, _ := btcec.PrivKeyFromBytes(privKey)
	wif, err := btcutil.NewWIF(key, e.params, compress)
	if err != nil {
		return "", err
	}
	return wif.String(), nil
}

// DecodeWIF decodes a wallet import format key and checks that it belongs to
// the network.
func (e *Encoder) DecodeWIF(s string) (*btcutil.WIF, error) {
	wif, err := btcutil.DecodeWIF(s)
	if err != nil {
		return nil, err
	}
	if !wif.IsForNet(e.params) {
		return nil, fmt.Errorf("%w: %s", ErrWrongNetwork, s)
	}
	return wif, nil
}

// NewMaster returns the BIP32 master key derived from seed.
func (e *Encoder) NewMaster(seed []byte) (*hdkeychain.ExtendedKey, error) {
	return hdkeychain.NewMaster(seed, e.params)
}

// Base58Version returns the version byte of a base58check string.
func Base58Version(s string) (byte, error) {
	_, version, err := base58.CheckDecode(s)
	if err != nil {
		return 0, err
	}
	return version, nil
}
