// Copyright (c) 2021-2022 The Bitcoin DX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"math/big"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

var (
	// DefaultSignetChallenge is the byte representation of the signet
	// challenge for the default signet network.  This is the binary
	// equivalent of the bitcoin script
	//  1 03ad5e0edad18cb1f0fc0d28a3d4f1f3e445640337489abb10404f2d1e086be430
	//  0359ef5021964fe22d6f8e05b2463c9540ce96883fe3b278760f048f5189f2e6c4 2
	//  OP_CHECKMULTISIG
	DefaultSignetChallenge, _ = hex.DecodeString(
		"512103ad5e0edad18cb1f0fc0d28a3d4f1f3e445640337489abb10404f2d" +
			"1e086be430210359ef5021964fe22d6f8e05b2463c9540ce9688" +
			"3fe3b278760f048f5189f2e6c452ae",
	)

	// defaultSignetMinimumChainWork and defaultSignetAssumeValid are only
	// known for the default challenge.
	defaultSignetMinimumChainWork = newBigFromHex("0000000000000000000000" +
		"000000000000000000000000000000008546553c03")

	// Height 47200.
	defaultSignetAssumeValid = newHashFromStr("000000187d4440e5bff91488b700" +
		"a140441e089a8aaea707414982460edbfe54")
)

// SignetMessageStart returns the message start of the signet network with the
// given challenge: the first four bytes of the sha256d of the challenge
// serialized as a variable length byte array.
func SignetMessageStart(challenge []byte) [4]byte {
	var buf bytes.Buffer
	// Writing to a bytes.Buffer cannot fail.
	_ = wire.WriteVarBytes(&buf, 0, challenge)

	var magic [4]byte
	copy(magic[:], chainhash.DoubleHashB(buf.Bytes()))
	return magic
}

// applySignetArgs sets the challenge dependent fields of a signet network.
// Without -signetchallenge the default signet is used.  A custom challenge
// defines a fresh network whose history is unknown, so it has no seeds and
// the chain work and assume valid bounds are left empty.
func applySignetArgs(p *Params, args ArgSource) error {
	challenge := DefaultSignetChallenge

	if !args.IsArgSet(ArgSignetChallenge) {
		p.Consensus.MinimumChainWork = new(big.Int).Set(defaultSignetMinimumChainWork)
		p.Consensus.DefaultAssumeValid = *defaultSignetAssumeValid
		p.AssumedBlockchainSize = 1
		p.AssumedChainStateSize = 0
		p.ChainTxData = ChainTxData{
			Time:   time.Unix(1639520204, 0),
			TxRate: 0.04035946932424404,
		}
	} else {
		values := args.GetArgs(ArgSignetChallenge)
		if len(values) == 0 {
			return ErrMissingSignetChallenge
		}
		if len(values) != 1 {
			return fmt.Errorf("%w (got %d)", ErrMultipleSignetChallenges,
				len(values))
		}
		var err error
		challenge, err = hex.DecodeString(values[0])
		if err != nil {
			return fmt.Errorf("%w: -%s=%s: %v",
				ErrInvalidSignetChallenge, ArgSignetChallenge,
				values[0], err)
		}

		p.DNSSeeds = nil
		p.Consensus.MinimumChainWork = newBigFromHex("0")
		p.Consensus.DefaultAssumeValid = chainhash.Hash{}
		p.AssumedBlockchainSize = 0
		p.AssumedChainStateSize = 0
		p.ChainTxData = ChainTxData{}

		disasm, err := txscript.DisasmString(challenge)
		if err != nil {
			disasm = "unparsable script"
		}
		log.Infof("Signet with challenge %s (%s)", values[0], disasm)
	}

	if args.IsArgSet(ArgSignetSeedNode) {
		seeds := args.GetArgs(ArgSignetSeedNode)
		p.DNSSeeds = make([]DNSSeed, len(seeds))
		for i, seed := range seeds {
			p.DNSSeeds[i] = DNSSeed{Host: seed}
		}
	}

	p.Consensus.SignetBlocks = true
	p.Consensus.SignetChallenge = append([]byte(nil), challenge...)
	p.MessageStart = SignetMessageStart(challenge)

	return nil
}
