// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2021-2022 The Bitcoin DX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

const (
	// genesisMessage is the message embedded in the coinbase of every
	// genesis block.
	genesisMessage = "The Times 03/Jan/2009 Chancellor on brink of second " +
		"bailout for banks"

	// genesisCoinbaseBits is the difficulty value pushed first in the
	// genesis coinbase script.  It is 0x1d00ffff regardless of the
	// network's real difficulty bits.
	genesisCoinbaseBits = 486604799

	// genesisReward is the subsidy of the genesis coinbase on every
	// network.
	genesisReward = 59931 * btcutil.SatoshiPerBitcoin
)

// genesisOutputKey is the public key pushed by the genesis output script.
var genesisOutputKey, _ = hex.DecodeString("06668afdd0fe5548271967f1a67130" +
	"b7105cd6a828e03909a67962e0bf3f61deb649f6bc3f4cef38d7f35503a51ec112de5c" +
	"384df7ba0b8d578a4c702b6bf11ca3")

// GenesisParams holds the inputs of a genesis block.
type GenesisParams struct {
	Message      string
	OutputScript []byte
	Timestamp    time.Time
	Nonce        uint32
	Bits         uint32
	Version      int32
	Reward       btcutil.Amount
}

// genesisCoinbaseScript returns the signature script of the genesis coinbase:
// the difficulty bits, the number 4 and the message.  The 4 is a one byte
// data push rather than OP_4, which is what the builder would emit for it.
func genesisCoinbaseScript(message string) ([]byte, error) {
	return txscript.NewScriptBuilder().
		AddInt64(genesisCoinbaseBits).
		AddOps([]byte{txscript.OP_DATA_1, 4}).
		AddData([]byte(message)).
		Script()
}

// GenesisOutputScript returns the output script paying the genesis reward.
func GenesisOutputScript() []byte {
	script, err := txscript.NewScriptBuilder().
		AddData(genesisOutputKey).
		AddOp(txscript.OP_CHECKSIG).
		Script()
	if err != nil {
		panic(fmt.Sprintf("unable to build genesis output script: %v", err))
	}
	return script
}

// CreateGenesisBlock builds the genesis block described by gp.  It holds a
// single coinbase transaction with one input spending the null outpoint and
// one output paying the reward to gp.OutputScript.  The output can never be
// spent since it did not originally exist in the database.
func CreateGenesisBlock(gp *GenesisParams) (*wire.MsgBlock, error) {
	sigScript, err := genesisCoinbaseScript(gp.Message)
	if err != nil {
		return nil, err
	}

	coinbase := wire.NewMsgTx(1)
	coinbase.AddTxIn(&wire.TxIn{
		PreviousOutPoint: *wire.NewOutPoint(&chainhash.Hash{},
			wire.MaxPrevOutIndex),
		SignatureScript: sigScript,
		Sequence:        wire.MaxTxInSequenceNum,
	})
	outputScript := make([]byte, len(gp.OutputScript))
	copy(outputScript, gp.OutputScript)
	coinbase.AddTxOut(wire.NewTxOut(int64(gp.Reward), outputScript))

	merkleRoot := blockchain.CalcMerkleRoot(
		[]*btcutil.Tx{btcutil.NewTx(coinbase)}, false,
	)

	return &wire.MsgBlock{
		Header: wire.BlockHeader{
			Version:    gp.Version,
			PrevBlock:  chainhash.Hash{},
			MerkleRoot: merkleRoot,
			Timestamp:  gp.Timestamp,
			Bits:       gp.Bits,
			Nonce:      gp.Nonce,
		},
		Transactions: []*wire.MsgTx{coinbase},
	}, nil
}

// CreateDefaultGenesisBlock builds a genesis block with the message and output
// script shared by all networks.
func CreateDefaultGenesisBlock(timestamp time.Time, nonce, bits uint32,
	version int32, reward btcutil.Amount) (*wire.MsgBlock, error) {

	return CreateGenesisBlock(&GenesisParams{
		Message:      genesisMessage,
		OutputScript: GenesisOutputScript(),
		Timestamp:    timestamp,
		Nonce:        nonce,
		Bits:         bits,
		Version:      version,
		Reward:       reward,
	})
}

// genesisSpec is the per-network genesis input together with the hashes the
// constructed block must have.
type genesisSpec struct {
	timestamp  time.Time
	nonce      uint32
	bits       uint32
	version    int32
	hash       *chainhash.Hash
	merkleRoot *chainhash.Hash
}

// genesisMismatchError describes a constructed genesis block that does not
// match the hard-coded constants.
type genesisMismatchError struct {
	network  Network
	field    string
	got      chainhash.Hash
	expected chainhash.Hash
}

func (e *genesisMismatchError) Error() string {
	return fmt.Sprintf("%s genesis %s mismatch: got %v, expected %v",
		e.network, e.field, e.got, e.expected)
}

// buildGenesis constructs the genesis block for the network and checks it
// against the expected constants.  A mismatch means the compiled constants
// diverged from the construction logic and the node must not run, so it
// panics.
func buildGenesis(network Network, spec *genesisSpec) *wire.MsgBlock {
	block, err := CreateDefaultGenesisBlock(spec.timestamp, spec.nonce,
		spec.bits, spec.version, genesisReward)
	if err != nil {
		panic(fmt.Sprintf("unable to build %s genesis block: %v",
			network, err))
	}
	if err := verifyGenesis(network, block, spec); err != nil {
		panic(err.Error())
	}
	return block
}

// verifyGenesis returns an error if block does not have the hash and merkle
// root of spec.
func verifyGenesis(network Network, block *wire.MsgBlock, spec *genesisSpec) error {
	if block.Header.MerkleRoot != *spec.merkleRoot {
		return &genesisMismatchError{
			network:  network,
			field:    "merkle root",
			got:      block.Header.MerkleRoot,
			expected: *spec.merkleRoot,
		}
	}
	if hash := block.BlockHash(); hash != *spec.hash {
		return &genesisMismatchError{
			network:  network,
			field:    "hash",
			got:      hash,
			expected: *spec.hash,
		}
	}
	return nil
}
