// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2021-2022 The Bitcoin DX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"sort"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Checkpoint identifies a known good point in the block chain.  Using
// checkpoints allows a few optimizations for old blocks during initial download
// and also prevents forks from old blocks.
type Checkpoint struct {
	Height int32
	Hash   *chainhash.Hash
}

// AssumeUTXOData describes a UTXO set snapshot that a node may load instead
// of validating the chain up to the snapshot height.
type AssumeUTXOData struct {
	// SerializedHash is the hash of the serialized UTXO set at the
	// snapshot height.
	SerializedHash *chainhash.Hash

	// ChainTxCount is the total number of transactions in the chain up to
	// and including the snapshot block.
	ChainTxCount uint64
}

// ChainTxData holds the statistics used to estimate the verification
// progress of the chain.  The values are advisory only.
type ChainTxData struct {
	Time    time.Time // Time of the last known block.
	TxCount uint64    // Total number of transactions up to that block.
	TxRate  float64   // Estimated number of transactions per second after it.
}

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	// Host defines the hostname of the seed.
	Host string

	// HasFiltering defines whether the seed supports filtering
	// by service flags (wire.ServiceFlag).
	HasFiltering bool
}

// String returns the hostname of the DNS seed in human-readable form.
func (d DNSSeed) String() string {
	return d.Host
}

// Base58Prefixes holds the version bytes that prefix the base58 encodings of
// addresses and keys on a network.
type Base58Prefixes struct {
	PubKeyHash   byte    // First byte of a P2PKH address
	ScriptHash   byte    // First byte of a P2SH address
	SecretKey    byte    // First byte of a WIF private key
	ExtPublicKey [4]byte // BIP32 extended public key magic
	ExtSecretKey [4]byte // BIP32 extended private key magic
}

// ConsensusParams holds the consensus rules of a network.
type ConsensusParams struct {
	// SubsidyHalvingInterval is the number of blocks between subsidy
	// reductions.
	SubsidyHalvingInterval int32

	// BIP16Exception is the hash of the single block that is exempt from
	// the P2SH rules.  The zero hash means there is no such block.
	BIP16Exception chainhash.Hash

	// These fields define the block heights at which the specified softfork
	// BIP became active.  math.MaxInt32 means the rule never activates.
	BIP34Height int32
	BIP34Hash   chainhash.Hash
	BIP65Height int32
	BIP66Height int32
	CSVHeight   int32

	// SegwitHeight is the height at which segregated witness is enforced.
	// Zero means it is active from genesis and math.MaxInt32 means it is
	// never active.
	SegwitHeight int32

	// MinBIP9WarningHeight is the height below which unknown version bits
	// do not trigger warnings.
	MinBIP9WarningHeight int32

	// PowLimit defines the highest allowed proof of work value for a block
	// as a uint256.
	PowLimit *big.Int

	// PowTargetTimespan is the desired amount of time between difficulty
	// retargets and PowTargetSpacing the desired time per block.
	PowTargetTimespan time.Duration
	PowTargetSpacing  time.Duration

	// PowAllowMinDifficultyBlocks allows blocks at the minimum difficulty
	// once enough time has passed without a block.  It should not be set
	// on a main network.
	PowAllowMinDifficultyBlocks bool

	// PowNoRetargeting disables difficulty adjustment altogether.
	PowNoRetargeting bool

	// These fields are related to voting on consensus rule changes as
	// defined by BIP0009.
	//
	// RuleChangeActivationThreshold is the number of blocks in a threshold
	// state retarget window for which a positive vote for a rule change
	// must be cast in order to lock in a rule change.
	//
	// MinerConfirmationWindow is the number of blocks in each threshold
	// state retarget window.
	//
	// Deployments define the specific consensus rule changes to be voted
	// on.
	RuleChangeActivationThreshold uint32
	MinerConfirmationWindow       uint32
	Deployments                   [DefinedDeployments]ConsensusDeployment

	// MinimumChainWork is the amount of work below which a chain is never
	// considered for syncing.
	MinimumChainWork *big.Int

	// DefaultAssumeValid is the block whose ancestors have their scripts
	// assumed valid by default.
	DefaultAssumeValid chainhash.Hash

	// SignetBlocks reports whether blocks must satisfy SignetChallenge.
	SignetBlocks    bool
	SignetChallenge []byte

	// GenesisHash is the hash of the first block of the chain.
	GenesisHash chainhash.Hash
}

// DifficultyAdjustmentInterval returns the number of blocks between
// difficulty retargets.
func (c *ConsensusParams) DifficultyAdjustmentInterval() int64 {
	return int64(c.PowTargetTimespan / c.PowTargetSpacing)
}

// Params defines a Bitcoin DX network by its parameters.  These parameters may
// be used by applications to differentiate networks as well as addresses and
// keys for one network from those intended for use on another network.
//
// A Params value handed out by Current must not be modified.
type Params struct {
	// Consensus holds the consensus rules of the network.
	Consensus ConsensusParams

	// Network identifies the network variant.
	Network Network

	// MessageStart holds the magic bytes that prefix every p2p message.
	MessageStart [4]byte

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// PruneAfterHeight is the height below which blocks are never pruned.
	PruneAfterHeight uint64

	// Approximate disk space, in gigabytes, needed to hold the block chain
	// and the chain state.
	AssumedBlockchainSize uint64
	AssumedChainStateSize uint64

	// GenesisBlock defines the first block of the chain.
	GenesisBlock *wire.MsgBlock

	// Checkpoints ordered from oldest to newest.
	Checkpoints []Checkpoint

	// AssumeUTXO holds the known UTXO set snapshots keyed by height.
	AssumeUTXO map[int32]AssumeUTXOData

	// ChainTxData is used to estimate sync progress.
	ChainTxData ChainTxData

	// DNSSeeds defines a list of DNS seeds for the network that are used
	// as one method to discover peers.
	DNSSeeds []DNSSeed

	// FixedSeeds is the serialized list of hard-coded peer addresses.
	FixedSeeds []byte

	// Address encoding magics.
	Base58Prefixes Base58Prefixes

	// Bech32HRP is the human-readable part for Bech32 encoded segwit
	// addresses, as defined in BIP 173.
	Bech32HRP string

	// DefaultConsistencyChecks enables expensive internal checks by default.
	DefaultConsistencyChecks bool

	// RequireStandard rejects non-standard transactions from the mempool.
	RequireStandard bool

	// IsTestChain reports whether coins on this network are worthless.
	IsTestChain bool

	// IsMockableChain reports whether the clock may be mocked.
	IsMockableChain bool
}

// Net returns the message start bytes as the wire network identifier.
func (p *Params) Net() wire.BitcoinNet {
	return wire.BitcoinNet(binary.LittleEndian.Uint32(p.MessageStart[:]))
}

// GenesisHash returns the hash of the genesis block.
func (p *Params) GenesisHash() *chainhash.Hash {
	hash := p.Consensus.GenesisHash
	return &hash
}

// Checkpoint returns the checkpoint at the given height, or nil when there is
// none.
func (p *Params) Checkpoint(height int32) *Checkpoint {
	idx := sort.Search(len(p.Checkpoints), func(i int) bool {
		return p.Checkpoints[i].Height >= height
	})
	if idx == len(p.Checkpoints) || p.Checkpoints[idx].Height != height {
		return nil
	}
	return &p.Checkpoints[idx]
}

// AssumeUTXOHeights returns the heights of the known UTXO snapshots in
// ascending order.
func (p *Params) AssumeUTXOHeights() []int32 {
	heights := maps.Keys(p.AssumeUTXO)
	slices.Sort(heights)
	return heights
}

// String returns a one line summary of the network parameters.
func (p *Params) String() string {
	return fmt.Sprintf("%s (magic %x, port %s, genesis %v)", p.Network,
		p.MessageStart[:], p.DefaultPort, p.Consensus.GenesisHash)
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash.  It only differs from the one available in chainhash in that
// it panics on an error since it will only (and must only) be called with
// hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		// Ordinarily I don't like panics in library code since it
		// can take applications down without them having a chance to
		// recover which is extremely annoying, however an exception is
		// being made in this case because the only way this can panic
		// is if there is an error in the hard-coded hashes.  Thus it
		// will only ever potentially panic on init and therefore is
		// 100% predictable.
		panic(err)
	}
	return hash
}

// newBigFromHex converts the passed big-endian hex string into a big.Int.  Like
// newHashFromStr it panics on error and must only be used with hard-coded
// values.
func newBigFromHex(hexStr string) *big.Int {
	n, ok := new(big.Int).SetString(hexStr, 16)
	if !ok {
		panic("invalid hard-coded hex number: " + hexStr)
	}
	return n
}
