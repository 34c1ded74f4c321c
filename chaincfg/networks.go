// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2021-2022 The Bitcoin DX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import "time"

const (
	// Shared by every network.
	powTargetTimespan = 4320 * time.Second
	powTargetSpacing  = 240 * time.Second

	subsidyHalvingInterval = 105120
)

// genesisTimestamp is the creation time of every genesis block.
var genesisTimestamp = time.Unix(1639520204, 0)

// genesisMerkleRoot is the merkle root of every genesis block.  They all share
// the same coinbase transaction.
var genesisMerkleRoot = newHashFromStr("f3345b128c59d8581e54f5b0c034579c4a5942" +
	"9e2e46902ff92c1237e542c5d9")

// Genesis inputs and the hashes the resulting blocks must have.
var (
	mainGenesis = genesisSpec{
		timestamp: genesisTimestamp,
		nonce:     2002980640,
		bits:      0x1e0ffff0,
		version:   1,
		hash: newHashFromStr("000000afb24cc8b14164e58b3352a2a2c32155f1d91" +
			"75f7f850d3bcf4310905a"),
		merkleRoot: genesisMerkleRoot,
	}

	// testGenesis is shared by testnet and signet.
	testGenesis = genesisSpec{
		timestamp: genesisTimestamp,
		nonce:     1559429,
		bits:      0x1e0ffff0,
		version:   1,
		hash: newHashFromStr("0000025e7a0ef975e8ca4bd6d01e6c32e7786bb4ded" +
			"41c602596c8a23cd1a042"),
		merkleRoot: genesisMerkleRoot,
	}

	regTestGenesis = genesisSpec{
		timestamp: genesisTimestamp,
		nonce:     0,
		bits:      0x207fffff,
		version:   1,
		hash: newHashFromStr("17497b697bb99d748e655d825a650b4c51193ad9596" +
			"c3a69b3e2135246bb5943"),
		merkleRoot: genesisMerkleRoot,
	}
)

// defaultSeeds are the DNS seeds of the public networks.
func defaultSeeds() []DNSSeed {
	return []DNSSeed{
		{"node0.bitcoindeluxe.org", false},
		{"node1.bitcoindeluxe.org", false},
		{"us1.bitcoindeluxe.org", false},
	}
}

// testNetPrefixes are the address prefixes shared by every test network.
var testNetPrefixes = Base58Prefixes{
	PubKeyHash:   111, // starts with m or n
	ScriptHash:   196, // starts with 2
	SecretKey:    239, // starts with 9 (uncompressed) or c (compressed)
	ExtPublicKey: [4]byte{0x04, 0x35, 0x87, 0xcf}, // starts with tpub
	ExtSecretKey: [4]byte{0x04, 0x35, 0x83, 0x94}, // starts with tprv
}

// mainNetParams returns the parameters of the main network before genesis
// construction.
func mainNetParams() *Params {
	return &Params{
		Consensus: ConsensusParams{
			SubsidyHalvingInterval: subsidyHalvingInterval,
			BIP34Height:            1,
			BIP65Height:            1,
			BIP66Height:            1,
			CSVHeight:              1,
			SegwitHeight:           1,
			MinBIP9WarningHeight:   0,
			PowLimit: newBigFromHex("00000fffffffffffffffffffffffffffffff" +
				"ffffffffffffffffffffffffffff"),
			PowTargetTimespan:             powTargetTimespan,
			PowTargetSpacing:              powTargetSpacing,
			PowAllowMinDifficultyBlocks:   false,
			PowNoRetargeting:              false,
			RuleChangeActivationThreshold: 1815, // 90% of MinerConfirmationWindow
			MinerConfirmationWindow:       2016,
			Deployments: [DefinedDeployments]ConsensusDeployment{
				DeploymentTestDummy: {
					BitNumber: 28,
					StartTime: NeverActive(),
					Timeout:   NoTimeout(),
				},
				DeploymentTaproot: {
					BitNumber:           2,
					StartTime:           At(time.Unix(1619222400, 0)), // April 24th, 2021 UTC
					Timeout:             At(time.Unix(1628640000, 0)), // August 11th, 2021 UTC
					MinActivationHeight: 709632,
				},
			},
			MinimumChainWork: newBigFromHex("0"),
		},
		Network:               MainNet,
		MessageStart:          [4]byte{0xf6, 0xbd, 0xc4, 0xd2},
		DefaultPort:           "8333",
		PruneAfterHeight:      100000,
		AssumedBlockchainSize: 420,
		AssumedChainStateSize: 6,

		// Checkpoints ordered from oldest to newest.
		Checkpoints: []Checkpoint{
			{0, newHashFromStr("000000afb24cc8b14164e58b3352a2a2c32155f1d9175f7f850d3bcf4310905a")},
			{36800, newHashFromStr("000000000000007055e1670db33c56489495abf8161e77daf47b7dfa61bbb481")},
			{36863, newHashFromStr("00000000000000a87a5d13e4009622db688a093b59d416a398b8f4c574533901")},
			{36866, newHashFromStr("0000000000000086082dd7b728f55207c5d5e1948e21d8587b1f02d2a2601bbe")},
			{36880, newHashFromStr("0000000000000028e11435a1932657e21d1b82ba77a8fe0511d6ae8d256db37f")},
			{36900, newHashFromStr("000000000000000544c55a78bb605c314bc659a42121e9bc57bcdf1c892a232f")},
			{36905, newHashFromStr("000000000000003928cad72b75ff8278f3b460341cec60da319488b5efba7c2d")},
			{36906, newHashFromStr("000000000000001f4093459e177d276ece931fb642a55a182cd67ff6f7565342")},
			{36917, newHashFromStr("000000000000000a9286233c41129ac6487ad2db64b40af69ed00d01e0f1b077")},
			{36920, newHashFromStr("0000000000000038188517bc14745ec8443bbd9905b2f284c945645b6d798fee")},
			{37061, newHashFromStr("000000000000001f80d68b840c9891a0cfd2f1133f3ebf80c41f7b2f54840abb")},
			{37209, newHashFromStr("0000000000000005eb5b0640cb1fa91920ea7865af15c6b963481bd833dcd1a2")},
			{37486, newHashFromStr("0000000000000046d211b96c0e0c92857620903dd2db100e9105bd5f969769a9")},
			{38400, newHashFromStr("00000000000000436a4cb5d0cb924a97a2eb835a46304c1e484045a5ed69881a")},
			{38411, newHashFromStr("000000000000005307815dee1eb7af04e86de541f168e3033126be114881599c")},
			{38413, newHashFromStr("000000000000001f489872325efeb3a6df7288368d6c7c2baa531ef5e7ec724d")},
			{38420, newHashFromStr("000000000000002ec3594272d3e798199a4ac05dc4157dec0d85c867f114a272")},
			{38626, newHashFromStr("00000000000000a05f283c7eecca94f7254c26df3d84deb2a8be1309e99543ae")},
		},

		AssumeUTXO: map[int32]AssumeUTXOData{},

		ChainTxData: ChainTxData{
			Time:    time.Unix(1642910757, 0),
			TxCount: 46552,
			TxRate:  0.006309258651936112,
		},

		DNSSeeds: defaultSeeds(),

		Base58Prefixes: Base58Prefixes{
			PubKeyHash:   26, // starts with B
			ScriptHash:   5,  // starts with 3
			SecretKey:    128,
			ExtPublicKey: [4]byte{0x04, 0x88, 0xb2, 0x1e}, // starts with xpub
			ExtSecretKey: [4]byte{0x04, 0x88, 0xad, 0xe4}, // starts with xprv
		},
		Bech32HRP: "bc",

		DefaultConsistencyChecks: false,
		RequireStandard:          true,
		IsTestChain:              false,
		IsMockableChain:          false,
	}
}

// testNetParams returns the parameters of the test network before genesis
// construction.
func testNetParams() *Params {
	return &Params{
		Consensus: ConsensusParams{
			SubsidyHalvingInterval: subsidyHalvingInterval,
			BIP34Height:            1,
			BIP65Height:            1,
			BIP66Height:            1,
			CSVHeight:              1,
			SegwitHeight:           1,
			MinBIP9WarningHeight:   0,
			PowLimit: newBigFromHex("00000fffffffffffffffffffffffffffffff" +
				"ffffffffffffffffffffffffffff"),
			PowTargetTimespan:             powTargetTimespan,
			PowTargetSpacing:              powTargetSpacing,
			PowAllowMinDifficultyBlocks:   true,
			PowNoRetargeting:              false,
			RuleChangeActivationThreshold: 1512, // 75% for test networks
			MinerConfirmationWindow:       2016,
			Deployments: [DefinedDeployments]ConsensusDeployment{
				DeploymentTestDummy: {
					BitNumber: 28,
					StartTime: NeverActive(),
					Timeout:   NoTimeout(),
				},
				DeploymentTaproot: {
					BitNumber: 2,
					StartTime: At(time.Unix(1619222400, 0)), // April 24th, 2021 UTC
					Timeout:   At(time.Unix(1628640000, 0)), // August 11th, 2021 UTC
				},
			},
			MinimumChainWork: newBigFromHex("0"),
		},
		Network:               TestNet,
		MessageStart:          [4]byte{0x0b, 0x11, 0x09, 0x07},
		DefaultPort:           "18333",
		PruneAfterHeight:      1000,
		AssumedBlockchainSize: 40,
		AssumedChainStateSize: 2,

		Checkpoints: nil,
		AssumeUTXO:  map[int32]AssumeUTXOData{},

		ChainTxData: ChainTxData{
			Time:   genesisTimestamp,
			TxRate: 0.08379062270367649,
		},

		DNSSeeds: defaultSeeds(),

		Base58Prefixes: testNetPrefixes,
		Bech32HRP:      "tb",

		DefaultConsistencyChecks: false,
		RequireStandard:          false,
		IsTestChain:              true,
		IsMockableChain:          false,
	}
}

// sigNetParams returns the parameters shared by every signet before the
// challenge is applied and the genesis block is constructed.
func sigNetParams() *Params {
	return &Params{
		Consensus: ConsensusParams{
			SubsidyHalvingInterval: subsidyHalvingInterval,
			BIP34Height:            1,
			BIP65Height:            1,
			BIP66Height:            1,
			CSVHeight:              1,
			SegwitHeight:           1,
			MinBIP9WarningHeight:   0,
			PowLimit: newBigFromHex("00000377ae00000000000000000000000000" +
				"0000000000000000000000000000"),
			PowTargetTimespan:             powTargetTimespan,
			PowTargetSpacing:              powTargetSpacing,
			PowAllowMinDifficultyBlocks:   false,
			PowNoRetargeting:              false,
			RuleChangeActivationThreshold: 1815, // 90% of MinerConfirmationWindow
			MinerConfirmationWindow:       2016,
			Deployments: [DefinedDeployments]ConsensusDeployment{
				DeploymentTestDummy: {
					BitNumber: 28,
					StartTime: NeverActive(),
					Timeout:   NoTimeout(),
				},
				DeploymentTaproot: {
					BitNumber: 2,
					StartTime: AlwaysActive(),
					Timeout:   NoTimeout(),
				},
			},
		},
		Network:          SigNet,
		DefaultPort:      "38333",
		PruneAfterHeight: 1000,

		Checkpoints: nil,
		AssumeUTXO:  map[int32]AssumeUTXOData{},

		DNSSeeds: defaultSeeds(),

		Base58Prefixes: testNetPrefixes,
		Bech32HRP:      "tb",

		DefaultConsistencyChecks: false,
		RequireStandard:          true,
		IsTestChain:              true,
		IsMockableChain:          false,
	}
}

// regTestParams returns the parameters of the regression test network before
// the overrides are applied and the genesis block is constructed.
func regTestParams() *Params {
	return &Params{
		Consensus: ConsensusParams{
			SubsidyHalvingInterval: 150,
			BIP34Height:            1,
			BIP65Height:            1,
			BIP66Height:            1,
			CSVHeight:              1,
			SegwitHeight:           0, // Always active unless overridden
			MinBIP9WarningHeight:   0,
			PowLimit: newBigFromHex("7fffffffffffffffffffffffffffffffffff" +
				"ffffffffffffffffffffffffffff"),
			PowTargetTimespan:             powTargetTimespan,
			PowTargetSpacing:              powTargetSpacing,
			PowAllowMinDifficultyBlocks:   true,
			PowNoRetargeting:              true,
			RuleChangeActivationThreshold: 108, // 75% of MinerConfirmationWindow
			MinerConfirmationWindow:       144,
			Deployments: [DefinedDeployments]ConsensusDeployment{
				DeploymentTestDummy: {
					BitNumber: 28,
					StartTime: At(time.Unix(0, 0)),
					Timeout:   NoTimeout(),
				},
				DeploymentTaproot: {
					BitNumber: 2,
					StartTime: AlwaysActive(),
					Timeout:   NoTimeout(),
				},
			},
			MinimumChainWork: newBigFromHex("0"),
		},
		Network:          RegTest,
		MessageStart:     [4]byte{0xfc, 0xba, 0xb5, 0xda},
		DefaultPort:      "18444",
		PruneAfterHeight: 1000,

		Checkpoints: nil,
		AssumeUTXO: map[int32]AssumeUTXOData{
			110: {
				SerializedHash: newHashFromStr("1ebbf5850204c0bdb15bf030f47c7fe91d45c44c712697e4509ba67adb01c618"),
				ChainTxCount:   110,
			},
			200: {
				SerializedHash: newHashFromStr("51c8d11d8b5c1de51543c579736e786aa2736206d1e11e627568029ce092cf62"),
				ChainTxCount:   200,
			},
		},

		// Regtest has no DNS seeds.
		DNSSeeds: nil,

		Base58Prefixes: testNetPrefixes,
		Bech32HRP:      "bcrt",

		DefaultConsistencyChecks: true,
		RequireStandard:          true,
		IsTestChain:              true,
		IsMockableChain:          true,
	}
}
