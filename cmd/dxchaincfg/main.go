// Copyright (c) 2021-2022 The Bitcoin DX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bitcoindx/dxd/chaincfg"
	"github.com/bitcoindx/dxd/config"
	"github.com/bitcoindx/dxd/dxutil"
	"github.com/btcsuite/btcd/blockchain"
	"github.com/davecgh/go-spew/spew"
	"github.com/jessevdk/go-flags"
)

const appVersion = "22.0.11"

// burnHash is the public key hash used for the sample addresses.
var burnHash = make([]byte, 20)

// dxChainCfgMain is the real main function.  It is necessary to work around
// the fact that deferred functions do not run when os.Exit() is called.
func dxChainCfgMain(args []string, w io.Writer) error {
	cfg, _, err := config.LoadConfig(args)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(w, err)
			return nil
		}
		return err
	}

	if cfg.ShowVersion {
		fmt.Fprintln(w, "dxchaincfg version", appVersion)
		return nil
	}

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		fmt.Fprintln(w, "Supported subsystems", supportedSubsystems())
		return nil
	}

	if !cfg.NoFileLog {
		if err := initLogRotator(cfg.LogFile()); err != nil {
			return err
		}
		defer closeLogRotator()
	}

	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		return err
	}

	dxcfLog.Debugf("Selecting chain parameters for %s", cfg.NetworkName())
	if err := chaincfg.Select(cfg.NetworkName(), cfg.ArgSource()); err != nil {
		return err
	}
	params := chaincfg.Current()

	if cfg.Dump {
		spew.Fdump(w, params)
		return nil
	}

	return writeSummary(w, params)
}

// writeSummary writes a human readable description of the parameters.
func writeSummary(w io.Writer, p *chaincfg.Params) error {
	enc, err := dxutil.NewEncoder(p)
	if err != nil {
		return err
	}
	p2pkh, err := enc.PubKeyHashAddress(burnHash)
	if err != nil {
		return err
	}
	p2wpkh, err := enc.WitnessPubKeyHashAddress(burnHash)
	if err != nil {
		return err
	}

	c := &p.Consensus
	var b strings.Builder
	fmt.Fprintf(&b, "Network:              %s\n", p.Network)
	fmt.Fprintf(&b, "Message start:        %x\n", p.MessageStart[:])
	fmt.Fprintf(&b, "Default port:         %s\n", p.DefaultPort)
	fmt.Fprintf(&b, "Genesis hash:         %v\n", c.GenesisHash)
	fmt.Fprintf(&b, "Genesis merkle root:  %v\n", p.GenesisBlock.Header.MerkleRoot)
	fmt.Fprintf(&b, "Pow limit bits:       %08x\n", blockchain.BigToCompact(c.PowLimit))
	fmt.Fprintf(&b, "Target spacing:       %v\n", c.PowTargetSpacing)
	fmt.Fprintf(&b, "Retarget interval:    %d blocks\n", c.DifficultyAdjustmentInterval())
	fmt.Fprintf(&b, "Halving interval:     %d blocks\n", c.SubsidyHalvingInterval)
	fmt.Fprintf(&b, "Segwit height:        %d\n", c.SegwitHeight)
	fmt.Fprintf(&b, "Prune after height:   %d\n", p.PruneAfterHeight)
	for id, d := range c.Deployments {
		fmt.Fprintf(&b, "Deployment %-9s  bit %d, start %v, timeout %v, "+
			"min height %d\n", chaincfg.DeploymentName(id), d.BitNumber,
			d.StartTime, d.Timeout, d.MinActivationHeight)
	}
	if c.SignetBlocks {
		fmt.Fprintf(&b, "Signet challenge:     %x\n", c.SignetChallenge)
	}
	if n := len(p.Checkpoints); n > 0 {
		last := p.Checkpoints[n-1]
		fmt.Fprintf(&b, "Checkpoints:          %d (last %d %v)\n", n,
			last.Height, last.Hash)
	}
	for _, height := range p.AssumeUTXOHeights() {
		fmt.Fprintf(&b, "Assume utxo:          %d %v\n", height,
			p.AssumeUTXO[height].SerializedHash)
	}
	for _, seed := range p.DNSSeeds {
		fmt.Fprintf(&b, "DNS seed:             %s\n", seed)
	}
	fmt.Fprintf(&b, "Sample P2PKH:         %s\n", p2pkh)
	fmt.Fprintf(&b, "Sample P2WPKH:        %s\n", p2wpkh)

	_, err = io.WriteString(w, b.String())
	return err
}

func main() {
	if err := dxChainCfgMain(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
