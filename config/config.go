// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2021-2022 The Bitcoin DX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bitcoindx/dxd/chaincfg"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigFilename = "dxd.conf"
	defaultLogDirname     = "logs"
	defaultLogFilename    = "dxd.log"
	defaultLogLevel       = "info"
)

var (
	defaultHomeDir    = btcutil.AppDataDir("dxd", false)
	defaultConfigFile = filepath.Join(defaultHomeDir, defaultConfigFilename)
	defaultLogDir     = filepath.Join(defaultHomeDir, defaultLogDirname)
)

// ErrConflictingNetworks is returned when more than one network is selected.
var ErrConflictingNetworks = errors.New("the testnet, regtest, signet and " +
	"chain params can't be used together -- choose one of the four")

// Config defines the configuration options for the chain parameter tools.
//
// See LoadConfig for details on the configuration load process.
type Config struct {
	ConfigFile  string `yaml:"-" short:"C" long:"configfile" description:"Path to configuration file (.conf or .yaml)"`
	ShowVersion bool   `yaml:"-" short:"V" long:"version" description:"Display version information and exit"`
	LogDir      string `yaml:"log_dir" long:"logdir" description:"Directory to log output"`
	DebugLevel  string `yaml:"debug_level" short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
	NoFileLog   bool   `yaml:"no_file_log" long:"nofilelogging" description:"Disable logging to the log file"`
	Dump        bool   `yaml:"-" long:"dump" description:"Dump the selected chain parameters and exit"`

	Chain   string `yaml:"chain" long:"chain" description:"Use the chain <chain> (main, test, signet, regtest)"`
	TestNet bool   `yaml:"testnet" long:"testnet" description:"Use the test network"`
	RegTest bool   `yaml:"regtest" long:"regtest" description:"Use the regression test network"`
	SigNet  bool   `yaml:"signet" long:"signet" description:"Use the signet test network"`

	SegwitHeight    string   `yaml:"segwit_height" long:"segwitheight" description:"Set the activation height of segwit, -1 to disable (regtest only)"`
	VBParams        []string `yaml:"vb_params" long:"vbparams" description:"Use given start/end times and min_activation_height for the specified version bits deployment, as deployment:start:end[:min_activation_height] (regtest only)"`
	FastPrune       bool     `yaml:"fast_prune" long:"fastprune" description:"Use smaller block files and a lower minimum prune height for testing (regtest only)"`
	SignetChallenge []string `yaml:"signet_challenge" long:"signetchallenge" description:"Blocks must satisfy the given script to be considered valid (signet only, hex)"`
	SignetSeedNode  []string `yaml:"signet_seed_node" long:"signetseednode" description:"Specify a seed node for the signet network (signet only, may be repeated)"`
}

// LogFile returns the path of the log file.
func (c *Config) LogFile() string {
	return filepath.Join(c.LogDir, c.NetworkName(), defaultLogFilename)
}

// NetworkName returns the chaincfg selector token of the configured network.
// The main network is used when none is given.
func (c *Config) NetworkName() string {
	switch {
	case c.TestNet:
		return chaincfg.TestNetName
	case c.RegTest:
		return chaincfg.RegTestName
	case c.SigNet:
		return chaincfg.SigNetName
	case c.Chain != "":
		return c.Chain
	}
	return chaincfg.MainNetName
}

// ArgSource returns the chain parameter overrides of the configuration.
// Options left at their zero value are not set.
func (c *Config) ArgSource() chaincfg.Args {
	args := chaincfg.Args{}
	if c.SegwitHeight != "" {
		args.Set(chaincfg.ArgSegwitHeight, c.SegwitHeight)
	}
	for _, v := range c.VBParams {
		args.Add(chaincfg.ArgVBParams, v)
	}
	if c.FastPrune {
		args.Set(chaincfg.ArgFastPrune, "1")
	}
	for _, v := range c.SignetChallenge {
		args.Add(chaincfg.ArgSignetChallenge, v)
	}
	for _, v := range c.SignetSeedNode {
		args.Add(chaincfg.ArgSignetSeedNode, v)
	}
	return args
}

// validate checks the network selection.
func (c *Config) validate() error {
	numNets := 0
	if c.TestNet {
		numNets++
	}
	if c.RegTest {
		numNets++
	}
	if c.SigNet {
		numNets++
	}
	if c.Chain != "" {
		numNets++
	}
	if numNets > 1 {
		return ErrConflictingNetworks
	}

	_, err := chaincfg.ParseNetwork(c.NetworkName())
	return err
}

// defaultConfig returns the configuration before any file or command line
// option is applied.
func defaultConfig() Config {
	return Config{
		ConfigFile: defaultConfigFile,
		LogDir:     defaultLogDir,
		DebugLevel: defaultLogLevel,
	}
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		homeDir := filepath.Dir(defaultHomeDir)
		path = strings.Replace(path, "~", homeDir, 1)
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but they variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}

// loadConfigFile applies the options of the config file at path to cfg.  The
// format is picked from the file extension.
func loadConfigFile(parser *flags.Parser, cfg *Config, path string) error {
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		return yaml.NewDecoder(f).Decode(cfg)

	case ".conf", ".ini", "":
		return flags.NewIniParser(parser).ParseFile(path)

	default:
		return errors.Errorf("invalid config file extension: %s", ext)
	}
}

// LoadConfig initializes and parses the config using a config file and the
// passed command line arguments.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Pre-parse the command line to check for an alternative config file
//  3. Load configuration file overwriting defaults with any specified options
//  4. Parse CLI options and overwrite/add any specified options
//
// The above results in functioning properly without any config settings
// while still allowing the user to override settings with config files and
// command line options.  Command line options always take precedence.  A
// missing config file is only an error when it was given explicitly.
func LoadConfig(args []string) (*Config, []string, error) {
	cfg := defaultConfig()

	// Pre-parse the command line options to see if an alternative config
	// file was specified.  Any errors aside from the help message error can
	// be ignored here since they will be caught by the final parse below.
	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.HelpFlag)
	_, err := preParser.ParseArgs(args)
	if err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			return nil, nil, err
		}
	}
	if preCfg.ShowVersion {
		return &preCfg, nil, nil
	}

	parser := flags.NewParser(&cfg, flags.HelpFlag|flags.PassDoubleDash)

	configFile := cleanAndExpandPath(preCfg.ConfigFile)
	if _, err := os.Stat(configFile); err == nil {
		if err := loadConfigFile(parser, &cfg, configFile); err != nil {
			return nil, nil, errors.Wrapf(err, "error parsing "+
				"config file %s", configFile)
		}
	} else if preCfg.ConfigFile != defaultConfigFile {
		return nil, nil, errors.Wrap(err, "unable to open config file")
	}

	// Parse command line options again to ensure they take precedence.
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, nil, err
	}

	cfg.ConfigFile = configFile
	cfg.LogDir = cleanAndExpandPath(cfg.LogDir)

	return &cfg, remainingArgs, nil
}
