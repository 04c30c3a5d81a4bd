package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"

	"github.com/bytom/lbraddr/consensus"
)

type Config struct {
	// Top level options use an anonymous struct
	BaseConfig `mapstructure:",squash"`
	// Options for address encoding
	Address *AddressConfig `mapstructure:"address" toml:"address"`
}

// Default configurable parameters.
func DefaultConfig() *Config {
	return &Config{
		BaseConfig: DefaultBaseConfig(),
		Address:    DefaultAddressConfig(),
	}
}

// Set the RootDir for all Config structs
func (cfg *Config) SetRoot(root string) *Config {
	cfg.BaseConfig.RootDir = root
	return cfg
}

// NetParams returns the network parameters selected by chain_id.
func (cfg *Config) NetParams() (*consensus.Params, error) {
	if err := consensus.InitActiveNetParams(cfg.ChainID); err != nil {
		return nil, err
	}
	params := consensus.ActiveNetParams
	return &params, nil
}

// HRP returns the human-readable part used for new addresses: the configured
// override if any, the network's own prefix otherwise.
func (cfg *Config) HRP(params *consensus.Params) string {
	if cfg.Address != nil && cfg.Address.HRP != "" {
		return cfg.Address.HRP
	}
	return params.Bech32HRPAddress
}

//-----------------------------------------------------------------------------
// BaseConfig
type BaseConfig struct {
	// The root directory for all data.
	// This should be set in viper so it can unmarshal into this struct
	RootDir string `mapstructure:"home" toml:"-"`

	//The ID of the network to json
	ChainID string `mapstructure:"chain_id" toml:"chain_id"`

	//log level to set
	LogLevel string `mapstructure:"log_level" toml:"log_level"`

	// log file name
	LogFile string `mapstructure:"log_file" toml:"log_file"`

	// Version of the release that wrote the config file
	Version string `mapstructure:"version" toml:"version"`
}

// Default configurable base parameters.
func DefaultBaseConfig() BaseConfig {
	return BaseConfig{
		ChainID:  "mainnet",
		LogLevel: "info",
		LogFile:  "log",
	}
}

func (b BaseConfig) LogDir() string {
	return rootify(b.LogFile, b.RootDir)
}

//-----------------------------------------------------------------------------
// AddressConfig
type AddressConfig struct {
	// HRP overrides the network's human-readable part when encoding
	HRP string `mapstructure:"hrp" toml:"hrp"`

	// DefaultSubAddress is used by encode when no sub-address is given
	DefaultSubAddress string `mapstructure:"default_sub_address" toml:"default_sub_address"`
}

// Default configurable address parameters.
func DefaultAddressConfig() *AddressConfig {
	return &AddressConfig{
		HRP:               "",
		DefaultSubAddress: "0000000000000000",
	}
}

//-----------------------------------------------------------------------------
// Utils

// helper function to make config creation independent of root dir
func rootify(path, root string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

// DefaultDataDir is the default data directory to use for the config and
// log files.
func DefaultDataDir() string {
	// Try to place the data folder in the user's home dir
	home := homeDir()
	if home == "" {
		return "./.lbraddr"
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Lbraddr")
	case "windows":
		return filepath.Join(home, "AppData", "Roaming", "Lbraddr")
	default:
		return filepath.Join(home, ".lbraddr")
	}
}

// ExpandRoot resolves a leading "~" in a home directory flag.
func ExpandRoot(root string) string {
	expanded, err := homedir.Expand(root)
	if err != nil {
		log.WithField("err", err).Warning("home directory expansion failed")
		return root
	}
	return expanded
}

func homeDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	if home, err := homedir.Dir(); err == nil {
		return home
	}
	return ""
}
