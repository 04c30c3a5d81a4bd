package config

import (
	"path"

	"github.com/BurntSushi/toml"
	cmn "github.com/tendermint/tmlibs/common"

	"github.com/bytom/lbraddr/errors"
	"github.com/bytom/lbraddr/version"
)

const configFileName = "config.toml"

/****** these are for production settings ***********/
func EnsureRoot(rootDir string, network string) {
	cmn.EnsureDir(rootDir, 0700)

	configFilePath := path.Join(rootDir, configFileName)

	// Write default config file if missing.
	if !cmn.FileExists(configFilePath) {
		cmn.MustWriteFile(configFilePath, []byte(selectNetwork(network)), 0644)
	}
}

// ConfigFile returns the path of the config file under rootDir.
func ConfigFile(rootDir string) string {
	return path.Join(rootDir, configFileName)
}

// LoadFile reads a TOML config file on top of the default config. Keys the
// file does not set keep their default values.
func LoadFile(filePath string) (*Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "decode config file")
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, errors.WithDetailf(ErrUnknownKey, "%v", undecoded)
	}
	return cfg, nil
}

// ErrUnknownKey is returned by LoadFile for keys no config field carries.
var ErrUnknownKey = errors.New("unknown config key")

var defaultConfigTmpl = `# This is a TOML config file.
# For more information, see https://github.com/toml-lang/toml
log_level = "info"
log_file = "log"
version = "` + version.Version + `"
`

var mainNetConfigTmpl = `chain_id = "mainnet"
[address]
hrp = ""
default_sub_address = "0000000000000000"
`

var testNetConfigTmpl = `chain_id = "testnet"
[address]
hrp = ""
default_sub_address = "0000000000000000"
`

var soloNetConfigTmpl = `chain_id = "solonet"
[address]
hrp = ""
default_sub_address = "0000000000000000"
`

// Select network template to merge a new string.
func selectNetwork(network string) string {
	switch network {
	case "mainnet":
		return defaultConfigTmpl + mainNetConfigTmpl
	case "testnet":
		return defaultConfigTmpl + testNetConfigTmpl
	default:
		return defaultConfigTmpl + soloNetConfigTmpl
	}
}
