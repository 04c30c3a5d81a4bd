package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bytom/lbraddr/errors"
	"github.com/bytom/lbraddr/version"
)

func TestEnsureRoot(t *testing.T) {
	assert, require := assert.New(t), require.New(t)

	// setup temp dir for test
	tmpDir, err := ioutil.TempDir("", "config-test")
	require.Nil(err)
	defer os.RemoveAll(tmpDir)

	// create root dir
	EnsureRoot(tmpDir, "mainnet")

	// make sure config is set properly
	data, err := ioutil.ReadFile(filepath.Join(tmpDir, "config.toml"))
	require.Nil(err)
	assert.Equal([]byte(selectNetwork("mainnet")), data)

	// an existing file is left alone
	EnsureRoot(tmpDir, "testnet")
	data, err = ioutil.ReadFile(ConfigFile(tmpDir))
	require.Nil(err)
	assert.Equal([]byte(selectNetwork("mainnet")), data)
}

func TestLoadFile(t *testing.T) {
	assert, require := assert.New(t), require.New(t)

	tmpDir, err := ioutil.TempDir("", "config-test")
	require.Nil(err)
	defer os.RemoveAll(tmpDir)

	for _, network := range []string{"mainnet", "testnet", "solonet"} {
		root := filepath.Join(tmpDir, network)
		EnsureRoot(root, network)

		cfg, err := LoadFile(ConfigFile(root))
		require.Nil(err, network)
		assert.Equal(network, cfg.ChainID)
		assert.Equal("info", cfg.LogLevel)
		assert.Equal(version.Version, cfg.Version)
		assert.Equal("", cfg.Address.HRP)
		assert.Equal("0000000000000000", cfg.Address.DefaultSubAddress)
	}
}

func TestLoadFileErrors(t *testing.T) {
	assert, require := assert.New(t), require.New(t)

	tmpDir, err := ioutil.TempDir("", "config-test")
	require.Nil(err)
	defer os.RemoveAll(tmpDir)

	unknown := filepath.Join(tmpDir, "unknown.toml")
	require.Nil(ioutil.WriteFile(unknown, []byte("chain_id = \"testnet\"\nfast_sync = true\n"), 0644))
	_, err = LoadFile(unknown)
	assert.Equal(ErrUnknownKey, errors.Root(err))

	broken := filepath.Join(tmpDir, "broken.toml")
	require.Nil(ioutil.WriteFile(broken, []byte("chain_id = "), 0644))
	_, err = LoadFile(broken)
	assert.NotNil(err)

	_, err = LoadFile(filepath.Join(tmpDir, "missing.toml"))
	assert.NotNil(err)
}
