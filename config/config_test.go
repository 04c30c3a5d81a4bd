package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bytom/lbraddr/consensus"
)

func TestDefaultConfig(t *testing.T) {
	assert := assert.New(t)

	// set up some defaults
	cfg := DefaultConfig()
	assert.NotNil(cfg.Address)
	assert.Equal("mainnet", cfg.ChainID)
	assert.Equal("0000000000000000", cfg.Address.DefaultSubAddress)

	// check the root dir stuff...
	cfg.SetRoot("/foo")
	assert.Equal("/foo/log", cfg.LogDir())

	cfg.LogFile = "/var/log/lbraddr"
	assert.Equal("/var/log/lbraddr", cfg.LogDir())
}

func TestConfigHRP(t *testing.T) {
	defer func() { consensus.ActiveNetParams = consensus.MainNetParams }()
	assert := assert.New(t)

	cfg := DefaultConfig()
	cfg.ChainID = "testnet"
	params, err := cfg.NetParams()
	assert.Nil(err)
	assert.Equal("tlb", cfg.HRP(params))

	// switching networks later leaves the returned params alone
	assert.Nil(consensus.InitActiveNetParams("mainnet"))
	assert.Equal("tlb", params.Bech32HRPAddress)
	assert.Equal("test", params.Name)

	cfg.Address.HRP = "abc"
	assert.Equal("abc", cfg.HRP(params))

	cfg.ChainID = "nowhere"
	_, err = cfg.NetParams()
	assert.NotNil(err)
}

func TestExpandRoot(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("/abs/path", ExpandRoot("/abs/path"))
	assert.NotEqual("~/.lbraddr", ExpandRoot("~/.lbraddr"))
}
