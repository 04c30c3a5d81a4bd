package consensus

import (
	"fmt"
	"strings"
)

// address layout parameters
const (
	// AddressDataSize is the byte length of an on-chain account address
	AddressDataSize = 16
	// SubAddressDataSize is the byte length of a sub-address
	SubAddressDataSize = 8
	// PayloadDataSize is the byte length of the encoded address payload
	PayloadDataSize = AddressDataSize + SubAddressDataSize
)

// IsBech32AddressPrefix returns whether the prefix is the known prefix for
// account addresses on the given network. The prefix includes the trailing
// separator '1'.
func IsBech32AddressPrefix(prefix string, params *Params) bool {
	prefix = strings.ToLower(prefix)
	return prefix == params.Bech32HRPAddress+"1"
}

// Params store the config for different network
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string
	// Bech32HRPAddress is the human-readable part of account addresses.
	Bech32HRPAddress string
}

// ActiveNetParams is the network selected by InitActiveNetParams
var ActiveNetParams = MainNetParams

// NetParams is the correspondence between chain_id and Params
var NetParams = map[string]Params{
	"mainnet": MainNetParams,
	"testnet": TestNetParams,
	"solonet": SoloNetParams,
}

// MainNetParams is the config for production
var MainNetParams = Params{
	Name:             "main",
	Bech32HRPAddress: "lbr",
}

// TestNetParams is the config for test-net
var TestNetParams = Params{
	Name:             "test",
	Bech32HRPAddress: "tlb",
}

// SoloNetParams is the config for a single node development network
var SoloNetParams = Params{
	Name:             "solo",
	Bech32HRPAddress: "dlb",
}

// InitActiveNetParams load the config by chain ID
func InitActiveNetParams(chainID string) error {
	params, exist := NetParams[chainID]
	if !exist {
		return fmt.Errorf("chain_id[%v] don't exist", chainID)
	}
	ActiveNetParams = params
	return nil
}
