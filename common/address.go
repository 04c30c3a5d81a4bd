package common

import (
	"bytes"
	"encoding/hex"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/bytom/lbraddr/common/bech32"
	"github.com/bytom/lbraddr/consensus"
	"github.com/bytom/lbraddr/errors"
)

const logModule = "address"

// encodedDataLength is the number of 5-bit groups in the data part of an
// account address: the version group plus the regrouped payload.
const encodedDataLength = 1 + (consensus.PayloadDataSize*8+4)/5

var (
	// ErrChecksumMismatch describes an error where decoding failed due
	// to a bad checksum.
	ErrChecksumMismatch = bech32.ErrChecksumMismatch

	// ErrInvalidCharacter describes an error where a data or checksum
	// character is outside the bech32 alphabet.
	ErrInvalidCharacter = bech32.ErrInvalidCharacter

	// ErrMalformedLength describes an error where the address string is too
	// short, too long or its data part does not hold exactly one payload.
	ErrMalformedLength = bech32.ErrMalformedLength

	// ErrNonZeroPadding describes an error where the bits discarded after
	// the last payload byte are not zero.
	ErrNonZeroPadding = bech32.ErrNonZeroPadding

	// ErrInvalidHexInput describes an error where the address or sub-address
	// hex string is malformed or has the wrong length.
	ErrInvalidHexInput = errors.New("invalid hex input")

	// ErrInvalidVersion describes an error where the leading version group
	// of a decoded address is not the supported address version.
	ErrInvalidVersion = errors.New("invalid address version")

	// ErrUnknownAddressType describes an error where an address can not
	// decoded as a specific address type due to the string encoding
	// begining with a prefix unknown to the selected network.
	ErrUnknownAddressType = errors.New("unknown address type")
)

// Address is an interface type for any type of destination a transaction
// may pay to. Address is designed to be generic enough that other kinds of
// addresses may be added in the future without changing the decoding and
// encoding API.
type Address interface {
	// String returns the string encoding of the address.
	String() string

	// EncodeAddress returns the string encoding of the payment address
	// associated with the Address value.
	EncodeAddress() string

	// ScriptAddress returns the raw bytes of the address to be used
	// when inserting the address into a transaction.
	ScriptAddress() []byte

	// IsForNet returns whether or not the address is associated with the
	// passed network.
	IsForNet(*consensus.Params) bool
}

// DecodedAddress is the textual breakdown of an encoded account address.
type DecodedAddress struct {
	HRP        string `json:"hrp"`
	Checksum   string `json:"checksum"`
	Address    string `json:"address"`
	SubAddress string `json:"sub_address"`
}

// Encode builds the bech32 account address for hrp from a 32 character hex
// address and a 16 character hex sub-address.
func Encode(hrp, addressHex, subAddressHex string) (string, error) {
	address, err := decodeHex(addressHex, consensus.AddressDataSize, "address")
	if err != nil {
		return "", err
	}

	subAddress, err := decodeHex(subAddressHex, consensus.SubAddressDataSize, "sub-address")
	if err != nil {
		return "", err
	}

	// An all upper case hrp is accepted, the address itself is always lower case.
	if hrp == strings.ToUpper(hrp) {
		hrp = strings.ToLower(hrp)
	}
	return encodeAddress(hrp, address, subAddress)
}

// Decode splits an encoded account address into its human-readable part,
// checksum, hex address and hex sub-address. The checksum is verified before
// any of the data is interpreted.
func Decode(address string) (*DecodedAddress, error) {
	hrp, payload, err := decodeAddress(address)
	if err != nil {
		return nil, err
	}

	return &DecodedAddress{
		HRP:        hrp,
		Checksum:   strings.ToLower(address[len(address)-bech32.ChecksumLength:]),
		Address:    hex.EncodeToString(payload[:consensus.AddressDataSize]),
		SubAddress: hex.EncodeToString(payload[consensus.AddressDataSize:]),
	}, nil
}

func decodeHex(s string, size int, field string) ([]byte, error) {
	if len(s) != size*2 {
		return nil, errors.WithDetailf(ErrInvalidHexInput, "%s must be %d hex characters, got %d", field, size*2, len(s))
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.WithDetailf(ErrInvalidHexInput, "%s: %v", field, err)
	}
	return b, nil
}

// encodeAddress creates the bech32 encoded address string from the raw
// address and sub-address bytes.
func encodeAddress(hrp string, address, subAddress []byte) (string, error) {
	payload := make([]byte, 0, consensus.PayloadDataSize)
	payload = append(payload, address...)
	payload = append(payload, subAddress...)

	// The version group leads, then the payload bytes regrouped into 5 bit
	// groups, as this is what is used to encode each character.
	bech, err := bech32.Bech32Encode(hrp, bech32.BytesToGroups(payload))
	if err != nil {
		return "", err
	}

	// Check validity by decoding the created address.
	_, decoded, err := decodeAddress(bech)
	if err != nil {
		return "", errors.Wrap(err, "invalid account address")
	}

	if !bytes.Equal(decoded, payload) {
		return "", errors.New("invalid account address")
	}

	return bech, nil
}

// decodeAddress parses a bech32 encoded account address string and returns
// its human-readable part and the 24 byte payload.
func decodeAddress(address string) (string, []byte, error) {
	hrp, data, err := bech32.Bech32Decode(address)
	if err != nil {
		return "", nil, err
	}

	if len(data) != encodedDataLength {
		return "", nil, errors.WithDetailf(ErrMalformedLength, "data part holds %d groups, want %d", len(data), encodedDataLength)
	}

	if data[0] != bech32.VersionGroup {
		return "", nil, errors.WithDetailf(ErrInvalidVersion, "version %d", data[0])
	}

	payload, err := bech32.GroupsToBytes(data)
	if err != nil {
		return "", nil, err
	}

	return hrp, payload, nil
}

// DecodeAddress decodes the string encoding of an address and returns
// the Address if addr is a valid account address of the passed network.
func DecodeAddress(addr string, param *consensus.Params) (Address, error) {
	// Bech32 encoded addresses start with a human-readable part (hrp)
	// followed by '1'. For mainnet the hrp is "lbr", and for testnet it
	// is "tlb".
	oneIndex := strings.LastIndexByte(addr, '1')
	if oneIndex > 1 {
		prefix := addr[:oneIndex+1]
		if consensus.IsBech32AddressPrefix(prefix, param) {
			hrp, payload, err := decodeAddress(addr)
			if err != nil {
				return nil, err
			}

			return newAddressLibra(hrp, payload[:consensus.AddressDataSize], payload[consensus.AddressDataSize:])
		}
	}

	log.WithFields(log.Fields{"module": logModule, "address": addr, "network": param.Name}).Debug("address prefix does not match network")
	return nil, ErrUnknownAddressType
}

// AddressLibra is an Address for an account on a LIP-5 network: a 16 byte
// on-chain address and an 8 byte sub-address.
type AddressLibra struct {
	hrp        string
	address    [consensus.AddressDataSize]byte
	subAddress [consensus.SubAddressDataSize]byte
}

// NewAddressLibra returns a new AddressLibra.
func NewAddressLibra(address, subAddress []byte, param *consensus.Params) (*AddressLibra, error) {
	return newAddressLibra(param.Bech32HRPAddress, address, subAddress)
}

// newAddressLibra is an internal helper function to create an AddressLibra
// with a known human-readable part, rather than looking it up through its
// parameters.
func newAddressLibra(hrp string, address, subAddress []byte) (*AddressLibra, error) {
	if len(address) != consensus.AddressDataSize {
		return nil, errors.WithDetailf(ErrMalformedLength, "address must be %d bytes", consensus.AddressDataSize)
	}
	if len(subAddress) != consensus.SubAddressDataSize {
		return nil, errors.WithDetailf(ErrMalformedLength, "sub-address must be %d bytes", consensus.SubAddressDataSize)
	}

	addr := &AddressLibra{hrp: strings.ToLower(hrp)}
	copy(addr.address[:], address)
	copy(addr.subAddress[:], subAddress)
	return addr, nil
}

// EncodeAddress returns the bech32 string encoding of an AddressLibra.
// Part of the Address interface.
func (a *AddressLibra) EncodeAddress() string {
	str, err := encodeAddress(a.hrp, a.address[:], a.subAddress[:])
	if err != nil {
		return ""
	}
	return str
}

// ScriptAddress returns the address followed by the sub-address.
// Part of the Address interface.
func (a *AddressLibra) ScriptAddress() []byte {
	payload := make([]byte, 0, consensus.PayloadDataSize)
	payload = append(payload, a.address[:]...)
	return append(payload, a.subAddress[:]...)
}

// IsForNet returns whether or not the AddressLibra is associated with the
// passed network.
// Part of the Address interface.
func (a *AddressLibra) IsForNet(param *consensus.Params) bool {
	return a.hrp == param.Bech32HRPAddress
}

// String returns a human-readable string for the AddressLibra.
// This is equivalent to calling EncodeAddress, but is provided so the type
// can be used as a fmt.Stringer.
// Part of the Address interface.
func (a *AddressLibra) String() string {
	return a.EncodeAddress()
}

// Hrp returns the human-readable part of the bech32 encoded AddressLibra.
func (a *AddressLibra) Hrp() string {
	return a.hrp
}

// AccountAddress returns the 16 byte on-chain address.
func (a *AddressLibra) AccountAddress() []byte {
	return a.address[:]
}

// SubAddress returns the 8 byte sub-address.
func (a *AddressLibra) SubAddress() []byte {
	return a.subAddress[:]
}
