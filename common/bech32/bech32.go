// Copyright (c) 2017 Takatoshi Nakagawa
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package bech32

import (
	"bytes"
	"strings"

	"github.com/bytom/lbraddr/errors"
)

// ChecksumLength is the number of 5-bit groups in a checksum.
const ChecksumLength = 6

const maxLength = 90

var (
	ErrInvalidCharacter = errors.New("invalid character")
	ErrInvalidDataRange = errors.New("invalid data range")
	ErrIllegalPadding   = errors.New("illegal zero padding")
	ErrNonZeroPadding   = errors.New("non-zero padding")
	ErrChecksumMismatch = errors.New("checksum mismatch")
	ErrMalformedLength  = errors.New("malformed length")
	ErrInvalidHRP       = errors.New("invalid human-readable part")
	ErrMixedCase        = errors.New("mixed case")
)

var generator = [5]uint32{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}

// polymod evaluates the BCH checksum over values, which must all be 5-bit.
// The result always fits in 30 bits.
func polymod(values []byte) uint32 {
	chk := uint32(1)
	for _, v := range values {
		top := chk >> 25
		chk = (chk&0x1ffffff)<<5 ^ uint32(v)
		for i := 0; i < 5; i++ {
			if (top>>uint(i))&1 == 1 {
				chk ^= generator[i]
			}
		}
	}
	return chk
}

func hrpExpand(hrp string) []byte {
	ret := make([]byte, 0, len(hrp)*2+1)
	for i := 0; i < len(hrp); i++ {
		ret = append(ret, hrp[i]>>5)
	}
	ret = append(ret, 0)
	for i := 0; i < len(hrp); i++ {
		ret = append(ret, hrp[i]&31)
	}
	return ret
}

func checkGroups(groups []byte) error {
	for idx, v := range groups {
		if v >= 32 {
			return errors.WithDetailf(ErrInvalidDataRange, "data[%d]=%d", idx, v)
		}
	}
	return nil
}

// VerifyChecksum reports whether data, with its checksum groups appended,
// carries a valid checksum for hrp.
func VerifyChecksum(hrp string, data []byte) bool {
	values := append(hrpExpand(hrp), data...)
	return polymod(values) == 1
}

// CreateChecksum returns the six checksum groups for hrp and data.
func CreateChecksum(hrp string, data []byte) []byte {
	values := append(hrpExpand(hrp), data...)
	values = append(values, make([]byte, ChecksumLength)...)
	mod := polymod(values) ^ 1
	ret := make([]byte, ChecksumLength)
	for p := range ret {
		ret[p] = byte(mod>>uint(5*(ChecksumLength-1-p))) & 31
	}
	return ret
}

// Checksum returns the checksum of hrp and data rendered as characters.
func Checksum(hrp string, data []byte) (string, error) {
	if err := checkGroups(data); err != nil {
		return "", err
	}
	return EncodeSymbols(CreateChecksum(hrp, data))
}

func checkHRP(hrp string) error {
	if len(hrp) < 1 {
		return errors.WithDetail(ErrInvalidHRP, "empty")
	}
	for p := 0; p < len(hrp); p++ {
		if c := hrp[p]; c < 33 || c > 126 {
			return errors.WithDetailf(ErrInvalidHRP, "hrp[%d]=%d", p, c)
		}
	}
	return nil
}

// Bech32Encode encodes hrp and data (5-bit groups) into a bech32 string.
// If hrp is uppercase, the result is uppercase.
func Bech32Encode(hrp string, data []byte) (string, error) {
	if len(hrp)+len(data)+1+ChecksumLength > maxLength {
		return "", errors.WithDetailf(ErrMalformedLength, "too long: hrp length=%d, data length=%d", len(hrp), len(data))
	}
	if err := checkHRP(hrp); err != nil {
		return "", err
	}

	lower := strings.ToLower(hrp)
	upper := strings.ToUpper(hrp)
	if hrp != lower && hrp != upper {
		return "", errors.WithDetailf(ErrMixedCase, "hrp=%s", hrp)
	}
	if err := checkGroups(data); err != nil {
		return "", err
	}

	combined := make([]byte, 0, len(data)+ChecksumLength)
	combined = append(combined, data...)
	combined = append(combined, CreateChecksum(lower, data)...)
	encoded, err := EncodeSymbols(combined)
	if err != nil {
		return "", err
	}

	var ret bytes.Buffer
	ret.WriteString(lower)
	ret.WriteByte('1')
	ret.WriteString(encoded)
	if hrp == lower {
		return ret.String(), nil
	}
	return strings.ToUpper(ret.String()), nil
}

// Bech32Decode decodes a bech32 string into its lowercase hrp and data
// groups, with the checksum verified and stripped. The separator is the last
// '1' of the string.
func Bech32Decode(bech string) (string, []byte, error) {
	if len(bech) > maxLength {
		return "", nil, errors.WithDetailf(ErrMalformedLength, "too long: len=%d", len(bech))
	}

	for p := 0; p < len(bech); p++ {
		if bech[p] >= 128 {
			return "", nil, errors.WithDetailf(ErrInvalidCharacter, "bech[%d]=%d", p, bech[p])
		}
	}

	lower := strings.ToLower(bech)
	if bech != lower && bech != strings.ToUpper(bech) {
		return "", nil, ErrMixedCase
	}

	pos := strings.LastIndexByte(lower, '1')
	if pos < 1 || pos+ChecksumLength+1 > len(lower) {
		return "", nil, errors.WithDetailf(ErrMalformedLength, "separator '1' at invalid position: pos=%d, len=%d", pos, len(lower))
	}

	hrp := lower[:pos]
	if err := checkHRP(hrp); err != nil {
		return "", nil, err
	}

	data, err := DecodeSymbols(lower[pos+1:])
	if err != nil {
		return "", nil, err
	}

	if !VerifyChecksum(hrp, data) {
		return "", nil, errors.WithDetailf(ErrChecksumMismatch, "checksum %s", lower[len(lower)-ChecksumLength:])
	}
	return hrp, data[:len(data)-ChecksumLength], nil
}
