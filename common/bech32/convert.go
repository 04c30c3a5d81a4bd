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

import "github.com/bytom/lbraddr/errors"

// VersionGroup is the 5-bit address version placed ahead of the regrouped
// payload.
const VersionGroup byte = 1

// regroup re-slices data from fromBits-wide words into toBits-wide words.
// The returned queue holds the trailing bits that did not fill a word.
func regroup(data []byte, fromBits, toBits uint8) ([]byte, *bitQueue, error) {
	if fromBits < 1 || fromBits > 8 || toBits < 1 || toBits > 8 {
		return nil, nil, errors.WithDetailf(ErrInvalidDataRange, "bit widths %d -> %d", fromBits, toBits)
	}

	q := newBitQueue(uint(fromBits) + uint(toBits) - 1)
	ret := make([]byte, 0, len(data)*int(fromBits)/int(toBits)+1)
	for idx, value := range data {
		if value>>fromBits != 0 {
			return nil, nil, errors.WithDetailf(ErrInvalidDataRange, "data[%d]=%d (frombits=%d)", idx, value, fromBits)
		}
		q.push(uint32(value), uint(fromBits))
		for q.len() >= uint(toBits) {
			ret = append(ret, byte(q.pop(uint(toBits))))
		}
	}
	return ret, q, nil
}

// ConvertBits converts a byte slice where each byte is encoding fromBits bits,
// to a byte slice where each byte is encoding toBits bits.
// With pad set, the trailing bits are right-padded with zeros to fill one
// more word. Without it, the trailing bits must be fewer than fromBits and
// all zero.
func ConvertBits(data []byte, fromBits, toBits uint8, pad bool) ([]byte, error) {
	ret, q, err := regroup(data, fromBits, toBits)
	if err != nil {
		return nil, err
	}

	if pad {
		if q.len() > 0 {
			q.padTo(uint(toBits))
			ret = append(ret, byte(q.pop(uint(toBits))))
		}
		return ret, nil
	}

	if q.len() >= uint(fromBits) {
		return nil, errors.WithDetailf(ErrIllegalPadding, "%d leftover bits", q.len())
	}
	if q.rest() != 0 {
		return nil, errors.WithDetailf(ErrNonZeroPadding, "padding bits %b", q.rest())
	}
	return ret, nil
}

// BytesToGroups prefixes the version group to the payload regrouped into
// 5-bit words, zero-padding the last word.
func BytesToGroups(payload []byte) []byte {
	q := newBitQueue(8 + 5 - 1)
	groups := make([]byte, 0, 1+(len(payload)*8+4)/5)
	groups = append(groups, VersionGroup)
	for _, b := range payload {
		q.push(uint32(b), 8)
		for q.len() >= 5 {
			groups = append(groups, byte(q.pop(5)))
		}
	}
	if q.len() > 0 {
		q.padTo(5)
		groups = append(groups, byte(q.pop(5)))
	}
	return groups
}

// GroupsToBytes drops the leading version group and regroups the rest into
// bytes. The bits left over after the last full byte must be zero.
func GroupsToBytes(groups []byte) ([]byte, error) {
	if len(groups) == 0 {
		return nil, errors.WithDetail(ErrMalformedLength, "missing version group")
	}
	return ConvertBits(groups[1:], 5, 8, false)
}

// GroupsToBytesLoose is GroupsToBytes without the padding check: the
// leftover bits are discarded whatever their value.
func GroupsToBytesLoose(groups []byte) ([]byte, error) {
	if len(groups) == 0 {
		return nil, errors.WithDetail(ErrMalformedLength, "missing version group")
	}
	ret, _, err := regroup(groups[1:], 5, 8)
	return ret, err
}
