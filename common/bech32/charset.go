package bech32

import (
	"bytes"

	"github.com/bytom/lbraddr/errors"
)

const charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

// charsetRev maps an ASCII byte to its 5-bit value, -1 when the byte is not
// part of the lowercase alphabet.
var charsetRev = [128]int8{
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	15, -1, 10, 17, 21, 20, 26, 30, 7, 5, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, 29, -1, 24, 13, 25, 9, 8, 23, -1, 18, 22, 31, 27, 19, -1,
	1, 0, 3, 16, 11, 28, 12, 14, 6, 4, 2, -1, -1, -1, -1, -1,
}

// SymbolToChar returns the alphabet character for the 5-bit value v.
func SymbolToChar(v byte) (byte, error) {
	if v >= 32 {
		return 0, errors.WithDetailf(ErrInvalidDataRange, "symbol value %d", v)
	}
	return charset[v], nil
}

// CharToSymbol returns the 5-bit value of the alphabet character c. Only
// lowercase characters are accepted.
func CharToSymbol(c byte) (byte, error) {
	if c >= 128 || charsetRev[c] < 0 {
		return 0, errors.WithDetailf(ErrInvalidCharacter, "character %q", c)
	}
	return byte(charsetRev[c]), nil
}

// EncodeSymbols maps every 5-bit value in groups to its character.
func EncodeSymbols(groups []byte) (string, error) {
	var ret bytes.Buffer
	ret.Grow(len(groups))
	for i, v := range groups {
		c, err := SymbolToChar(v)
		if err != nil {
			return "", errors.Wrapf(err, "data[%d]", i)
		}
		ret.WriteByte(c)
	}
	return ret.String(), nil
}

// DecodeSymbols maps every character of s back to its 5-bit value.
func DecodeSymbols(s string) ([]byte, error) {
	groups := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		v, err := CharToSymbol(s[i])
		if err != nil {
			return nil, errors.Wrapf(err, "position %d", i)
		}
		groups[i] = v
	}
	return groups, nil
}
