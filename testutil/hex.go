package testutil

import (
	"encoding/hex"
	"math/rand"
)

func MustDecodeHexString(s string) []byte {
	bytes, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return bytes
}

// RandomHex returns n random bytes from r encoded as lowercase hex.
func RandomHex(r *rand.Rand, n int) string {
	b := make([]byte, n)
	r.Read(b)
	return hex.EncodeToString(b)
}
