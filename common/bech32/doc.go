/*
Package bech32 provides a Go implementation of the bech32 format specified in
BIP 173, together with the fixed-width bit regrouping used by LIP-5 account
addresses.

Bech32 strings consist of a human-readable part (hrp), followed by the
separator 1, then a checksummed data part encoded using the 32 characters
"qpzry9x8gf2tvdw0s3jn54khce6mua7l".

More info: https://github.com/bitcoin/bips/blob/master/bip-0173.mediawiki
LIP-5: https://github.com/libra/lip/blob/master/lips/lip-5.md
*/
package bech32
