package errors_test

import (
	"fmt"

	"github.com/bytom/lbraddr/errors"
)

var (
	ErrBadAddress       = errors.New("bad address")
	errChecksumMismatch = errors.New("checksum mismatch")
)

func decode(addr string) error {
	return errors.Wrap(errChecksumMismatch, "decode")
}

func ExampleSub() {
	err := decode("lbr1p7ujcndcl7nudzwt8fglhx6wxn08kgs5tm6mz4usflf8ma")
	if err != nil {
		err = errors.Sub(ErrBadAddress, err)
		fmt.Println(errors.Root(err) == ErrBadAddress)
		fmt.Println(err)
	}
	// Output:
	// true
	// decode: checksum mismatch: bad address
}

func ExampleWithDetail() {
	err := errors.WithDetail(ErrBadAddress, "checksum w5p72b")
	fmt.Println(err)
	fmt.Println(errors.Detail(err))
	// Output:
	// checksum w5p72b: bad address
	// checksum w5p72b
}
