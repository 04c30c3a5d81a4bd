package commands

import (
	"fmt"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/bytom/lbraddr/common"
	"github.com/bytom/lbraddr/common/bech32"
	"github.com/bytom/lbraddr/errors"
	"github.com/bytom/lbraddr/util"
)

// commandError is an error used to signal different error situations in command handling.
type commandError struct {
	s         string
	userError bool
	exitCode  int
}

func (c commandError) Error() string {
	return c.s
}

// ExitCode lets the tmlibs executor exit with the code of the failure.
func (c commandError) ExitCode() int {
	return c.exitCode
}

func (c commandError) isUserError() bool {
	return c.userError
}

func newUserError(a ...interface{}) commandError {
	return commandError{s: fmt.Sprint(a...), userError: true, exitCode: util.ErrLocalExe}
}

func newSystemError(a ...interface{}) commandError {
	return commandError{s: fmt.Sprint(a...), userError: false, exitCode: util.ErrLocalExe}
}

func newSystemErrorF(format string, a ...interface{}) commandError {
	return commandError{s: fmt.Sprintf(format, a...), userError: false, exitCode: util.ErrLocalExe}
}

// newParseError reports an address or hex argument that failed to parse.
func newParseError(arg string, err error) commandError {
	return commandError{s: arg + ": " + formatter.Format(err), userError: true, exitCode: util.ErrLocalParse}
}

// Catch some of the obvious user errors from Cobra.
// We don't want to show the usage message for every error.
var userErrorRegexp = regexp.MustCompile(`argument|arg\(s\)|flag|shorthand`)

func isUserError(err error) bool {
	if cErr, ok := err.(commandError); ok && cErr.isUserError() {
		return true
	}

	return userErrorRegexp.MatchString(err.Error())
}

// errorFormatter defines rules for mapping codec errors to the short
// messages printed by the commands.
type errorFormatter struct {
	Default string
	Errors  map[error]string
}

// Format describes err by consulting the f.Errors lookup table, followed by
// the error detail if any. If no entry is found, it uses f.Default.
func (f errorFormatter) Format(err error) (msg string) {
	root := errors.Root(err)
	// Some types cannot be used as map keys, for example slices.
	// If an error's underlying type is one of these, don't panic.
	defer func() {
		if r := recover(); r != nil {
			msg = f.Default + ": " + err.Error()
		}
	}()

	msg, ok := f.Errors[root]
	if !ok {
		return f.Default + ": " + err.Error()
	}
	if detail := errors.Detail(err); detail != "" {
		msg += " (" + detail + ")"
	}
	return msg
}

var formatter = errorFormatter{
	Default: "unexpected error",
	Errors: map[error]string{
		common.ErrInvalidHexInput:    "invalid hex input",
		common.ErrInvalidVersion:     "unsupported address version",
		common.ErrUnknownAddressType: "address does not belong to the selected network",
		bech32.ErrInvalidCharacter:   "invalid character",
		bech32.ErrChecksumMismatch:   "checksum mismatch",
		bech32.ErrMalformedLength:    "malformed length",
		bech32.ErrNonZeroPadding:     "non-zero padding bits",
		bech32.ErrInvalidHRP:         "invalid human-readable part",
		bech32.ErrMixedCase:          "mixed case",
		bech32.ErrInvalidDataRange:   "invalid data range",
	},
}

// checkArgs wraps a cobra argument validator so a bad invocation prints the
// usage of the command.
func checkArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			if isUserError(err) {
				cmd.Usage()
			}
			return newUserError(err)
		}
		return nil
	}
}

func flagError(cmd *cobra.Command, err error) error {
	if isUserError(err) {
		cmd.Usage()
	}
	return newUserError(err)
}
