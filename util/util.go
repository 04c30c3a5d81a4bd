package util

const (
	// Success indicates the command finished without error.
	Success = iota
	// ErrLocalExe indicates error occurs before the command runs, e.g.,
	// bad flags or an unreadable config.
	ErrLocalExe
	// ErrLocalParse indicates an address or hex argument failed to parse.
	ErrLocalParse
)
