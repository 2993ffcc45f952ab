package util

import "errors"

// Exit codes for automation-friendly CLI usage.
const (
	ExitSuccess            = 0
	ExitGenericError       = 1
	ExitInvalidArgs        = 2
	ExitRecoverFailed      = 10
	ExitShardInvalid       = 11
	ExitUnsupportedVersion = 12
)

// Sentinel errors used across the application.
var (
	ErrUnsupportedVersion = errors.New("unsupported shard format version")
	ErrShardCorrupted     = errors.New("shard file is corrupted or incomplete")
	ErrRecoverFailed      = errors.New("secret reconstruction failed")
)

// ExitCodeForError maps a sentinel error to its CLI exit code.
func ExitCodeForError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrRecoverFailed):
		return ExitRecoverFailed
	case errors.Is(err, ErrShardCorrupted):
		return ExitShardInvalid
	case errors.Is(err, ErrUnsupportedVersion):
		return ExitUnsupportedVersion
	default:
		return ExitGenericError
	}
}
