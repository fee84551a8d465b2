// Package exitcode maps errors to stable process exit codes so scripts can
// branch on failure class without parsing messages.
package exitcode

import (
	"os"

	"github.com/eventcal-io/eventcal/internal/errors"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// AuthError indicates an authentication failure
	AuthError = 3

	// NetworkError indicates the backend could not be reached
	NetworkError = 4

	// Interrupted indicates the user cancelled the operation
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	Exit(DetermineExitCode(err))
}

// DetermineExitCode analyzes an error and returns the appropriate exit code
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	switch errors.Code(err) {
	case errors.ErrCodeTransport:
		return NetworkError
	case errors.ErrCodeAuthNotLoggedIn, errors.ErrCodeAuthTokenStale, errors.ErrCodeAuthLoginFailed:
		return AuthError
	default:
		// Backend validation rejections are ordinary command failures;
		// only the AUTH-coded ones get the auth exit code.
		return GeneralError
	}
}
