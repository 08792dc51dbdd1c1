package errors

import (
	"errors"
	"fmt"
)

// Failure categories for the Nucleo integration. Callers classify with
// errors.Is; the wrapped chain keeps the operation name and the underlying
// cause.
var (
	// ErrAuthentication indicates the upstream returned something other than
	// a valid session token (it places human-readable error text in the
	// token slot), or that credentials are missing.
	ErrAuthentication = errors.New("authentication failed")

	// ErrTransport indicates a network failure or non-success HTTP response,
	// surfaced after the retry policy is exhausted.
	ErrTransport = errors.New("transport failure")

	// ErrParse indicates a malformed SOAP envelope (missing Envelope, Body,
	// or the action's result element).
	ErrParse = errors.New("malformed soap envelope")

	// ErrDataFormat indicates the envelope was well-formed but the embedded
	// payload's expected table container is missing. Distinct from the
	// no-data sentinel, which is not an error.
	ErrDataFormat = errors.New("unexpected data format")

	// ErrValidation indicates a canonical record failed its shape contract.
	ErrValidation = errors.New("record validation failed")
)

// Wrapf wraps an error with context using fmt.Errorf.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
