// Package errors defines the failure taxonomy for the catalog bridge.
//
// Every failure leaving the core wraps one of the sentinel values defined
// here, so callers can classify with errors.Is without string matching:
//
//   - ErrAuthentication: upstream rejected or never issued a session token.
//   - ErrTransport: the SOAP call failed after the retry policy ran out.
//   - ErrParse: the SOAP envelope itself is structurally broken.
//   - ErrDataFormat: the envelope is fine but the embedded table is missing.
//   - ErrValidation: a normalized record violates its shape contract.
//
// The no-data sentinel payload is deliberately NOT an error; feeds that
// match nothing yield empty slices.
package errors
