// Package soap implements the transport layer for the legacy Nucleo
// inventory web service.
//
// The upstream speaks SOAP 1.2 over HTTP POST. Every request carries a
// wsBasicQueryHeader block with the account credentials and, for
// authenticated operations, the current session token. Responses embed a
// second XML document (a serialized DataSet) inside the action's result
// element; decoding that is the normalize package's job, not this one's.
//
// # Components
//
//   - Config: account credentials and endpoint settings.
//   - Envelope: renders the SOAP 1.2 request for an action.
//   - Client: performs the call with strict connection timeouts.
//   - Backoff: an ordered list of wait durations driving the retry loop.
//
// # Retry Semantics
//
// A call is attempted once per Backoff entry plus one. Each failure that
// still has a wait ahead of it is logged as a warning before sleeping;
// exhausting the policy surfaces ErrTransport wrapping the last failure.
// An empty policy means exactly one attempt.
package soap
