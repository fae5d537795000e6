// Package api is the StrikeTracker REST client.
//
// A Client authenticates once (pre-issued token or OAuth2 password grant against
// /auth/token), rate limits outgoing calls, and maps HTTP failures to the error
// categories in core/faults: a 404 becomes faults.ErrNotFound and any other non-2xx
// status becomes an API error carrying URL, status, reason and the server's "error"
// field. Response bodies are classified with resource.Decode.
package api
