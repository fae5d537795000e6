// Package history keeps an audit trail of reconciliation runs.
//
// Every run, dry or not, is written once when it finishes. The trail is never read
// back to make decisions; it only serves the history command and the /runs
// endpoint.
package history
