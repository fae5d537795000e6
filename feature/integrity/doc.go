// Package integrity checks the backends cdn-manager talks to.
//
// Reconciliation itself only needs the StrikeTracker API. Run history,
// snapshots, locking and events are optional, and a misconfigured one tends to
// surface in the middle of a run. These checks find that out up front.
//
// # Checks Provided
//
//   - api: Authenticates against StrikeTracker with the configured credentials.
//   - database: Compares the runs table with the history model (fix migrates it).
//   - storage: Verifies the snapshot bucket exists (fix creates it).
//   - lock: Pings the redis server behind the resource lock.
//   - events: Dials the kafka brokers and looks up the event topic.
//
// Checks for backends that are not enabled report "disabled".
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks (supports ?fix=true).
//   - GET /integrity/:name : Runs one check (supports ?fix=true).
package integrity
