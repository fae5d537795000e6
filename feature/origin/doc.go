// Package origin reconciles StrikeTracker origins.
//
// Options mirror the inputs of a single origin reconciliation (attributes,
// state, check and diff modes, or a raw JSON config). Service runs one
// reconciliation at a time: it takes the cross-process lock, plans against the
// live API, snapshots the origin before mutating it, applies the plan, records
// the run and publishes an event for applied changes.
//
// Handler exposes the same operations over HTTP:
//
//	POST /origins/reconcile
//	GET  /origins
//	GET  /origins/{id}
//	GET  /runs
package origin
