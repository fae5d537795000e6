// Package snapshot archives the state of a resource before it is mutated.
//
// Snapshots are JSON projections stored under
// snapshots/<account>/<kind>/<key>/<run_id>.json, so a bad update or an
// unintended delete can be inspected and replayed by hand. Only the newest
// snapshots of each resource are retained.
package snapshot
