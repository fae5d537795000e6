// Package events announces finished reconciliations on a message bus.
//
// Only runs that changed something, or would have in a dry run, are published.
// Messages are keyed by resource so every change to one resource lands on the same
// partition in order.
package events
