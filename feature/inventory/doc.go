// Package inventory exposes read-only StrikeTracker collections over HTTP.
//
// Every response is decoded by the resource classifier, so the payload is the
// projection of whatever records the API returned.
package inventory
