// Package output renders command results as JSON or YAML, optionally filtered
// through a jq expression.
package output
