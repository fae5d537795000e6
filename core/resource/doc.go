// Package resource decodes StrikeTracker API payloads into typed records.
//
// The API returns untyped JSON and does not tag objects with their kind, so the
// decoder classifies each object by the set of keys it carries. Candidates are tested
// in a fixed, versioned order (see ClassifierOrder) and the first whose required key
// set is contained in the object wins. Several required sets are subsets of others,
// which makes the order part of the contract rather than an implementation detail.
//
// # Records
//
// Every record implements Record:
//
//	type Record interface {
//	    Kind() Kind
//	    Project() map[string]any
//	}
//
// Project returns the normalized mapping used for output and comparison. Optional
// attributes appear in the projection only when the API actually sent them. Keys a
// record does not model are kept aside (see Extra) and are never projected.
//
// Origin additionally implements Reconcilable, which adds Diff and UpdatePayload.
//
// # Decoding
//
// Decode parses JSON text and classifies the tree bottom-up, so a list of origins is
// built from already classified Origin records. Objects that match no shape are kept
// as Unrecognized; that is not an error. Malformed JSON is a faults.DecodeError.
//
//	rec, err := resource.Decode(body)
//	if origin, ok := rec.(*resource.Origin); ok {
//	    fmt.Println(origin.Hostname)
//	}
package resource
