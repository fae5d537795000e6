package resource

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"cdn-manager/core/faults"
)

// ClassifierOrderVersion identifies the candidate order below. Bump it whenever the
// order or a required key set changes, since both alter which kind an object gets.
const ClassifierOrderVersion = 1

type candidate struct {
	kind     Kind
	required []string
	build    func(obj map[string]any) (Record, bool)
}

var candidates = []candidate{
	{KindService, serviceRequired, newService},
	{KindScope, scopeRequired, newScope},
	{KindHost, hostRequired, newHost},
	{KindOrigin, originRequired, newOrigin},
	{KindPop, popRequired, newPop},
	{KindPlatform, platformRequired, newPlatform},
	{KindNotification, notificationRequired, newNotification},
	{KindDoc, docRequired, newDoc},
	{KindCertificate, certificateRequired, newCertificate},
	{KindBillingRegion, billingRegionRequired, newBillingRegion},
	{KindScopeContainer, scopeContainerRequired, newScopeContainer},
}

// ClassifierOrder returns the kinds in the order they are tested.
func ClassifierOrder() []Kind {
	order := make([]Kind, 0, len(candidates)+3)
	for _, c := range candidates {
		order = append(order, c.kind)
	}
	return append(order, KindIPList, KindList, KindUnrecognized)
}

// RequiredKeys returns the key set an object must contain to be classified as kind.
func RequiredKeys(kind Kind) []string {
	for _, c := range candidates {
		if c.kind == kind {
			return append([]string(nil), c.required...)
		}
	}
	if kind == KindIPList || kind == KindList {
		return []string{"list"}
	}
	return nil
}

// Classify returns the first record kind whose required keys are all present in obj.
//
// The key set alone decides, except for Scope, which is skipped when its platform
// is not CDS or ALL and evaluation continues. A modelled value of the wrong type
// does not reject a candidate; the record keeps it as sent. Objects carrying a
// "list" sequence fall back to IPList or List, and anything else is returned as
// Unrecognized. obj is not modified.
func Classify(obj map[string]any) Record {
	for _, c := range candidates {
		if !containsAll(obj, c.required) {
			continue
		}
		if rec, ok := c.build(obj); ok {
			return rec
		}
	}

	if items, ok := obj["list"].([]any); ok {
		if len(items) > 0 {
			if _, isString := items[0].(string); isString {
				rec, _ := newIPList(obj)
				return rec
			}
		}
		return newList(obj, items)
	}

	return &Unrecognized{Fields: obj}
}

// Decode parses a JSON object and classifies it bottom-up.
func Decode(data []byte) (Record, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var raw any
	if err := decoder.Decode(&raw); err != nil {
		return nil, faults.Decode("unable to decode API response", err)
	}
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, faults.Decode("unable to decode API response", fmt.Errorf("unexpected data after top-level value"))
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, faults.Decode("unable to decode API response", fmt.Errorf("expected a JSON object, got %T", raw))
	}
	return DecodeTree(obj), nil
}

// DecodeTree classifies an already parsed object, innermost objects first.
// Nested objects inside obj are replaced by their records.
func DecodeTree(obj map[string]any) Record {
	for key, value := range obj {
		obj[key] = decodeValue(value)
	}
	return Classify(obj)
}

func decodeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return DecodeTree(t)
	case []any:
		for i, item := range t {
			t[i] = decodeValue(item)
		}
		return t
	default:
		return v
	}
}

func containsAll(obj map[string]any, keys []string) bool {
	for _, key := range keys {
		if _, ok := obj[key]; !ok {
			return false
		}
	}
	return true
}
