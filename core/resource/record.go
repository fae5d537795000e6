package resource

import (
	"fmt"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
)

// Kind names a record variant.
type Kind string

const (
	KindService        Kind = "service"
	KindScope          Kind = "scope"
	KindHost           Kind = "host"
	KindOrigin         Kind = "origin"
	KindPop            Kind = "pop"
	KindPlatform       Kind = "platform"
	KindNotification   Kind = "notification"
	KindDoc            Kind = "doc"
	KindCertificate    Kind = "certificate"
	KindBillingRegion  Kind = "billing_region"
	KindScopeContainer Kind = "scope_container"
	KindIPList         Kind = "ip_list"
	KindList           Kind = "list"
	KindUnrecognized   Kind = "unrecognized"
)

// Record is a classified API object.
type Record interface {
	Kind() Kind
	Project() map[string]any
}

// Reconcilable is a record the reconciler can converge.
type Reconcilable interface {
	Record
	// Identifier returns the server assigned id, if the record has one.
	Identifier() (int64, bool)
	// Lookup returns the current value of an attribute the record carries,
	// modelled or not.
	Lookup(key string) (any, bool)
	// Diff returns the desired values that differ from the current ones.
	Diff(desired map[string]any) map[string]any
	// UpdatePayload returns the mutable projection overlaid with updates.
	UpdatePayload(updates map[string]any) map[string]any
}

// attributes tracks which keys the API sent and keeps the ones a record does not model.
type attributes struct {
	present map[string]struct{}
	extra   map[string]any
	// mistyped holds modelled keys whose value did not fit the field, as sent.
	mistyped map[string]any
}

func newAttributes(obj map[string]any, unused []string) attributes {
	attrs := attributes{
		present: make(map[string]struct{}, len(obj)),
		extra:   make(map[string]any, len(unused)),
	}
	for key := range obj {
		attrs.present[key] = struct{}{}
	}
	for _, key := range unused {
		attrs.extra[key] = obj[key]
	}
	return attrs
}

// Has reports whether the API sent key for this record.
func (a attributes) Has(key string) bool {
	_, ok := a.present[key]
	return ok
}

// Extra returns a copy of the keys the record does not model.
func (a attributes) Extra() map[string]any {
	out := make(map[string]any, len(a.extra))
	for k, v := range a.extra {
		out[k] = v
	}
	return out
}

// populate decodes obj into target and records key presence. A modelled key
// whose value does not fit its field leaves the field zero and is kept as sent,
// so the record still projects what the API returned.
func populate(obj map[string]any, target any, attrs *attributes) {
	var md mapstructure.Metadata
	if err := decodeInto(obj, target, &md); err == nil {
		*attrs = newAttributes(obj, md.Unused)
		return
	}

	// Start over key by key. Each key is tried on a scratch value first so a
	// failing one cannot leave a half decoded field behind.
	value := reflect.ValueOf(target).Elem()
	value.Set(reflect.Zero(value.Type()))

	var unused []string
	mistyped := make(map[string]any)
	for key, raw := range obj {
		single := map[string]any{key: raw}
		var keyMD mapstructure.Metadata
		if err := decodeInto(single, reflect.New(value.Type()).Interface(), &keyMD); err != nil {
			mistyped[key] = raw
			continue
		}
		if len(keyMD.Unused) > 0 {
			unused = append(unused, key)
			continue
		}
		_ = decodeInto(single, target, nil)
	}
	*attrs = newAttributes(obj, unused)
	attrs.mistyped = mistyped
}

func decodeInto(obj map[string]any, target any, md *mapstructure.Metadata) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     target,
		Metadata:   md,
		DecodeHook: mapstructure.DecodeHookFuncType(nestedRecordHook),
	})
	if err != nil {
		return err
	}
	return decoder.Decode(obj)
}

// overlay puts mistyped values back into a projection.
func (a attributes) overlay(out map[string]any) map[string]any {
	for key, value := range a.mistyped {
		out[key] = projectValue(value)
	}
	return out
}

// nestedRecordHook refuses to decode a nested record into a struct of another
// kind, which would otherwise yield an empty struct. The key is then kept as sent.
func nestedRecordHook(from, to reflect.Type, data any) (any, error) {
	if _, ok := data.(Record); !ok {
		return data, nil
	}
	if to.Kind() == reflect.Interface || from == to || from == reflect.PointerTo(to) {
		return data, nil
	}
	return nil, fmt.Errorf("cannot decode %s as %s", from, to)
}

// setOptional projects an optional attribute only when it was sent.
func setOptional[T any](out map[string]any, attrs attributes, key string, value *T) {
	if !attrs.Has(key) {
		return
	}
	if value == nil {
		out[key] = nil
		return
	}
	out[key] = *value
}

func setOptionalValue(out map[string]any, attrs attributes, key string, value any) {
	if attrs.Has(key) {
		out[key] = projectValue(value)
	}
}

// lookup resolves key against the projection first, then the unmodelled keys.
func lookup(projection map[string]any, attrs attributes, key string) (any, bool) {
	if !attrs.Has(key) {
		return nil, false
	}
	if v, ok := projection[key]; ok {
		return v, true
	}
	return attrs.extra[key], true
}

// diffAttributes keeps the desired values that differ from what the record carries.
// Desired keys the record does not carry are ignored.
func diffAttributes(projection map[string]any, attrs attributes, desired map[string]any) map[string]any {
	changes := make(map[string]any)
	for key, want := range desired {
		current, ok := lookup(projection, attrs, key)
		if !ok {
			continue
		}
		if !Equal(current, want) {
			changes[key] = want
		}
	}
	return changes
}

// projectValue turns nested records into their plain form.
func projectValue(v any) any {
	switch t := v.(type) {
	case Record:
		return ToValue(t)
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = projectValue(item)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = projectValue(item)
		}
		return out
	default:
		return v
	}
}

// ToValue returns the plain output form of a decoded value. Lists render as
// sequences of projected items; every other record renders as its projection.
func ToValue(v any) any {
	switch t := v.(type) {
	case *List:
		return t.Values()
	case Record:
		return t.Project()
	default:
		return projectValue(v)
	}
}
