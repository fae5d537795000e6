package resource

import (
	"encoding/json"
	"math"
	"math/big"
	"reflect"
	"strconv"
)

// Equal compares two attribute values after normalizing numbers and nested records.
//
// Numbers compare by value whatever their Go representation, so a flag parsed as int
// equals the json.Number the API sent. Integral values compare exactly, even past
// the range a float64 holds without loss. Strings never equal numbers and booleans
// never equal numbers.
func Equal(a, b any) bool {
	return reflect.DeepEqual(normalize(a), normalize(b))
}

func normalize(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case Record:
		return normalize(ToValue(t))
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if b, ok := new(big.Int).SetString(string(t), 10); ok {
			return bigInteger(b.String())
		}
		if f, err := t.Float64(); err == nil {
			return normalizeFloat(f)
		}
		return string(t)
	case string, bool:
		return t
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = normalize(item)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = normalize(item)
		}
		return out
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if u := rv.Uint(); u <= math.MaxInt64 {
			return int64(u)
		}
		return bigInteger(strconv.FormatUint(rv.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		return normalizeFloat(rv.Float())
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return rv.Bool()
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return normalize(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = normalize(rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return v
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = normalize(iter.Value().Interface())
		}
		return out
	}
	return v
}

// bigInteger is the decimal form of an integer outside the int64 range.
type bigInteger string

// normalizeFloat maps integral floats onto the integer forms so 80.0 equals 80.
func normalizeFloat(f float64) any {
	if math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
		return f
	}
	if f >= math.MinInt64 && f < math.MaxInt64 {
		return int64(f)
	}
	i, _ := big.NewFloat(f).Int(nil)
	return bigInteger(i.String())
}
