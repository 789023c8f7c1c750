package urlbuilder

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
)

// FormatValue returns the text form of a query or fragment value.
// The boolean result is false when v is a null-marker: nil, or a nil
// pointer, map, slice, interface, func or channel.
//
// Integers are written in base 10, booleans as "true" or "false", and
// floats in their shortest exact decimal form without an exponent
// ("1.5", "2", "0.001"). Values implementing encoding.TextMarshaler
// (uuid.UUID, time.Time, netip.Addr) use their text form, then
// fmt.Stringer is tried, and anything else goes through fmt.Sprint.
// Non-nil pointers are dereferenced.
func FormatValue(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		return val, true
	case []byte:
		if val == nil {
			return "", false
		}
		return string(val), true
	case bool:
		return strconv.FormatBool(val), true
	case int:
		return strconv.FormatInt(int64(val), 10), true
	case int8:
		return strconv.FormatInt(int64(val), 10), true
	case int16:
		return strconv.FormatInt(int64(val), 10), true
	case int32:
		return strconv.FormatInt(int64(val), 10), true
	case int64:
		return strconv.FormatInt(val, 10), true
	case uint:
		return strconv.FormatUint(uint64(val), 10), true
	case uint8:
		return strconv.FormatUint(uint64(val), 10), true
	case uint16:
		return strconv.FormatUint(uint64(val), 10), true
	case uint32:
		return strconv.FormatUint(uint64(val), 10), true
	case uint64:
		return strconv.FormatUint(val, 10), true
	case uintptr:
		return strconv.FormatUint(uint64(val), 10), true
	case float32:
		return formatFloat(float64(val), 32), true
	case float64:
		return formatFloat(val, 64), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return "", false
		}
	}

	switch val := v.(type) {
	case encoding.TextMarshaler:
		if text, err := val.MarshalText(); err == nil {
			return string(text), true
		}
		return fmt.Sprint(v), true
	case fmt.Stringer:
		return val.String(), true
	}

	if rv.Kind() == reflect.Pointer {
		return FormatValue(rv.Elem().Interface())
	}

	return fmt.Sprint(v), true
}

// formatFloat writes f without an exponent. NaN and infinities come out
// as "NaN", "+Inf" and "-Inf".
func formatFloat(f float64, bitSize int) string {
	return strconv.FormatFloat(f, 'f', -1, bitSize)
}
