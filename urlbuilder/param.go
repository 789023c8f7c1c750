package urlbuilder

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrOddPairs is returned by Pairs when a key has no matching value.
var ErrOddPairs = errors.New("urlbuilder: number of parameters must be multiple of 2")

// Param is a single query or fragment entry. A nil Value is a
// null-marker: the key is rendered without "=" (or dropped, depending on
// Options).
type Param struct {
	Key   string
	Value any
}

// KV returns a Param with the given key and value.
func KV(key string, value any) Param {
	return Param{Key: key, Value: value}
}

// Key returns a Param carrying only a key.
func Key(key string) Param {
	return Param{Key: key}
}

// Pairs converts alternating key/value strings into params.
func Pairs(kv ...string) ([]Param, error) {
	if len(kv)%2 != 0 {
		return nil, fmt.Errorf("%w, got %q", ErrOddPairs, kv)
	}
	params := make([]Param, 0, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		params = append(params, KV(kv[i], kv[i+1]))
	}
	return params, nil
}

// paramsFromMap returns the entries of m ordered by key.
func paramsFromMap(m map[string]any) []Param {
	params := make([]Param, 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		params = append(params, KV(k, m[k]))
	}
	return params
}

// encodeParams renders params as an "&"-joined list of encoded components.
// Null-marker params are dropped when excludeNull is set.
func encodeParams(params []Param, excludeNull bool) string {
	var buf []byte
	n := 0
	for _, p := range params {
		value, ok := FormatValue(p.Value)
		if !ok && excludeNull {
			continue
		}
		if n > 0 {
			buf = append(buf, '&')
		}
		n++
		buf = append(buf, Encode(p.Key)...)
		if ok {
			buf = append(buf, '=')
			buf = append(buf, Encode(value)...)
		}
	}
	return string(buf)
}
