// Package jsonval loads loosely-written JSON metadata and reads values out of
// the decoded tree with forgiving accessors.
//
// Mod metadata is hand-edited and frequently carries comments or trailing
// commas, so input is normalized with jsonc before decoding. Numbers are kept
// as json.Number so their source text survives.
//
// Accessors never fail: a missing key and a key of the wrong type both read
// as the zero value. Callers that must tell the two apart use Lookup.
package jsonval

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/tidwall/jsonc"
)

// utf8BOM is written at the start of files by some Windows editors.
var utf8BOM = []byte("\xEF\xBB\xBF")

// Load decodes data into a generic tree of map[string]any, []any, string,
// json.Number, bool and nil values. A leading UTF-8 byte-order mark is
// skipped.
func Load(data []byte) (any, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("decode json: trailing data after top-level value")
	}
	return v, nil
}

// Object returns v as an object.
func Object(v any) (map[string]any, bool) {
	obj, ok := v.(map[string]any)
	return obj, ok
}

// Array returns v as an array, or nil if it is not one.
func Array(v any) []any {
	arr, _ := v.([]any)
	return arr
}

// Lookup returns the value stored under key and whether the key is present.
// A present key may still hold null or a value of an unexpected type.
func Lookup(obj map[string]any, key string) (any, bool) {
	if obj == nil {
		return nil, false
	}
	v, ok := obj[key]
	return v, ok
}

// String returns the string stored under key, or "" when the key is
// absent or holds a non-string.
func String(obj map[string]any, key string) string {
	v, _ := Lookup(obj, key)
	s, _ := v.(string)
	return s
}

// Text renders a scalar as text: strings verbatim, numbers as written in
// the source. Every other value is "".
func Text(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case json.Number:
		return x.String()
	default:
		return ""
	}
}

// Float returns v as a float64 when it is a number.
func Float(v any) (float64, bool) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	f, err := n.Float64()
	if err != nil {
		return 0, false
	}
	return f, true
}

// Int returns v as an int when it is a number holding an integral value.
// 2.0 is integral; 2.5 is not.
func Int(v any) (int, bool) {
	f, ok := Float(v)
	if !ok || f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}
