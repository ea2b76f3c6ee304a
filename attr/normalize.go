package attr

import "reflect"

// StringMap returns v as a map[string]any if v is a map with string-kind
// keys, e.g. map[State]any as produced by decoders which reuse the type of
// an enclosing map. Nested values are not converted.
func StringMap(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	m := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		m[iter.Key().String()] = iter.Value().Interface()
	}
	return m, true
}

// Normalize converts every map with string-kind keys nested in v to
// map[string]any, and every slice to []any.
func Normalize(v any) any {
	if m, ok := StringMap(v); ok {
		r := make(map[string]any, len(m))
		for k, x := range m {
			r[k] = Normalize(x)
		}
		return r
	}
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return v
	}
	r := make([]any, rv.Len())
	for i := range r {
		r[i] = Normalize(rv.Index(i).Interface())
	}
	return r
}

// NormalizeTree applies Normalize to every leaf of t.
func NormalizeTree(t Tree[any]) Tree[any] {
	return MapTree(t, func(_ Key, v any) any {
		return Normalize(v)
	})
}
