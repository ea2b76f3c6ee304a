package memo

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"reflect"
	"sort"

	"github.com/vmihailenco/msgpack/v5"
)

// entry is one key/value pair of a canonicalized map.
type entry struct {
	K any `msgpack:"k"`
	V any `msgpack:"v"`
}

// Hash returns a structural key for parts. Maps are encoded as lists of
// entries sorted by key, so map iteration order does not leak into the key.
// Type names of maps and slices are part of the encoding to keep e.g. an
// empty map apart from an empty list.
func Hash(parts ...any) (string, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	for _, p := range parts {
		if err := enc.Encode(canonical(reflect.ValueOf(p))); err != nil {
			return "", fmt.Errorf("memo: cannot encode key part %T: %w", p, err)
		}
	}
	sum := sha256.Sum256(buf.Bytes())
	return hex.EncodeToString(sum[:]), nil
}

// MustHash is like Hash, but panics on unencodable input. Inputs are
// caller-constructed values of known shape, so failing here is a
// programming error.
func MustHash(parts ...any) string {
	h, err := Hash(parts...)
	if err != nil {
		panic(err.Error())
	}
	return h
}

func canonical(v reflect.Value) any {
	if !v.IsValid() {
		return nil
	}
	switch v.Kind() {
	case reflect.Interface, reflect.Pointer:
		if v.IsNil() {
			return nil
		}
		return canonical(v.Elem())
	case reflect.Map:
		if v.IsNil() {
			return nil
		}
		entries := make([]entry, 0, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			entries = append(entries, entry{K: canonical(iter.Key()), V: canonical(iter.Value())})
		}
		sort.Slice(entries, func(i, j int) bool {
			return fmt.Sprint(entries[i].K) < fmt.Sprint(entries[j].K)
		})
		return []any{"map:" + v.Type().String(), entries}
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.IsNil() {
			return nil
		}
		items := make([]any, v.Len())
		for i := range items {
			items[i] = canonical(v.Index(i))
		}
		return []any{"list:" + v.Type().String(), items}
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint()
	case reflect.Float32, reflect.Float64:
		return v.Float()
	case reflect.Struct:
		fields := make([]entry, 0, v.NumField())
		for i := 0; i < v.NumField(); i++ {
			if !v.Type().Field(i).IsExported() {
				continue
			}
			fields = append(fields, entry{K: v.Type().Field(i).Name, V: canonical(v.Field(i))})
		}
		return []any{"struct:" + v.Type().String(), fields}
	}
	return fmt.Sprintf("%v", v.Interface())
}
