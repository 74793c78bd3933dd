package propath

import (
	"reflect"
	"strings"
)

// Get resolves path against object and returns the value found, or the
// optional default when any step is missing or nil. A value that is
// present but nil is returned as nil, not as the default.
func Get(object any, path any, defaultValue ...any) any {
	var def any
	if len(defaultValue) > 0 {
		def = defaultValue[0]
	}
	keys, err := castPath(object, path)
	if err != nil || len(keys) == 0 {
		return def
	}
	current := object
	for _, key := range keys {
		v, ok := lookup(current, key)
		if !ok {
			return def
		}
		current = v
	}
	return current
}

// castPath normalizes path to an ordered key sequence. A string that
// is a deep key, or a flat key carrying escapes, is tokenized only
// when the whole string does not already resolve to a defined direct
// property of object, so flat keys that happen to contain delimiter
// characters stay addressable.
func castPath(object any, path any) ([]any, error) {
	if keys, ok := keySequence(path); ok {
		return keys, nil
	}
	if p, ok := path.(string); ok {
		if !IsDeepKey(p) && !strings.ContainsRune(p, '\\') {
			return []any{p}, nil
		}
		if v, ok := lookup(object, p); ok && v != nil {
			return []any{p}, nil
		}
		return ToPathCached(p)
	}
	return []any{path}, nil
}

// keySequence normalizes a sequence-form path into []any. Any slice or
// array of keys qualifies, so []int index paths work alongside []any
// and []string.
func keySequence(path any) ([]any, bool) {
	switch p := path.(type) {
	case []any:
		return p, true
	case []string:
		keys := make([]any, len(p))
		for i, s := range p {
			keys[i] = s
		}
		return keys, true
	case string:
		return nil, false
	}
	rv := reflect.ValueOf(path)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, false
	}
	keys := make([]any, rv.Len())
	for i := range keys {
		keys[i] = rv.Index(i).Interface()
	}
	return keys, true
}

// lookup resolves one key against one container level. It reports
// ok=false when current is nil, is not a container, or has no own
// property for the key. Decoded documents hit the concrete cases;
// arbitrary typed containers fall back to reflection.
func lookup(current any, key any) (any, bool) {
	if current == nil {
		return nil, false
	}
	switch c := current.(type) {
	case map[string]any:
		v, ok := c[toKey(key)]
		return v, ok
	case []any:
		idx, ok := toIndex(key)
		if !ok || idx >= len(c) {
			return nil, false
		}
		return c[idx], true
	case Sequence:
		idx, ok := toIndex(key)
		if !ok {
			return nil, false
		}
		return c.Index(idx)
	}
	return reflectLookup(current, key)
}

func reflectLookup(current any, key any) (any, bool) {
	rv := reflect.ValueOf(current)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		return mapLookup(rv, key)
	case reflect.Slice, reflect.Array:
		idx, ok := toIndex(key)
		if !ok || idx >= rv.Len() {
			return nil, false
		}
		return rv.Index(idx).Interface(), true
	case reflect.Struct:
		f := rv.FieldByName(toKey(key))
		if !f.IsValid() || !f.CanInterface() {
			return nil, false
		}
		return f.Interface(), true
	}
	return nil, false
}

// mapLookup tries the candidate forms of key against a typed map: the
// raw key, its machine-int index form, and its canonical string form.
func mapLookup(rv reflect.Value, key any) (any, bool) {
	kt := rv.Type().Key()
	try := func(cand any) (any, bool) {
		cv := reflect.ValueOf(cand)
		if !cv.IsValid() {
			return nil, false
		}
		cv, ok := convertKey(cv, kt)
		if !ok {
			return nil, false
		}
		v := rv.MapIndex(cv)
		if !v.IsValid() {
			return nil, false
		}
		return v.Interface(), true
	}
	if v, ok := try(key); ok {
		return v, true
	}
	if idx, ok := toIndex(key); ok {
		if v, ok := try(idx); ok {
			return v, true
		}
	}
	return try(toKey(key))
}

// convertKey adapts a candidate key to the map's key type. Conversions
// cross only like kinds: numeric to numeric, string to string. An
// int-to-string conversion would produce a UTF-8 rune, not a decimal
// key, so it is refused.
func convertKey(cv reflect.Value, kt reflect.Type) (reflect.Value, bool) {
	ct := cv.Type()
	if ct.AssignableTo(kt) {
		return cv, true
	}
	if isNumericKind(ct.Kind()) && isNumericKind(kt.Kind()) && ct.ConvertibleTo(kt) {
		return cv.Convert(kt), true
	}
	if ct.Kind() == reflect.String && kt.Kind() == reflect.String {
		return cv.Convert(kt), true
	}
	return reflect.Value{}, false
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
