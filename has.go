package propath

import "reflect"

// Has reports whether path resolves to an existing property on object,
// in any of the three path forms: single key, ordered key sequence, or
// string notation. It never panics; any failure to resolve, including
// malformed string syntax, reports false.
//
// A property whose value is nil still exists; an index into a sparse
// sequence exists while it lies inside the declared length, even when
// the slot itself is a hole.
func Has(object any, path any) bool {
	keys, err := castPath(object, path)
	if err != nil || len(keys) == 0 {
		return false
	}
	current := object
	for _, key := range keys {
		v, ok := lookup(current, key)
		if !ok {
			// A hole inside a sequence's declared bounds satisfies
			// this step; chaining past it still fails, because the
			// walk continues from nil.
			if !inSparseBounds(current, key) {
				return false
			}
			v = nil
		}
		current = v
	}
	return true
}

// inSparseBounds reports whether key is an in-range index of an
// ordered sequence or sequence-wrapper, substituting bounds-checking
// for own-property-checking at one existence step.
func inSparseBounds(current any, key any) bool {
	if current == nil || !IsIndex(key) {
		return false
	}
	idx, ok := toIndex(key)
	if !ok {
		return false
	}
	if seq, isSeq := current.(Sequence); isSeq {
		return idx < seq.Len()
	}
	rv := reflect.ValueOf(current)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return idx < rv.Len()
	}
	return false
}
