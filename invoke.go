package propath

import (
	"reflect"
	"strings"
)

// Invoke resolves path to a callable member of object and calls it
// with the member's immediate parent container as receiver. Elements
// of args that are []any are flattened one level, so a caller may pass
// either Invoke(o, p, 1, 2) or Invoke(o, p, []any{1, 2}).
//
// A nil object, an unresolvable path, or a non-callable member yields
// nil without error. Missing trailing parameters are zero-filled and
// surplus arguments are dropped, but a panic raised by the callee
// itself propagates unmodified. The callee's first return value is the
// result; a callee with no results yields nil.
func Invoke(object any, path any, args ...any) any {
	if object == nil {
		return nil
	}
	keys := invokePath(object, path)
	if len(keys) == 0 {
		return nil
	}
	parent := object
	if len(keys) > 1 {
		parent = Get(object, keys[:len(keys)-1])
	}
	if parent == nil {
		return nil
	}
	name := toKey(Last(keys))
	member, ok := lookup(parent, name)
	if !ok || member == nil {
		member = methodByName(parent, name)
		if member == nil {
			return nil
		}
	}
	return callFunc(member, flattenArgs(args))
}

// invokePath normalizes a path for invocation. A string that names a
// direct property of object stays a single key even when it contains
// delimiter characters; any other deep or escaped string is tokenized.
// Everything else is wrapped permissively as one raw key.
func invokePath(object any, path any) []any {
	if keys, ok := keySequence(path); ok {
		return keys
	}
	if p, ok := path.(string); ok {
		if _, ok := lookup(object, p); ok {
			return []any{p}
		}
		if !IsDeepKey(p) && !strings.ContainsRune(p, '\\') {
			return []any{p}
		}
		keys, err := ToPathCached(p)
		if err != nil {
			return nil
		}
		return keys
	}
	return []any{path}
}

// flattenArgs splices one level of []any argument lists.
func flattenArgs(args []any) []any {
	flat := make([]any, 0, len(args))
	for _, a := range args {
		if list, ok := a.([]any); ok {
			flat = append(flat, list...)
			continue
		}
		flat = append(flat, a)
	}
	return flat
}

// methodByName resolves a method named name on parent. Pointer-receiver
// methods are reachable from a value parent through an addressable
// copy.
func methodByName(parent any, name string) any {
	rv := reflect.ValueOf(parent)
	if !rv.IsValid() {
		return nil
	}
	m := rv.MethodByName(name)
	if !m.IsValid() && rv.Kind() != reflect.Pointer {
		pv := reflect.New(rv.Type())
		pv.Elem().Set(rv)
		m = pv.MethodByName(name)
	}
	if !m.IsValid() {
		return nil
	}
	return m.Interface()
}

// callFunc invokes fn with args adapted to its signature. Non-funcs
// yield nil.
func callFunc(fn any, args []any) any {
	rf := reflect.ValueOf(fn)
	if !rf.IsValid() || rf.Kind() != reflect.Func {
		return nil
	}
	out := rf.Call(buildArgs(rf.Type(), args))
	if len(out) == 0 {
		return nil
	}
	return out[0].Interface()
}

// buildArgs adapts args to the function's parameter list: missing
// trailing parameters become zero values, surplus arguments feed the
// variadic tail or are dropped.
func buildArgs(rt reflect.Type, args []any) []reflect.Value {
	fixed := rt.NumIn()
	if rt.IsVariadic() {
		fixed--
	}
	in := make([]reflect.Value, 0, len(args))
	for i := 0; i < fixed; i++ {
		if i < len(args) {
			in = append(in, convertArg(args[i], rt.In(i)))
		} else {
			in = append(in, reflect.Zero(rt.In(i)))
		}
	}
	if rt.IsVariadic() {
		elem := rt.In(rt.NumIn() - 1).Elem()
		for i := fixed; i < len(args); i++ {
			in = append(in, convertArg(args[i], elem))
		}
	}
	return in
}

// convertArg adapts one argument to a parameter type, converting
// across numeric kinds. Incompatible values degrade to the zero value
// rather than panicking inside reflect.Call.
func convertArg(v any, t reflect.Type) reflect.Value {
	if v == nil {
		return reflect.Zero(t)
	}
	rv := reflect.ValueOf(v)
	if rv.Type().AssignableTo(t) {
		return rv
	}
	if isNumericKind(rv.Kind()) && isNumericKind(t.Kind()) && rv.Type().ConvertibleTo(t) {
		return rv.Convert(t)
	}
	return reflect.Zero(t)
}
