package propath

import "strings"

// EscapePathSegment escapes the characters that carry meaning in the
// path grammar so seg is treated as one literal property name. Useful
// when keys contain dots or brackets.
func EscapePathSegment(seg string) string {
	needsEscape := false
	for i := 0; i < len(seg); i++ {
		if shouldEscapePathChar(seg[i]) {
			needsEscape = true
			break
		}
	}
	if !needsEscape {
		return seg
	}

	var b strings.Builder
	b.Grow(len(seg) * 2)
	for i := 0; i < len(seg); i++ {
		c := seg[i]
		if shouldEscapePathChar(c) {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}

// JoinPath builds a parseable string path from literal keys: string
// keys become escaped dot segments, index keys become bracket
// segments. ToPath(JoinPath(keys...)) yields the keys back.
// Example: JoinPath("config", "foo.bar", 0) -> "config.foo\\.bar[0]".
func JoinPath(keys ...any) string {
	var b strings.Builder
	for i, key := range keys {
		s, isString := key.(string)
		if !isString && IsIndex(key) {
			b.WriteByte('[')
			b.WriteString(toKey(key))
			b.WriteByte(']')
			continue
		}
		if !isString {
			s = toKey(key)
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(EscapePathSegment(s))
	}
	return b.String()
}

func shouldEscapePathChar(c byte) bool {
	switch c {
	case '\\', '.', '[', ']':
		return true
	}
	return false
}
