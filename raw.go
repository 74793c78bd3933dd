package propath

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// GetRaw resolves a string path against raw JSON without
// unmarshalling. The path uses the same grammar as ToPath, so quoted
// bracket segments address keys containing delimiter characters.
func GetRaw(data []byte, path string) (gjson.Result, error) {
	raw, err := toRawPath(path)
	if err != nil {
		return gjson.Result{}, err
	}
	return gjson.GetBytes(data, raw), nil
}

// HasRaw reports whether path resolves to an existing value in raw
// JSON. Malformed paths report false, matching Has.
func HasRaw(data []byte, path string) bool {
	res, err := GetRaw(data, path)
	return err == nil && res.Exists()
}

// SetRaw writes value at path in raw JSON and returns the updated
// document. Missing intermediate containers are created; index tokens
// produce arrays.
func SetRaw(data []byte, path string, value any) ([]byte, error) {
	raw, err := toRawPath(path)
	if err != nil {
		return nil, err
	}
	return sjson.SetBytes(data, raw, value)
}

// toRawPath converts a propath string into tidwall path syntax by
// tokenizing it and re-joining the keys with tidwall's escaping rules.
func toRawPath(path string) (string, error) {
	keys, err := ToPathCached(path)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for i, key := range keys {
		if i > 0 {
			b.WriteByte('.')
		}
		if idx, ok := key.(int); ok {
			b.WriteString(strconv.Itoa(idx))
			continue
		}
		b.WriteString(escapeRawSegment(toKey(key)))
	}
	return b.String(), nil
}

// escapeRawSegment escapes the characters that carry meaning in
// tidwall path syntax: separators, wildcards, query and modifier
// markers, and the escape byte itself.
func escapeRawSegment(seg string) string {
	needsEscape := false
	for i := 0; i < len(seg); i++ {
		if shouldEscapeRawChar(seg[i]) {
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
		if shouldEscapeRawChar(c) {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}

func shouldEscapeRawChar(c byte) bool {
	switch c {
	case '\\', '.', '*', '?', '|', '#', '@':
		return true
	}
	return false
}
