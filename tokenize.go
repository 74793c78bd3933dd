package propath

import (
	"strconv"
	"strings"
	"sync"
)

// IsDeepKey reports whether path contains multi-segment syntax: an
// unescaped '.' separator or a bracket segment. Flat keys such as "a"
// or "123" are not deep; "a.b", "a[0]" and "a['b.c']" are.
func IsDeepKey(path string) bool {
	for i := 0; i < len(path); i++ {
		switch path[i] {
		case '\\':
			i++ // escaped byte is literal
		case '.', '[':
			return true
		}
	}
	return false
}

// ToPath parses a string path left to right into its ordered key
// sequence. Plain segments are returned as strings; unquoted bracket
// content that passes IsIndex is returned as an int; quoted bracket
// content is returned literally, so delimiter characters can appear in
// a key. A backslash makes the following byte literal inside a plain
// segment. Leading and consecutive dots produce no empty keys. An
// unterminated bracket or quote fails with a *ParseError.
func ToPath(path string) ([]any, error) {
	keys := make([]any, 0, 4)
	var seg strings.Builder
	flush := func() {
		if seg.Len() > 0 {
			keys = append(keys, seg.String())
			seg.Reset()
		}
	}

	i := 0
	for i < len(path) {
		switch path[i] {
		case '.':
			flush()
			i++
		case '[':
			flush()
			open := i
			i++
			if i >= len(path) {
				return nil, &ParseError{Path: path, Pos: open, Msg: "unterminated '['"}
			}
			if q := path[i]; q == '\'' || q == '"' {
				lit, next, ok := scanQuoted(path, i)
				if !ok {
					return nil, &ParseError{Path: path, Pos: i, Msg: "unterminated quoted segment"}
				}
				i = next
				if i >= len(path) || path[i] != ']' {
					return nil, &ParseError{Path: path, Pos: open, Msg: "unterminated '['"}
				}
				i++
				keys = append(keys, lit)
				continue
			}
			end := strings.IndexByte(path[i:], ']')
			if end < 0 {
				return nil, &ParseError{Path: path, Pos: open, Msg: "unterminated '['"}
			}
			content := path[i : i+end]
			i += end + 1
			if isIndexString(content) {
				n, _ := strconv.ParseInt(content, 10, 64)
				keys = append(keys, int(n))
			} else {
				keys = append(keys, content)
			}
		case '\\':
			if i+1 < len(path) {
				seg.WriteByte(path[i+1])
				i += 2
			} else {
				seg.WriteByte('\\')
				i++
			}
		default:
			seg.WriteByte(path[i])
			i++
		}
	}
	flush()
	return keys, nil
}

// scanQuoted consumes a quoted bracket segment starting at the opening
// quote. It returns the literal content, the offset just past the
// closing quote, and whether the quote was closed. A backslash escapes
// the next byte, so the quote character itself can appear in a key.
func scanQuoted(path string, start int) (string, int, bool) {
	q := path[start]
	var lit strings.Builder
	i := start + 1
	for i < len(path) {
		c := path[i]
		if c == '\\' && i+1 < len(path) {
			lit.WriteByte(path[i+1])
			i += 2
			continue
		}
		if c == q {
			return lit.String(), i + 1, true
		}
		lit.WriteByte(c)
		i++
	}
	return "", i, false
}

// tokenCache holds compiled key sequences for repeated string paths.
var tokenCache sync.Map // string -> []any

// ToPathCached is ToPath with a process-wide compiled-path cache. Use
// it for frequently repeated paths; it is safe for concurrent use.
// Callers must not mutate the returned slice.
func ToPathCached(path string) ([]any, error) {
	if cached, ok := tokenCache.Load(path); ok {
		return cached.([]any), nil
	}
	keys, err := ToPath(path)
	if err != nil {
		return nil, err
	}
	tokenCache.Store(path, keys)
	return keys, nil
}
