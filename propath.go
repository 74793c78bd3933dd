// Package propath resolves property paths against nested Go values.
//
// A path addresses a value inside maps, slices, structs and sparse
// sequences either as a single key, an ordered key sequence, or a
// dotted/bracketed string such as "users[0].name" or "a['b.c']".
// String paths are tokenized once by ToPath; Has, Get and Invoke all
// operate on the resulting key sequence. The same grammar can be
// applied to serialized JSON documents through GetRaw, HasRaw and
// SetRaw without unmarshalling.
package propath

import (
	"errors"
	"fmt"
)

// Error definitions for path operations
var (
	ErrInvalidPath = errors.New("invalid path syntax")
)

// A ParseError reports malformed path syntax together with the byte
// offset of the offending character.
type ParseError struct {
	Path string
	Pos  int
	Msg  string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid path %q at offset %d: %s", e.Path, e.Pos, e.Msg)
}

// Unwrap ties every ParseError to ErrInvalidPath so callers can test
// with errors.Is without inspecting the concrete type.
func (e *ParseError) Unwrap() error { return ErrInvalidPath }
