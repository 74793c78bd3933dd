package propath

import "github.com/tidwall/pretty"

// Pretty reformats raw JSON with two-space indentation.
func Pretty(data []byte) []byte {
	return pretty.Pretty(data)
}

// Ugly strips insignificant whitespace from raw JSON.
func Ugly(data []byte) []byte {
	return pretty.Ugly(data)
}
