package propath

import (
	"encoding/json"
	"testing"
)

// TestFromJSON tests decoding into traversable structures
func TestFromJSON(t *testing.T) {
	doc, err := FromJSON([]byte(`{"users":[{"name":"ada","id":9007199254740993}]}`))
	if err != nil {
		t.Fatalf("FromJSON returned error: %v", err)
	}

	if got := Get(doc, "users[0].name"); got != "ada" {
		t.Errorf("Get(users[0].name) = %v, want ada", got)
	}
	if !Has(doc, "users[0].id") {
		t.Error("expected users[0].id to exist")
	}
	// Large integers survive as json.Number.
	if got := Get(doc, "users[0].id"); got != json.Number("9007199254740993") {
		t.Errorf("Get(users[0].id) = %#v, want json.Number", got)
	}

	if _, err := FromJSON([]byte(`{`)); err == nil {
		t.Error("expected error for truncated JSON")
	}
}

// TestFromYAML tests decoding YAML documents
func TestFromYAML(t *testing.T) {
	doc, err := FromYAML([]byte("server:\n  ports:\n    - 80\n    - 443\n"))
	if err != nil {
		t.Fatalf("FromYAML returned error: %v", err)
	}

	if !Has(doc, "server.ports[1]") {
		t.Error("expected server.ports[1] to exist")
	}
	if Has(doc, "server.ports[2]") {
		t.Error("expected server.ports[2] to be out of range")
	}
	if got := Get(doc, "server.ports[0]"); got == nil {
		t.Error("expected server.ports[0] to resolve")
	}

	if _, err := FromYAML([]byte("a: [1,\n")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
