package propath

import "testing"

// TestHasMaps tests existence on record-like objects
func TestHasMaps(t *testing.T) {
	if Has(map[string]any{}, "a") {
		t.Error("expected a to be missing from empty map")
	}
	// An own property whose value is nil still exists.
	if !Has(map[string]any{"a": nil}, "a") {
		t.Error("expected nil-valued property to exist")
	}
	obj := map[string]any{
		"a": map[string]any{"b": map[string]any{"c": 3}},
	}
	if !Has(obj, "a.b.c") {
		t.Error("expected a.b.c to exist")
	}
	if Has(obj, "a.b.d") {
		t.Error("expected a.b.d to be missing")
	}
	if Has(obj, "a.b.c.d") {
		t.Error("expected a.b.c.d to be missing beneath a scalar")
	}
}

// TestHasSequences tests index existence on dense sequences
func TestHasSequences(t *testing.T) {
	arr := []any{1, 2, 3}
	if !Has(arr, 2) {
		t.Error("expected index 2 to exist")
	}
	if Has(arr, 5) {
		t.Error("expected index 5 to be out of range")
	}
	if Has([]any{}, 0) {
		t.Error("expected index 0 to be missing from an empty sequence")
	}
	if !Has(arr, "1") {
		t.Error("expected string index to resolve")
	}
	if Has(arr, "01") {
		t.Error("expected leading-zero index string to miss")
	}
	if Has(arr, -1) {
		t.Error("expected negative index to miss")
	}

	// Typed slices resolve through reflection.
	if !Has([]int{10, 20}, 1) {
		t.Error("expected index 1 of []int to exist")
	}
	if Has([]int{10, 20}, 2) {
		t.Error("expected index 2 of []int to be out of range")
	}
}

// TestHasSparse tests the sparse-index exception
func TestHasSparse(t *testing.T) {
	// Analog of [, , 3]: declared length 3, only slot 2 populated.
	s := NewSparse(3).Set(2, 3)

	if !Has(s, 1) {
		t.Error("expected hole inside declared bounds to exist")
	}
	if !Has(s, 2) {
		t.Error("expected populated slot to exist")
	}
	if Has(s, 5) {
		t.Error("expected index beyond declared bounds to be missing")
	}
	// Chaining past a hole must still fail: the walk continues from
	// nil and nothing is an own property of nil.
	if Has(s, []any{1, "x"}) {
		t.Error("expected path through a hole to be missing")
	}
	if !Has(map[string]any{"s": s}, "s[1]") {
		t.Error("expected nested sparse hole inside bounds to exist")
	}
}

// TestHasArguments tests sequence-wrapper traversal
func TestHasArguments(t *testing.T) {
	args := Args("x", "y")
	if !Has(args, 1) {
		t.Error("expected index 1 of arguments to exist")
	}
	if Has(args, 2) {
		t.Error("expected index 2 of arguments to be out of range")
	}
	if Has(args, "length") {
		t.Error("expected non-index key to miss on arguments")
	}
}

// TestHasFlatKeysWithDelimiters tests the direct-lookup-first policy
func TestHasFlatKeysWithDelimiters(t *testing.T) {
	flat := map[string]any{"a.b": 1}
	if !Has(flat, "a.b") {
		t.Error("expected flat key containing a dot to resolve directly")
	}
	deep := map[string]any{"a": map[string]any{"b": 1}}
	if !Has(deep, "a.b") {
		t.Error("expected a.b to resolve as a deep path")
	}
	// When the flat property exists, it wins over deep parsing.
	both := map[string]any{
		"a.b": 1,
		"a":   map[string]any{"b": 2},
	}
	if !Has(both, "a.b") {
		t.Error("expected a.b to resolve on an object carrying both forms")
	}
}

// TestHasEscapedFlatKeys tests escaped single-segment paths
func TestHasEscapedFlatKeys(t *testing.T) {
	m := map[string]any{"a.b": 1}
	p := JoinPath("a.b")
	if !Has(m, p) {
		t.Errorf("Has(m, %q) = false, want true", p)
	}
	if !Has(map[string]any{"x[0]": 1}, JoinPath("x[0]")) {
		t.Error("expected escaped bracket key to resolve")
	}
	if Has(map[string]any{}, p) {
		t.Errorf("Has(empty, %q) = true, want false", p)
	}
	// A key that literally contains a backslash still wins through
	// direct lookup before any tokenization happens.
	lit := map[string]any{`a\.b`: 2}
	if !Has(lit, `a\.b`) {
		t.Error("expected literal-backslash key to resolve directly")
	}
}

// TestHasTypedKeySlices tests typed sequences as paths
func TestHasTypedKeySlices(t *testing.T) {
	arr := []any{"x", []any{"y"}}
	if !Has(arr, []int{1, 0}) {
		t.Error("expected []int path to resolve as a key sequence")
	}
	if Has(arr, []int{2}) {
		t.Error("expected out-of-range []int path to miss")
	}
	if !Has(map[string]any{"a": []any{5}}, [2]any{"a", 0}) {
		t.Error("expected array-form path to resolve as a key sequence")
	}
}

// TestHasStructs tests field existence via reflection
func TestHasStructs(t *testing.T) {
	type profile struct {
		Name string
		age  int
	}
	p := profile{Name: "ada", age: 36}
	if !Has(p, "Name") {
		t.Error("expected exported field to exist")
	}
	if Has(p, "age") {
		t.Error("expected unexported field to be unreachable")
	}
	if Has(p, "Missing") {
		t.Error("expected absent field to be missing")
	}
	if !Has(&p, "Name") {
		t.Error("expected field to exist through a pointer")
	}

	nested := map[string]any{"user": p}
	if !Has(nested, "user.Name") {
		t.Error("expected struct field beneath a map to exist")
	}
}

// TestHasPathForms tests agreement between the three path forms
func TestHasPathForms(t *testing.T) {
	obj := map[string]any{
		"users": []any{
			map[string]any{"name": "ada"},
		},
	}
	paths := []string{"users[0].name", "users.0.name", "users[0]['name']"}
	for _, p := range paths {
		if !Has(obj, p) {
			t.Errorf("Has(obj, %q) = false, want true", p)
			continue
		}
		keys, err := ToPath(p)
		if err != nil {
			t.Errorf("ToPath(%q) returned error: %v", p, err)
			continue
		}
		if !Has(obj, keys) {
			t.Errorf("Has(obj, ToPath(%q)) = false, want true", p)
		}
	}
}

// TestHasNeverPanics tests totality over odd inputs
func TestHasNeverPanics(t *testing.T) {
	inputs := []struct {
		object any
		path   any
	}{
		{nil, "a"},
		{5, "a"},
		{"scalar", "a.b"},
		{map[string]any{}, []any{}},
		{map[string]any{}, nil},
		{map[string]any{"a": 1}, "a["},
		{map[string]any{"a": 1}, 3.7},
		{(*Sparse)(nil), 0},
	}
	for _, in := range inputs {
		if Has(in.object, in.path) {
			t.Errorf("Has(%#v, %#v) = true, want false", in.object, in.path)
		}
	}
}

// TestHasTypedMaps tests key coercion against typed maps
func TestHasTypedMaps(t *testing.T) {
	if !Has(map[string]int{"n": 1}, "n") {
		t.Error("expected key of map[string]int to exist")
	}
	if !Has(map[int]string{2: "two"}, 2) {
		t.Error("expected int key to exist")
	}
	// A string index token reaches an int-keyed map.
	if !Has(map[int]string{2: "two"}, "2") {
		t.Error("expected string index token to reach int key")
	}
	if !Has(map[any]any{1: "one"}, 1) {
		t.Error("expected any-keyed map to resolve a raw key")
	}
	if Has(map[int]string{2: "two"}, "x") {
		t.Error("expected non-index key to miss on int-keyed map")
	}
}

func BenchmarkHas(b *testing.B) {
	obj := map[string]any{
		"users": []any{
			map[string]any{"profile": map[string]any{"email": "a@b.c"}},
		},
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !Has(obj, "users[0].profile.email") {
			b.Fatal("path unexpectedly missing")
		}
	}
}
