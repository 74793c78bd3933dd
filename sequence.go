package propath

// Sequence is implemented by array-like containers that are not native
// slices: captured argument lists and sparse sequences. Len is the
// declared length, which may exceed the number of populated slots;
// Index reports the value at i and whether that slot is populated.
type Sequence interface {
	Len() int
	Index(i int) (any, bool)
}

// Sparse is an ordered sequence whose declared length may exceed the
// number of populated slots. The zero value is an empty sequence.
type Sparse struct {
	length int
	slots  map[int]any
}

// NewSparse returns a sparse sequence with the given declared length
// and no populated slots.
func NewSparse(length int) *Sparse {
	if length < 0 {
		length = 0
	}
	return &Sparse{length: length}
}

// Set populates slot i, growing the declared length when i lies beyond
// it. It returns s so construction can be chained.
func (s *Sparse) Set(i int, v any) *Sparse {
	if i < 0 {
		return s
	}
	if s.slots == nil {
		s.slots = make(map[int]any)
	}
	s.slots[i] = v
	if i >= s.length {
		s.length = i + 1
	}
	return s
}

// Len returns the declared length. A nil sequence is empty.
func (s *Sparse) Len() int {
	if s == nil {
		return 0
	}
	return s.length
}

// Index reports the value at slot i. Holes and out-of-range indices
// report ok=false.
func (s *Sparse) Index(i int) (any, bool) {
	if s == nil {
		return nil, false
	}
	v, ok := s.slots[i]
	return v, ok
}

// arguments is a captured argument list: array-like, never sparse.
type arguments []any

func (a arguments) Len() int { return len(a) }

func (a arguments) Index(i int) (any, bool) {
	if i < 0 || i >= len(a) {
		return nil, false
	}
	return a[i], true
}

// Args captures a list of values as an arguments-like Sequence.
func Args(values ...any) Sequence { return arguments(values) }

// IsArguments reports whether v is an argument list captured by Args,
// as opposed to a true sequence type such as a slice or Sparse.
func IsArguments(v any) bool {
	_, ok := v.(arguments)
	return ok
}

// Last returns the final element of seq, or nil when seq is empty.
func Last(seq []any) any {
	if len(seq) == 0 {
		return nil
	}
	return seq[len(seq)-1]
}
