package dstack

// Stack is a single-ended stack arena: an Arena with the top boundary pinned
// at the capacity, leaving only the bottom-side operations. Use it when one
// allocation lifetime class is enough; use Arena to pack two into the same
// buffer. Not goroutine-safe.
//
// The zero Stack, like the zero Arena, is empty and inert.
type Stack struct {
	a Arena
}

// NewStack creates a stack arena over a borrowed buffer.
func NewStack(buf []byte) *Stack {
	return &Stack{a: Arena{buf: buffer{data: buf}, top: len(buf)}}
}

// NewStackWithCapacity creates a stack arena over an owned buffer. The
// failure contract matches NewArenaWithCapacity: the returned stack is inert
// but usable.
func NewStackWithCapacity(capacity int, opts ...Option) (*Stack, error) {
	a, err := NewArenaWithCapacity(capacity, opts...)
	if err != nil {
		return &Stack{}, err
	}
	return &Stack{a: *a}, nil
}

// Alloc claims size bytes. Contract as Arena.AllocBottom.
func (s *Stack) Alloc(size int) []byte { return s.a.AllocBottom(size) }

// Mark returns a snapshot of the allocation boundary.
func (s *Stack) Mark() Marker { return s.a.BottomMark() }

// ResetToMark rolls the boundary back to an earlier Mark; invalid markers are
// ignored, as with Arena.ResetToBottomMark.
func (s *Stack) ResetToMark(m Marker) { s.a.ResetToBottomMark(m) }

// Clear frees all allocations at once.
func (s *Stack) Clear() { s.a.ClearBottom() }

// Pop frees the most recent size bytes, saturating at empty.
func (s *Stack) Pop(size int) { s.a.PopBottom(size) }

// Peek returns the most recent size bytes without freeing them, or nil when
// fewer than size bytes are allocated.
func (s *Stack) Peek(size int) []byte { return s.a.PeekBottom(size) }

// Available returns the number of free bytes.
func (s *Stack) Available() int { return s.a.Available() }

// Used returns the number of allocated bytes.
func (s *Stack) Used() int { return s.a.Used() }

// Capacity returns the total size of the backing buffer in bytes.
func (s *Stack) Capacity() int { return s.a.Capacity() }

// Release drops the backing buffer as Arena.Release does. Idempotent; the
// stack stays usable as an inert arena.
func (s *Stack) Release() { s.a.Release() }
