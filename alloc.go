package dstack

import (
	"math"
	"runtime"
	"unsafe"
)

// Typed sugar over the byte operations. Each helper allocates
// unsafe.Sizeof(T) bytes (times the element count for slices) and casts; the
// byte core stays untouched and keeps its exact-size semantics. No implicit
// alignment happens here: offsets follow allocation sizes, so keep a side to
// one element type when T needs natural alignment or iteration.

// New allocates a zeroed T in the stack arena. Nil when the arena cannot fit
// it.
func New[T any](s *Stack) *T {
	return newIn[T](s.Alloc)
}

// MakeSlice allocates a zeroed []T of n elements in the stack arena, with
// len == cap == n. Nil when n <= 0 or the arena cannot fit it.
func MakeSlice[T any](s *Stack, n int) []T {
	return makeIn[T](s.Alloc, n)
}

// NewBottom allocates a zeroed T on the bottom side of the arena.
func NewBottom[T any](a *Arena) *T {
	return newIn[T](a.AllocBottom)
}

// NewTop allocates a zeroed T on the top side of the arena.
func NewTop[T any](a *Arena) *T {
	return newIn[T](a.AllocTop)
}

// MakeSliceBottom allocates a zeroed []T of n elements on the bottom side.
func MakeSliceBottom[T any](a *Arena, n int) []T {
	return makeIn[T](a.AllocBottom, n)
}

// MakeSliceTop allocates a zeroed []T of n elements on the top side. The
// slice covers one contiguous top-side block; its elements read low to high
// like any Go slice.
func MakeSliceTop[T any](a *Arena, n int) []T {
	return makeIn[T](a.AllocTop, n)
}

// PtrAndKeepAlive returns p and calls runtime.KeepAlive on the arena or stack
// it came from. Typed pointers no longer carry a reference the garbage
// collector can see once the []byte header is gone, so hand the last use of
// an owned arena through this when only typed pointers remain live.
func PtrAndKeepAlive[T any](owner any, p *T) *T {
	runtime.KeepAlive(owner)
	return p
}

func newIn[T any](alloc func(int) []byte) *T {
	var zero T
	b := alloc(int(unsafe.Sizeof(zero)))
	if b == nil {
		return nil
	}
	clear(b)
	return (*T)(unsafe.Pointer(unsafe.SliceData(b)))
}

func makeIn[T any](alloc func(int) []byte, n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size > 0 && n > math.MaxInt/size {
		return nil
	}
	b := alloc(size * n)
	if b == nil {
		return nil
	}
	clear(b)
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n)
}
