package dstack

import (
	"iter"
	"unsafe"
)

// Iteration views: restartable sequences of *T striding over one allocated
// region. A view snapshots the boundary when it is created and yields
// pointers into live arena memory, so elements can be written in place.
// Allocating, popping, resetting or clearing on the viewed side after the
// view is created invalidates it; this is not checked. A trailing partial
// element (region size not a multiple of the stride) is skipped.

// IterBottom returns the bottom-side elements in allocation order, oldest
// first.
func IterBottom[T any](a *Arena) iter.Seq[*T] {
	base, n := bottomRegion[T](a)
	return forward(base, n)
}

// IterBottomReverse returns the bottom-side elements newest first.
func IterBottomReverse[T any](a *Arena) iter.Seq[*T] {
	base, n := bottomRegion[T](a)
	return backward(base, n)
}

// IterTop returns the top-side elements in allocation order, oldest first.
// Top allocations grow downward, so this walks from the capacity end toward
// the boundary.
func IterTop[T any](a *Arena) iter.Seq[*T] {
	base, n := topRegion[T](a)
	return backward(base, n)
}

// IterTopReverse returns the top-side elements newest first, walking upward
// from the boundary.
func IterTopReverse[T any](a *Arena) iter.Seq[*T] {
	base, n := topRegion[T](a)
	return forward(base, n)
}

// Iter returns the stack arena's elements in allocation order, oldest first.
func Iter[T any](s *Stack) iter.Seq[*T] {
	return IterBottom[T](&s.a)
}

// IterReverse returns the stack arena's elements newest first.
func IterReverse[T any](s *Stack) iter.Seq[*T] {
	return IterBottomReverse[T](&s.a)
}

// bottomRegion types the bytes [0, bottom): whole elements anchored at
// offset 0, the way they were pushed.
func bottomRegion[T any](a *Arena) (*T, int) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 || a.bottom < size {
		return nil, 0
	}
	n := a.bottom / size
	return (*T)(unsafe.Pointer(unsafe.SliceData(a.buf.data))), n
}

// topRegion types the bytes [top, cap): whole elements anchored at the
// capacity end, the way they were pushed. The returned base points at the
// lowest element, which is the newest.
func topRegion[T any](a *Arena) (*T, int) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	c := len(a.buf.data)
	if size == 0 || c-a.top < size {
		return nil, 0
	}
	n := (c - a.top) / size
	lo := c - n*size
	return (*T)(unsafe.Pointer(unsafe.SliceData(a.buf.data[lo:]))), n
}

func forward[T any](base *T, n int) iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := 0; i < n; i++ {
			if !yield(elemAt(base, i)) {
				return
			}
		}
	}
}

func backward[T any](base *T, n int) iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := n - 1; i >= 0; i-- {
			if !yield(elemAt(base, i)) {
				return
			}
		}
	}
}

func elemAt[T any](base *T, i int) *T {
	return (*T)(unsafe.Add(unsafe.Pointer(base), uintptr(i)*unsafe.Sizeof(*base)))
}
