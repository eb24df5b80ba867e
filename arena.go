package dstack

// Arena is a double-ended stack arena: one contiguous region served from both
// ends at once. Bottom allocations grow upward from offset 0, top allocations
// grow downward from the capacity, and the two meet in the middle when the
// arena is full. Not goroutine-safe; an arena has a single owner.
//
// The zero Arena is empty and inert: every operation is safe, allocations
// fail, clears and Release do nothing.
type Arena struct {
	buf    buffer
	bottom int
	top    int
}

// Marker is an opaque snapshot of one arena boundary, taken with BottomMark or
// TopMark and consumed by the matching ResetTo call. Markers are only
// meaningful on the arena they came from.
type Marker int

// NewArena creates an arena over buf. The buffer is borrowed: the caller keeps
// ownership and Release never frees it.
func NewArena(buf []byte) *Arena {
	return &Arena{buf: buffer{data: buf}, top: len(buf)}
}

// NewArenaWithCapacity creates an arena over a fresh buffer of the given size,
// obtained from DefaultAllocator unless WithAllocator overrides the source.
// The buffer is owned: Release returns it to the source. The source may hand
// back a larger region than requested (page-granular sources do); the arena
// adopts the full returned length as its capacity.
//
// On failure the returned arena is empty and inert but still safe to use and
// to Release, so callers may treat the error as advisory.
func NewArenaWithCapacity(capacity int, opts ...Option) (*Arena, error) {
	buf, err := newOwnedBuffer(capacity, opts)
	if err != nil {
		return &Arena{}, err
	}
	return &Arena{buf: buf, top: len(buf.data)}, nil
}

// AllocBottom claims size bytes from the low end of the free region and
// returns them as a slice with len == cap == size. It returns nil when the
// free region is smaller than size or size is negative; a failed request
// leaves the arena untouched. Size zero succeeds with an empty, non-nil slice
// and does not move the boundary. The returned bytes may hold stale contents
// from earlier use.
func (a *Arena) AllocBottom(size int) []byte {
	if size < 0 || size > a.top-a.bottom {
		return nil
	}
	p := a.buf.data[a.bottom : a.bottom+size : a.bottom+size]
	a.bottom += size
	return p
}

// AllocTop claims size bytes from the high end of the free region. Same
// contract as AllocBottom, mirrored: the boundary retreats downward and the
// returned slice covers the bytes just above it.
func (a *Arena) AllocTop(size int) []byte {
	if size < 0 || size > a.top-a.bottom {
		return nil
	}
	a.top -= size
	return a.buf.data[a.top : a.top+size : a.top+size]
}

// BottomMark returns a snapshot of the bottom boundary.
func (a *Arena) BottomMark() Marker { return Marker(a.bottom) }

// TopMark returns a snapshot of the top boundary.
func (a *Arena) TopMark() Marker { return Marker(a.top) }

// ResetToBottomMark rolls the bottom boundary back to an earlier BottomMark,
// freeing everything bottom-allocated since. Markers that would grow the used
// region or fall outside the buffer are ignored: resets only ever move a
// boundary toward its empty position.
func (a *Arena) ResetToBottomMark(m Marker) {
	if m >= 0 && int(m) <= a.bottom {
		a.bottom = int(m)
	}
}

// ResetToTopMark rolls the top boundary back to an earlier TopMark. Same
// policy as ResetToBottomMark, mirrored upward.
func (a *Arena) ResetToTopMark(m Marker) {
	if int(m) >= a.top && int(m) <= len(a.buf.data) {
		a.top = int(m)
	}
}

// ClearBottom frees all bottom allocations at once. The bytes are not zeroed.
func (a *Arena) ClearBottom() { a.bottom = 0 }

// ClearTop frees all top allocations at once. The bytes are not zeroed.
func (a *Arena) ClearTop() { a.top = len(a.buf.data) }

// PopBottom frees the most recent size bottom-allocated bytes, stopping at
// the empty position when size overshoots. Negative sizes do nothing.
func (a *Arena) PopBottom(size int) {
	if size <= 0 {
		return
	}
	if size > a.bottom {
		size = a.bottom
	}
	a.bottom -= size
}

// PopTop frees the most recent size top-allocated bytes, saturating at the
// empty position like PopBottom.
func (a *Arena) PopTop(size int) {
	if size <= 0 {
		return
	}
	if used := len(a.buf.data) - a.top; size > used {
		size = used
	}
	a.top += size
}

// PeekBottom returns the most recent size bottom-allocated bytes without
// freeing them, or nil when fewer than size bytes are bottom-allocated.
func (a *Arena) PeekBottom(size int) []byte {
	if size < 0 || size > a.bottom {
		return nil
	}
	return a.buf.data[a.bottom-size : a.bottom : a.bottom]
}

// PeekTop returns the most recent size top-allocated bytes without freeing
// them, or nil when fewer than size bytes are top-allocated.
func (a *Arena) PeekTop(size int) []byte {
	if size < 0 || size > len(a.buf.data)-a.top {
		return nil
	}
	return a.buf.data[a.top : a.top+size : a.top+size]
}

// Available returns the number of free bytes between the two boundaries.
func (a *Arena) Available() int { return a.top - a.bottom }

// Used returns the number of allocated bytes, both ends combined.
// Available() + Used() == Capacity() always holds.
func (a *Arena) Used() int { return a.bottom + (len(a.buf.data) - a.top) }

// Capacity returns the total size of the backing buffer in bytes.
func (a *Arena) Capacity() int { return len(a.buf.data) }

// Release drops the backing buffer, returning it to its source if the arena
// owns it, and leaves the arena empty and inert. Release is idempotent, and a
// released arena remains safe to use: allocations fail, everything else is a
// no-op. Slices handed out earlier must not be used after Release.
func (a *Arena) Release() {
	a.buf.release()
	a.bottom, a.top = 0, 0
}
