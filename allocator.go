package dstack

import "github.com/cockroachdb/errors"

// Allocator is the source of backing memory for owned arenas. Alloc returns a
// buffer of at least size bytes; it may return a longer one (page-granular
// sources round up) and the arena adopts whatever length comes back. Free
// receives exactly the slice a previous Alloc returned, so a source may use
// the slice pointer and length to identify the region.
//
// Arenas call Free at most once per buffer, from Release. Sources shared
// between arenas on different goroutines must be safe for concurrent use;
// HeapAllocator, PageAllocator, PoolAllocator and CountingAllocator all are.
type Allocator interface {
	Alloc(size int) ([]byte, error)
	Free(buf []byte)
}

// HeapAllocator sources buffers from the Go heap. Free is a no-op; the
// garbage collector reclaims a buffer once the arena drops it.
type HeapAllocator struct{}

// Alloc returns a zeroed buffer of exactly size bytes.
func (HeapAllocator) Alloc(size int) ([]byte, error) {
	if size < 0 {
		return nil, errors.Newf("dstack: negative buffer size %d", size)
	}
	return make([]byte, size), nil
}

// Free does nothing.
func (HeapAllocator) Free([]byte) {}

// FuncAllocator adapts a pair of functions to the Allocator interface, for
// hosts that bring their own memory system. A nil FreeFunc is allowed; a nil
// AllocFunc makes every Alloc fail.
type FuncAllocator struct {
	AllocFunc func(size int) ([]byte, error)
	FreeFunc  func(buf []byte)
}

func (f FuncAllocator) Alloc(size int) ([]byte, error) {
	if f.AllocFunc == nil {
		return nil, errors.New("dstack: FuncAllocator has no AllocFunc")
	}
	return f.AllocFunc(size)
}

func (f FuncAllocator) Free(buf []byte) {
	if f.FreeFunc != nil {
		f.FreeFunc(buf)
	}
}

// DefaultAllocator is the source owned arenas use unless WithAllocator
// overrides it.
var DefaultAllocator Allocator = HeapAllocator{}

type config struct {
	src Allocator
}

// Option configures owned-arena construction in NewArenaWithCapacity and
// NewStackWithCapacity.
type Option func(*config)

// WithAllocator selects the backing-memory source for an owned arena.
func WithAllocator(src Allocator) Option {
	return func(c *config) { c.src = src }
}
