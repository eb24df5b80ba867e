//go:build !unix

package dstack

// PageAllocator sources buffers from anonymous memory mappings on unix
// platforms. Here it falls back to the Go heap so code using it still builds
// and runs everywhere.
type PageAllocator struct{}

// Alloc returns a zeroed heap buffer of exactly size bytes.
func (PageAllocator) Alloc(size int) ([]byte, error) {
	return HeapAllocator{}.Alloc(size)
}

// Free does nothing; the heap buffer is garbage collected.
func (PageAllocator) Free([]byte) {}
