//go:build unix

package dstack

import (
	"os"

	"github.com/cockroachdb/errors"
	"golang.org/x/sys/unix"
)

// PageAllocator sources buffers from anonymous memory mappings, keeping arena
// memory out of the Go heap entirely: no GC scanning, and Release returns the
// pages to the kernel immediately. Sizes are rounded up to whole pages and
// the arena adopts the rounded capacity. On platforms without mmap this type
// falls back to the heap.
type PageAllocator struct{}

// Alloc maps size bytes of zeroed, page-aligned memory, rounded up to the
// page size. Size zero gets an empty heap slice so zero-capacity arenas keep
// working.
func (PageAllocator) Alloc(size int) ([]byte, error) {
	if size < 0 {
		return nil, errors.Newf("dstack: negative buffer size %d", size)
	}
	if size == 0 {
		return make([]byte, 0), nil
	}
	page := os.Getpagesize()
	length := ((size + page - 1) / page) * page
	buf, err := unix.Mmap(-1, 0, length, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, errors.Wrapf(err, "dstack: mmap %d bytes", length)
	}
	return buf, nil
}

// Free unmaps a buffer previously returned by Alloc.
func (PageAllocator) Free(buf []byte) {
	if len(buf) == 0 {
		return
	}
	_ = unix.Munmap(buf)
}
