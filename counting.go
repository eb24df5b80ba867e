package dstack

import "go.uber.org/atomic"

// CountingAllocator wraps a source and counts the buffer traffic through it.
// Counters are atomic, so one CountingAllocator can sit under arenas owned by
// different goroutines; wrap the shared source once and read Stats from
// anywhere.
type CountingAllocator struct {
	parent Allocator

	allocs   atomic.Int64
	frees    atomic.Int64
	failures atomic.Int64
	inUse    atomic.Int64
	peak     atomic.Int64
}

// AllocatorStats is a snapshot of CountingAllocator counters. InUse and Peak
// are in bytes and reflect buffer lengths as returned by the parent source.
type AllocatorStats struct {
	Allocs   int64 // Buffers handed out
	Frees    int64 // Buffers taken back
	Failures int64 // Failed Alloc calls
	InUse    int64 // Bytes currently out
	Peak     int64 // High-water mark of InUse
}

// NewCountingAllocator wraps parent, or DefaultAllocator when parent is nil.
func NewCountingAllocator(parent Allocator) *CountingAllocator {
	if parent == nil {
		parent = DefaultAllocator
	}
	return &CountingAllocator{parent: parent}
}

func (c *CountingAllocator) Alloc(size int) ([]byte, error) {
	buf, err := c.parent.Alloc(size)
	if err != nil {
		c.failures.Inc()
		return nil, err
	}
	c.allocs.Inc()
	used := c.inUse.Add(int64(len(buf)))
	for {
		peak := c.peak.Load()
		if used <= peak || c.peak.CompareAndSwap(peak, used) {
			return buf, nil
		}
	}
}

func (c *CountingAllocator) Free(buf []byte) {
	c.frees.Inc()
	c.inUse.Sub(int64(len(buf)))
	c.parent.Free(buf)
}

// Stats returns a snapshot of the counters. The fields are read one by one,
// so a snapshot taken during concurrent traffic can be momentarily skewed
// between counters.
func (c *CountingAllocator) Stats() AllocatorStats {
	return AllocatorStats{
		Allocs:   c.allocs.Load(),
		Frees:    c.frees.Load(),
		Failures: c.failures.Load(),
		InUse:    c.inUse.Load(),
		Peak:     c.peak.Load(),
	}
}
