package dstack

import (
	"sync"

	"github.com/eapache/queue"
)

const defaultPoolLimit = 8

// PoolAllocator recycles released buffers through a bounded FIFO free list,
// so short-lived arenas (one per request, one per frame) stop paying for a
// fresh buffer each time. Misses and overflow fall through to the parent
// source. Safe for concurrent use; the arenas drawing from it still have
// single owners.
type PoolAllocator struct {
	mu     sync.Mutex
	free   *queue.Queue // of []byte
	parent Allocator
	limit  int
}

// NewPoolAllocator creates a pool over parent, or DefaultAllocator when
// parent is nil, keeping at most limit free buffers. A limit <= 0 means the
// default of 8.
func NewPoolAllocator(parent Allocator, limit int) *PoolAllocator {
	if parent == nil {
		parent = DefaultAllocator
	}
	if limit <= 0 {
		limit = defaultPoolLimit
	}
	return &PoolAllocator{free: queue.New(), parent: parent, limit: limit}
}

// Alloc returns the oldest free buffer that fits, or asks the parent for a
// new one. Reused buffers keep their full original length, which may exceed
// size, and their previous contents.
func (p *PoolAllocator) Alloc(size int) ([]byte, error) {
	if size >= 0 {
		if buf, ok := p.take(size); ok {
			return buf, nil
		}
	}
	return p.parent.Alloc(size)
}

// take scans the free list oldest-first for a buffer of at least size bytes,
// rotating rejects to the back to keep the scan bounded.
func (p *PoolAllocator) take(size int) ([]byte, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := p.free.Length(); i > 0; i-- {
		buf := p.free.Remove().([]byte)
		if len(buf) >= size {
			return buf, true
		}
		p.free.Add(buf)
	}
	return nil, false
}

// Free queues buf for reuse, or passes it to the parent when the free list is
// at its limit. Nil buffers are ignored.
func (p *PoolAllocator) Free(buf []byte) {
	if buf == nil {
		return
	}
	p.mu.Lock()
	if p.free.Length() < p.limit {
		p.free.Add(buf)
		buf = nil
	}
	p.mu.Unlock()
	if buf != nil {
		p.parent.Free(buf)
	}
}

// Drain hands every queued buffer back to the parent source. Call it when the
// pool goes out of service and the parent needs its memory back, for parents
// with real Free semantics.
func (p *PoolAllocator) Drain() {
	p.mu.Lock()
	bufs := make([][]byte, 0, p.free.Length())
	for p.free.Length() > 0 {
		bufs = append(bufs, p.free.Remove().([]byte))
	}
	p.mu.Unlock()
	for _, buf := range bufs {
		p.parent.Free(buf)
	}
}

// FreeLen returns the number of buffers currently queued for reuse.
func (p *PoolAllocator) FreeLen() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.free.Length()
}
