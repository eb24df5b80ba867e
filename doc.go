// Package dstack implements stack arenas: linear (bump-pointer) allocators
// over one fixed-size contiguous buffer.
//
// # Overview
//
// Two flavors share the same mechanics. Stack serves allocations from one end
// of its buffer; Arena serves them from both ends at once, which packs two
// independent lifetime classes (say per-level assets from the bottom, per-frame
// scratch from the top) into a single region with no internal fragmentation.
// Allocation is pointer arithmetic, freeing is wholesale: pop the most recent
// bytes, roll back to a marker, or clear a whole side in O(1). This is useful
// for:
//
//   - Frame and request scratch memory with batch cleanup
//   - Parsers and loaders that build then discard in LIFO order
//   - Embedded or pooled contexts where the buffer is handed in from outside
//   - Reducing garbage collection pressure under predictable peak sizes
//
// There is no growth and no individual deallocation; when the ends meet,
// allocations fail by returning nil until something is freed.
//
// # Basic Usage
//
//	s := dstack.NewStack(make([]byte, 1<<20))
//	defer s.Release()
//
//	buf := s.Alloc(1024)          // raw bytes, nil when full
//	v := dstack.New[Vec3](s)      // typed, zeroed
//	vs := dstack.MakeSlice[Vec3](s, 16)
//
//	mark := s.Mark()
//	// ... temporary allocations ...
//	s.ResetToMark(mark)           // free them all at once
//	s.Clear()                     // or free everything
//
// # Double-Ended Usage
//
//	a := dstack.NewArena(make([]byte, 1<<20))
//	defer a.Release()
//
//	assets := a.AllocBottom(64 << 10) // lives until ClearBottom
//	for frame := 0; frame < n; frame++ {
//		mark := a.TopMark()
//		scratch := a.AllocTop(16 << 10) // lives until the reset below
//		_ = scratch
//		a.ResetToTopMark(mark)
//	}
//	_ = assets
//
// # Buffer Ownership
//
// NewArena and NewStack borrow a caller-supplied buffer and never free it.
// NewArenaWithCapacity and NewStackWithCapacity own a buffer obtained from an
// Allocator source (the Go heap by default, mmap pages with PageAllocator,
// recycled buffers with PoolAllocator) and return it to the source on the
// first Release. Either way Release is idempotent and leaves an empty, inert
// arena that is still safe to call.
//
// # Thread Safety
//
// Arenas are deliberately not goroutine-safe: each one has a single owner and
// no internal locking. Allocator sources are the sharing seam; the sources in
// this package are safe for concurrent use, so many per-goroutine arenas can
// draw from one PoolAllocator or report into one CountingAllocator.
//
// # Iteration
//
// When one side of an arena holds a homogeneous run of values, the Iter
// functions walk it in allocation order or reverse as an iter.Seq of
// pointers into live arena memory:
//
//	for p := range dstack.IterBottom[Particle](a) {
//		p.Tick()
//	}
//
// # Important Notes
//
//   - Allocated slices alias the arena buffer and die with it: do not use
//     them after Release, and do not append past their capacity.
//   - Pop, Reset and Clear do not zero freed bytes; New and MakeSlice zero
//     the bytes they hand out, the byte-level calls do not.
//   - The byte-level calls allocate exact sizes with no implicit alignment.
//     Mixed-size allocations can leave a later typed value misaligned; keep a
//     side to one element type when that matters.
//   - Markers belong to the arena and side they came from; stale markers are
//     ignored rather than honored.
//
// # Metrics and Monitoring
//
// Metrics snapshots expose capacity, per-side usage and utilization; they are
// slog.LogValuers and can stream themselves as JSON:
//
//	m := a.Metrics()
//	logger.Info("arena state", "arena", m)
//	w := jwriter.NewWriter()
//	m.WriteJSON(&w)
//
// CountingAllocator adds alloc/free/peak counters at the source level.
package dstack
