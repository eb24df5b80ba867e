package dstack_test

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/pavanmanishd/dstack"
)

// BenchmarkConcurrencyPatterns tests concurrent usage patterns. Arenas are
// single-owner, so the shared state is the source: goroutines draw buffers
// from one allocator and work in private arenas.
func BenchmarkConcurrencyPatterns(b *testing.B) {

	b.Run("Arena_PerGoroutine", func(b *testing.B) {
		b.ResetTimer()
		b.RunParallel(func(pb *testing.PB) {
			a := dstack.NewArena(make([]byte, 1024*1024))

			i := 0
			for pb.Next() {
				a.AllocBottom(64)
				i++
				if i%1000 == 999 {
					a.ClearBottom()
				}
			}
		})
	})

	b.Run("PooledArena_PerGoroutine", func(b *testing.B) {
		pool := dstack.NewPoolAllocator(nil, 32)
		b.ResetTimer()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				a, _ := dstack.NewArenaWithCapacity(64*1024, dstack.WithAllocator(pool))
				for j := 0; j < 100; j++ {
					a.AllocBottom(64)
				}
				a.Release()
			}
		})
	})

	b.Run("Builtin_Parallel", func(b *testing.B) {
		b.ResetTimer()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				_ = make([]byte, 64)
			}
		})
	})

	// Source contention with different buffer sizes
	sizes := []int{4096, 16384, 65536}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("PoolSource_Contention_%dB", size), func(b *testing.B) {
			pool := dstack.NewPoolAllocator(nil, 32)
			b.ResetTimer()
			b.RunParallel(func(pb *testing.PB) {
				for pb.Next() {
					buf, _ := pool.Alloc(size)
					pool.Free(buf)
				}
			})
		})

		b.Run(fmt.Sprintf("HeapSource_%dB", size), func(b *testing.B) {
			var h dstack.HeapAllocator
			b.ResetTimer()
			b.RunParallel(func(pb *testing.PB) {
				for pb.Next() {
					buf, _ := h.Alloc(size)
					h.Free(buf)
				}
			})
		})
	}
}

// BenchmarkSharedSourceOperations measures counter and pool inspection cost
// under parallel traffic
func BenchmarkSharedSourceOperations(b *testing.B) {
	src := dstack.NewCountingAllocator(dstack.NewPoolAllocator(nil, 32))

	b.Run("AllocFree", func(b *testing.B) {
		b.ResetTimer()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				buf, _ := src.Alloc(4096)
				src.Free(buf)
			}
		})
	})

	b.Run("Stats", func(b *testing.B) {
		b.ResetTimer()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				_ = src.Stats()
			}
		})
	})

	b.Run("MixedTraffic", func(b *testing.B) {
		b.ResetTimer()
		b.RunParallel(func(pb *testing.PB) {
			i := 0
			for pb.Next() {
				if i%10 == 9 {
					_ = src.Stats()
				} else {
					buf, _ := src.Alloc(4096)
					src.Free(buf)
				}
				i++
			}
		})
	})
}

// BenchmarkConcurrentLifecycle measures whole arena lifecycles under parallel
// load through different sources
func BenchmarkConcurrentLifecycle(b *testing.B) {
	b.Run("HeapSource", func(b *testing.B) {
		b.ResetTimer()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				a, _ := dstack.NewArenaWithCapacity(16 * 1024)
				a.AllocBottom(1024)
				a.Release()
			}
		})
	})

	b.Run("PoolSource", func(b *testing.B) {
		pool := dstack.NewPoolAllocator(nil, 32)
		b.ResetTimer()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				a, _ := dstack.NewArenaWithCapacity(16*1024, dstack.WithAllocator(pool))
				a.AllocBottom(1024)
				a.Release()
			}
		})
	})
}

// BenchmarkScalability tests how source throughput scales with goroutines
func BenchmarkScalability(b *testing.B) {
	goroutineCounts := []int{1, 2, 4, 8, 16}

	for _, numGoroutines := range goroutineCounts {
		b.Run(fmt.Sprintf("PoolSource_%dGoroutines", numGoroutines), func(b *testing.B) {
			pool := dstack.NewPoolAllocator(nil, 32)

			oldProcs := runtime.GOMAXPROCS(numGoroutines)
			defer runtime.GOMAXPROCS(oldProcs)

			b.ResetTimer()
			b.RunParallel(func(pb *testing.PB) {
				for pb.Next() {
					buf, _ := pool.Alloc(16 * 1024)
					pool.Free(buf)
				}
			})
		})

		b.Run(fmt.Sprintf("Arena_PerGoroutine_%dGoroutines", numGoroutines), func(b *testing.B) {
			oldProcs := runtime.GOMAXPROCS(numGoroutines)
			defer runtime.GOMAXPROCS(oldProcs)

			b.ResetTimer()
			b.RunParallel(func(pb *testing.PB) {
				a := dstack.NewArena(make([]byte, 4*1024*1024))

				for pb.Next() {
					if a.AllocBottom(128) == nil {
						a.ClearBottom()
					}
				}
			})
		})

		b.Run(fmt.Sprintf("Builtin_%dGoroutines", numGoroutines), func(b *testing.B) {
			oldProcs := runtime.GOMAXPROCS(numGoroutines)
			defer runtime.GOMAXPROCS(oldProcs)

			b.ResetTimer()
			b.RunParallel(func(pb *testing.PB) {
				for pb.Next() {
					_ = make([]byte, 128)
				}
			})
		})
	}
}
