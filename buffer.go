package dstack

import "github.com/cockroachdb/errors"

// buffer is the backing region of an arena together with its ownership. A
// borrowed buffer came from the caller and is never freed here. An owned
// buffer came from src and goes back to it exactly once, on the first
// release.
type buffer struct {
	data  []byte
	owned bool
	src   Allocator
}

func newOwnedBuffer(capacity int, opts []Option) (buffer, error) {
	if capacity < 0 {
		return buffer{}, errors.Newf("dstack: negative capacity %d", capacity)
	}
	cfg := config{src: DefaultAllocator}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.src == nil {
		return buffer{}, errors.New("dstack: nil allocator source")
	}
	data, err := cfg.src.Alloc(capacity)
	if err != nil {
		return buffer{}, errors.Wrapf(err, "dstack: allocate %d byte buffer", capacity)
	}
	return buffer{data: data, owned: true, src: cfg.src}, nil
}

// release frees the region when owned and zeroes the buffer either way.
// Ownership is consulted here and nowhere else.
func (b *buffer) release() {
	if b.owned && b.data != nil {
		b.src.Free(b.data)
	}
	*b = buffer{}
}
