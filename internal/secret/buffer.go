package secret

import (
	"errors"
	"fmt"
	"sync"

	"aesguard/internal/domain"
	"aesguard/internal/util/memzero"
)

var errClosed = errors.New("secret: use of closed buffer")

// Buffer is a fixed-size region of sensitive memory. It must not be copied
// after creation. Close erases and releases it; any read after Close panics.
type Buffer struct {
	mu     sync.Mutex
	data   []byte
	locked bool
	closed bool
}

// New allocates a zeroed buffer of size bytes.
func New(size int) (*Buffer, error) {
	if size <= 0 {
		return nil, fmt.Errorf("secret: buffer size must be positive, got %d", size)
	}
	data, locked, err := allocate(size)
	if err != nil {
		return nil, err
	}
	return &Buffer{data: data, locked: locked}, nil
}

// NewFromBytes copies src into a new buffer and erases src, so the caller's
// slice no longer holds the secret.
func NewFromBytes(src []byte) (*Buffer, error) {
	if len(src) == 0 {
		return nil, errors.New("secret: cannot create buffer from empty source")
	}
	b, err := New(len(src))
	if err != nil {
		memzero.Zero(src)
		return nil, err
	}
	copy(b.data, src)
	memzero.Zero(src)
	return b, nil
}

// Bytes returns the buffer contents. The slice aliases the buffer and must
// not outlive it.
func (b *Buffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.mustBeOpen()
	return b.data
}

// Key returns the contents as cipher key material, aliasing the buffer.
func (b *Buffer) Key() domain.CipherKey { return domain.CipherKey(b.Bytes()) }

// Len returns the buffer size; zero once closed.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.data)
}

// Locked reports whether the memory is pinned against swapping.
func (b *Buffer) Locked() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.locked
}

// Blocks returns how many whole cipher blocks fit in the buffer.
func (b *Buffer) Blocks() int { return b.Len() / domain.BlockSize }

// Block returns the i-th cipher block as a view into the buffer, for
// transforming blocks in place without copying them out.
func (b *Buffer) Block(i int) *domain.Block {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.mustBeOpen()
	if i < 0 || (i+1)*domain.BlockSize > len(b.data) {
		panic(fmt.Sprintf("secret: block %d out of range [0,%d)", i, len(b.data)/domain.BlockSize))
	}
	off := i * domain.BlockSize
	return (*domain.Block)(b.data[off : off+domain.BlockSize])
}

// Erase zeroes the contents. The buffer stays usable. Erase on a closed
// buffer is a no-op.
func (b *Buffer) Erase() {
	b.mu.Lock()
	defer b.mu.Unlock()
	memzero.Zero(b.data)
}

// Close erases the contents and releases the memory. Close is idempotent.
func (b *Buffer) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true

	memzero.Zero(b.data)
	err := release(b.data, b.locked)
	b.data = nil
	b.locked = false
	return err
}

func (b *Buffer) mustBeOpen() {
	if b.closed {
		panic(errClosed)
	}
}
