//go:build unix

package backing

import (
	"fmt"
	"sync"

	"golang.org/x/sys/unix"
)

// mappedBuffer is backed by an anonymous, private mmap region rather than
// a Go slice. Useful for large arenas: the OS commits pages lazily
// instead of the runtime eagerly zeroing one big allocation up front.
type mappedBuffer struct {
	buf     []byte
	mu      sync.Mutex
	release bool
}

// NewMappedBuffer maps size bytes of anonymous, zero-filled memory.
func NewMappedBuffer(size int) (Buffer, error) {
	if size <= 0 {
		return nil, fmt.Errorf("backing: size must be positive, got %d", size)
	}

	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("backing: mmap %d bytes: %w", size, err)
	}

	return &mappedBuffer{buf: data}, nil
}

func (b *mappedBuffer) Bytes() []byte {
	return b.buf
}

func (b *mappedBuffer) Release() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.release || b.buf == nil {
		return nil
	}

	b.release = true
	err := unix.Munmap(b.buf)
	b.buf = nil

	return err
}
