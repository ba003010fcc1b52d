package genheap

import (
	"sync"

	"github.com/arena-gc/genheap/hconfig"
	"github.com/google/uuid"
)

// SyncHeap wraps a Heap with a mutex, serializing access without adding
// any concurrency semantics beyond mutual exclusion. The collector
// itself assumes single-threaded access; this is the only supported way
// to share one heap across goroutines.
type SyncHeap struct {
	mu   sync.Mutex
	heap *Heap
}

// NewSyncHeap constructs a heap via New and wraps it for concurrent use.
func NewSyncHeap(cfg hconfig.Config, visitor ObjectVisitor) (*SyncHeap, error) {
	h, err := New(cfg, visitor)
	if err != nil {
		return nil, err
	}

	return &SyncHeap{heap: h}, nil
}

// Alloc is the mutex-guarded equivalent of Heap.Alloc.
func (s *SyncHeap) Alloc(size int) Ref {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.heap.Alloc(size)
}

// SetRoot is the mutex-guarded equivalent of Heap.SetRoot.
func (s *SyncHeap) SetRoot(ref Ref) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.heap.SetRoot(ref)
}

// Root is the mutex-guarded equivalent of Heap.Root.
func (s *SyncHeap) Root() Ref {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.heap.Root()
}

// Stats is the mutex-guarded equivalent of Heap.Stats.
func (s *SyncHeap) Stats() HeapStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.heap.Stats()
}

// ID is the mutex-guarded equivalent of Heap.ID.
func (s *SyncHeap) ID() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.heap.ID()
}

// Destroy is the mutex-guarded equivalent of Heap.Destroy.
func (s *SyncHeap) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.heap.Destroy()
}
