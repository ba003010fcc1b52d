package genheap

import (
	"fmt"

	"github.com/arena-gc/genheap/backing"
	"github.com/arena-gc/genheap/hconfig"
	"github.com/google/uuid"
)

// Heap is a generational, tracing, copying/compacting garbage collector
// over one contiguous arena. Not safe for concurrent use — see SyncHeap.
type Heap struct {
	buf     []byte
	store   backing.Buffer
	regions [regionCount]regionCursor

	survivor  uint8 // index of the active ("from") survivor region
	ageCycles uint8
	gcDelay   uint8
	gcPressure uint32

	root    Ref
	visitor ObjectVisitor

	id            uuid.UUID
	schemaVersion string

	minorCollections uint64
	majorCollections uint64
	bytesRelocated   uint64
}

// New constructs a heap from cfg, carving a single contiguous arena into
// Eden, two Survivor regions, Tenured and Permanent at fixed offsets.
// Returns ErrInvalidConfig if any region capacity is zero or visitor is
// nil, or ErrResourceExhausted if the backing buffer could not be
// acquired.
func New(cfg hconfig.Config, visitor ObjectVisitor) (*Heap, error) {
	if cfg.EdenMax == 0 || cfg.SurvivorMax == 0 || cfg.TenuredMax == 0 || cfg.PermMax == 0 {
		return nil, fmt.Errorf("%w: all region capacities must be positive", ErrInvalidConfig)
	}

	if visitor == nil {
		return nil, fmt.Errorf("%w: object visitor must not be nil", ErrInvalidConfig)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	total := int(cfg.EdenMax) + 2*int(cfg.SurvivorMax) + int(cfg.TenuredMax) + int(cfg.PermMax)

	alloc := backing.NewHeapBuffer
	if cfg.UseMmap {
		alloc = backing.NewMappedBuffer
	}

	store, err := alloc(total)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResourceExhausted, err)
	}

	buf := store.Bytes()

	h := &Heap{
		buf:           buf,
		store:         store,
		ageCycles:     cfg.AgeCycles,
		gcDelay:       cfg.GCDelay,
		visitor:       visitor,
		id:            uuid.New(),
		schemaVersion: cfg.SchemaVersion,
	}

	off := 0
	h.regions[regionEden] = regionCursor{base: off, max: cfg.EdenMax}
	off += int(cfg.EdenMax)
	h.regions[regionSurvivorA] = regionCursor{base: off, max: cfg.SurvivorMax}
	off += int(cfg.SurvivorMax)
	h.regions[regionSurvivorB] = regionCursor{base: off, max: cfg.SurvivorMax}
	off += int(cfg.SurvivorMax)
	h.regions[regionTenured] = regionCursor{base: off, max: cfg.TenuredMax}
	off += int(cfg.TenuredMax)
	h.regions[regionPermanent] = regionCursor{base: off, max: cfg.PermMax}

	return h, nil
}

// Destroy releases the arena. The heap must not be used afterward.
func (h *Heap) Destroy() {
	if h.store != nil {
		h.store.Release()
		h.store = nil
	}

	h.buf = nil
}

// SetRoot updates the heap's distinguished root reference. The host must
// keep every other live reference reachable from this root — only
// references reachable from it (via the installed ObjectVisitor) survive
// collection and get rewritten after relocation.
func (h *Heap) SetRoot(ref Ref) {
	h.root = ref
}

// Root returns the heap's current root reference.
func (h *Heap) Root() Ref {
	return h.root
}

// ID returns the UUID assigned to this heap at construction, useful for
// correlating logs and metrics when a host embeds more than one heap.
func (h *Heap) ID() uuid.UUID {
	return h.id
}
