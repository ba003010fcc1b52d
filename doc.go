// Package genheap implements a generational, tracing, copying/compacting
// garbage collector over a single contiguous byte arena.
//
// # Overview
//
// The arena is carved once, at construction, into five fixed-size
// regions: Eden, two symmetric Survivor spaces, Tenured and Permanent.
// Allocation is a bump pointer into Eden (or, for large objects, straight
// into Tenured). When Eden fills up, a minor collection copies live
// young objects into the inactive Survivor space, promoting objects that
// have survived enough cycles into Tenured. When Tenured itself runs
// low, a major mark-compact pass reclaims and compacts it and
// Permanent in place.
//
// # Basic usage
//
//	h, err := genheap.New(hconfig.Config{
//		EdenMax:      1024,
//		SurvivorMax:  512,
//		TenuredMax:   2048,
//		PermMax:      2560,
//		AgeCycles:    2,
//		GCDelay:      3,
//	}, myObjectVisitor)
//	defer h.Destroy()
//
//	ref := h.Alloc(16)
//	h.SetRoot(ref)
//
// # The object-visitor contract
//
// Callers supply an ObjectVisitor: given a reference to a live object and
// a RefVisitor, it must invoke the RefVisitor once for every non-zero
// intra-heap reference field reachable from that object. genheap calls
// this visitor twice per collection — once to mark, once to rewrite
// references after relocation — so it must be deterministic and free of
// side effects beyond those invocations.
//
// # Thread safety
//
// Heap is not safe for concurrent use. SyncHeap wraps a Heap with a
// mutex for hosts that need to share one heap across goroutines; it adds
// no concurrency to collection itself, it only serializes entry.
//
// # What this package does not do
//
// No concurrent or incremental collection, no weak references or
// finalizers, no write barriers (the collector only sees what is
// reachable from the root at the moment Alloc triggers a collection),
// and the arena never grows past the capacities given to New.
package genheap
