package genheap

import (
	"encoding/binary"
	"unsafe"

	"github.com/arena-gc/genheap/hconfig"
)

// Test fixtures model a singly linked list node: 4 bytes of int32 data
// followed by 4 bytes holding the next Ref (0 = nil). linkVisitor is an
// ObjectVisitor for this layout, shared by every test file that needs a
// heap with real reference fields to trace.
//
// The next field is aliased directly as a *Ref via unsafe.Pointer rather
// than decoded, mutated locally and re-encoded, because the mark/rewrite
// traversal is stack-based: visit's effect on a child slot happens later,
// when that slot is popped off the worklist, not before linkVisitor
// returns. A *Ref into a local variable would lose that later write;
// aliasing the payload bytes keeps it live. Assumes a little-endian host,
// matching the LittleEndian encoding used everywhere else the next field
// is written or read.
func linkVisitor(h *Heap, slot *Ref, visit RefVisitor) {
	ref := *slot
	if ref.IsZero() {
		return
	}

	p := h.payload(ref)
	nextSlot := (*Ref)(unsafe.Pointer(&p[4]))
	if nextSlot.IsZero() {
		return
	}

	visit(h, nextSlot)
}

func writeNode(h *Heap, ref Ref, data int32, next Ref) {
	p := h.payload(ref)
	binary.LittleEndian.PutUint32(p[0:4], uint32(data))
	binary.LittleEndian.PutUint32(p[4:8], uint32(next))
}

func readNode(h *Heap, ref Ref) (int32, Ref) {
	p := h.payload(ref)
	data := int32(binary.LittleEndian.Uint32(p[0:4]))
	next := Ref(binary.LittleEndian.Uint32(p[4:8]))
	return data, next
}

func testConfig() hconfig.Config {
	return hconfig.Config{
		EdenMax:     1024,
		SurvivorMax: 512,
		TenuredMax:  2048,
		PermMax:     2560,
		AgeCycles:   2,
		GCDelay:     3,
	}
}

func mustNewHeap(cfg hconfig.Config) *Heap {
	h, err := New(cfg, linkVisitor)
	if err != nil {
		panic(err)
	}
	return h
}
