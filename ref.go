package genheap

// Ref is an opaque handle to a chunk's payload: an offset into the
// arena's backing buffer, biased by one so the zero value means "no
// object" instead of "payload at the arena base". Hosts must never
// retain a Ref across a call to Heap.Alloc without routing it through
// the installed ObjectVisitor, because Alloc may relocate any object it
// did not rewrite for them.
type Ref uint32

// IsZero reports whether r is the nil reference.
func (r Ref) IsZero() bool {
	return r == 0
}

// offset returns the zero-based byte offset of r's payload within the
// arena, and whether r was non-nil.
func (r Ref) offset() (int, bool) {
	if r == 0 {
		return 0, false
	}

	return int(r) - 1, true
}

// refAt builds a Ref pointing at the payload starting at byte offset off.
func refAt(off int) Ref {
	return Ref(off + 1)
}

// RefVisitor is invoked once per non-nil intra-heap reference field
// encountered while walking an object's children. Supplied by the
// collector to an ObjectVisitor; never implemented by hosts.
type RefVisitor func(h *Heap, slot *Ref)

// ObjectVisitor enumerates the intra-heap reference fields of the object
// at *slot, invoking visit exactly once for each non-nil field. Supplied
// by the host. Must be deterministic and side-effect-free beyond those
// invocations: it runs once per live object during the mark phase and
// once more during reference rewriting, with a different visit callback
// each time.
type ObjectVisitor func(h *Heap, slot *Ref, visit RefVisitor)
