package genheap

// markStack is a small slice-backed work stack used to convert the
// conceptually recursive mark and reference-rewrite traversals into
// iteration, so that deep object graphs cannot blow the Go call stack.
type markStack struct {
	slots []*Ref
}

func (s *markStack) push(slot *Ref) {
	s.slots = append(s.slots, slot)
}

func (s *markStack) pop() (*Ref, bool) {
	n := len(s.slots)
	if n == 0 {
		return nil, false
	}

	slot := s.slots[n-1]
	s.slots = s.slots[:n-1]

	return slot, true
}

// runMark performs the mark phase: a depth-first traversal from root,
// using the host's ObjectVisitor, setting the mark bit on every
// reachable chunk. Idempotent per chunk within one phase because the
// mark bit itself guards re-entry.
func (h *Heap) runMark() {
	var stack markStack

	stack.push(&h.root)

	for {
		slot, ok := stack.pop()
		if !ok {
			return
		}

		ref := *slot
		if ref.IsZero() {
			continue
		}

		if h.mark(ref) {
			continue
		}

		h.setMark(ref, true)

		h.visitor(h, slot, func(_ *Heap, child *Ref) {
			stack.push(child)
		})
	}
}

// rewriteRefs walks from root, updating every reference slot whose
// target chunk has a non-zero forward address to point at the forwarded
// payload. The mark bit set by the preceding mark phase doubles as the
// "already walked" guard here: it is checked and cleared at the
// chunk's pre-redirect address (so a relocated chunk's guard lives at
// its old, about-to-be-abandoned address, exactly where the mark phase
// left it), and the object's children are walked at the new address.
// The slot itself is redirected before that guard is consulted, so a
// chunk reached through several slots has every one of them rewritten,
// not only the first. This single traversal is shared by minor
// collection, the Eden in-place compaction fallback and major collection
// — by the time it returns, every chunk reachable from root has had its
// mark bit cleared, satisfying the "no chunk marked outside a collection
// phase" invariant for the whole heap, not just the regions a given
// collection relocated.
func (h *Heap) rewriteRefs() {
	var stack markStack

	stack.push(&h.root)

	for {
		slot, ok := stack.pop()
		if !ok {
			return
		}

		ref := *slot
		if ref.IsZero() {
			continue
		}

		if fwd := h.forward(ref); !fwd.IsZero() {
			*slot = fwd
		}

		if !h.mark(ref) {
			continue
		}

		h.setMark(ref, false)

		h.visitor(h, slot, func(_ *Heap, child *Ref) {
			stack.push(child)
		})
	}
}
