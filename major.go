package genheap

// addressAssign iterates region r in address order and, for every
// chunk still marked live, assigns it a compacted offset (the running
// frontier of r) recorded in the chunk's forward field, then advances
// the frontier by the chunk's size. Dead chunks get no forward address
// and are dropped by the subsequent compaction pass. Returns the final
// frontier, i.e. the region's post-compaction used size.
func (h *Heap) addressAssign(r region) int {
	c := &h.regions[r]
	frontier := 0
	off := c.base

	for off-c.base < int(c.used) {
		ref := refAt(off + headerSize)
		size := h.chunkSize(ref)

		if h.mark(ref) {
			h.setForward(ref, refAt(c.base+frontier+headerSize))
			frontier += int(size)
		} else {
			// A dead chunk may still carry a forward address from an
			// earlier evacuation; drop it so compaction skips the chunk.
			h.clearForward(ref)
		}

		off += int(size)
	}

	return frontier
}

// compactRegion copies every live chunk of region r (those carrying a
// forward address assigned by addressAssign) to its assigned offset and
// sets r's used size to frontier. Must run after the reference-rewrite
// pass has redirected external slots, since it overwrites the bytes the
// forward addresses were computed from.
func (h *Heap) compactRegion(r region, frontier int) {
	c := &h.regions[r]
	off := c.base

	for off-c.base < int(c.used) {
		ref := refAt(off + headerSize)
		size := h.chunkSize(ref)
		fwd := h.forward(ref)

		if !fwd.IsZero() {
			dstBase := h.chunkBase(fwd)
			copy(h.buf[dstBase:dstBase+int(size)], h.buf[off:off+int(size)])
			h.setMark(fwd, false)
			h.clearForward(fwd)
		}

		off += int(size)
	}

	c.used = uint32(frontier)
	h.bytesRelocated += uint64(frontier)
}

// runMajor performs a mark-compact collection of Tenured and Permanent.
// Eden and the Survivor spaces are left untouched; only their outgoing
// references into Tenured/Permanent may be rewritten.
func (h *Heap) runMajor() {
	h.runMark()

	tenuredFrontier := h.addressAssign(regionTenured)
	permFrontier := h.addressAssign(regionPermanent)

	h.rewriteRefs()

	h.compactRegion(regionTenured, tenuredFrontier)
	h.compactRegion(regionPermanent, permFrontier)

	h.majorCollections++
}

// compactInPlace runs a full mark-compact cycle confined to a single
// region. Used by the minor collector's Eden overflow fallback (spec's
// "in-place Eden compaction") when neither Survivor nor Tenured has room
// left for a live Eden object mid-evacuation.
func (h *Heap) compactInPlace(r region) {
	h.runMark()

	frontier := h.addressAssign(r)

	h.rewriteRefs()
	h.compactRegion(r, frontier)
}
