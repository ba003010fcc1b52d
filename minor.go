package genheap

// evacuate copies src (which must be marked live) to the bump frontier
// of dest, records the forward address on src, and leaves the copy
// quiescent (mark cleared, forward cleared). copyChunk carries src's age
// into dst, then bumpAge advances it by one with saturation at 255: for
// a Survivor or Tenured destination this is the age-monotonicity bump a
// surviving object earns each minor collection, and for a fresh Eden
// object (age always 0 pre-evacuation) it lands dst at age 1, matching
// the age objects enter Survivor with on their first transfer.
func (h *Heap) evacuate(src Ref, dest region) Ref {
	size := h.chunkSize(src)
	headerOff := h.regions[dest].bump(size)
	dst := h.copyChunk(src, headerOff)

	h.bumpAge(dst)
	h.setMark(dst, false)
	h.clearForward(dst)
	h.setForward(src, dst)
	h.bytesRelocated += uint64(size)

	return dst
}

// runMinor performs one minor collection: evacuates live young objects
// out of Eden and the active Survivor space, promoting sufficiently-aged
// survivors into Tenured, and leaves Eden empty.
func (h *Heap) runMinor() {
	h.runMark()

	from := h.activeSurvivor()
	to := h.inactiveSurvivor()

	// Evacuate Survivor-From before Eden, so that promotion pressure is
	// accounted for before young objects from Eden demand survivor space.
	if h.regions[from].used > 0 {
		h.iterChunks(from, func(src Ref) bool {
			if !h.mark(src) {
				return true // dead, leave it; region is about to be dropped wholesale
			}

			size := h.chunkSize(src)
			age := h.age(src)

			if age >= h.ageCycles && h.regions[regionTenured].fits(size) {
				h.evacuate(src, regionTenured)
			} else {
				h.evacuate(src, to)

				if age >= h.ageCycles {
					// Wanted tenured, couldn't fit: note the pressure.
					h.gcPressure++
				}
			}

			return true
		})
	}

	h.regions[from].used = 0

	// Flip the active survivor bit: the region just populated becomes
	// the new "from" space for the next cycle.
	h.survivor ^= 1

	h.evacuateEden()

	h.rewriteRefs()

	h.regions[regionEden].used = 0
	h.minorCollections++
}

// evacuateEden copies every live Eden chunk into the (now active)
// Survivor space, overflowing to Tenured when Survivor has no room, and
// falling back to an in-place mark-compact of Eden itself when neither
// has room. Dead chunks are discarded.
//
// Compacting Eden cannot, by itself, create room in Survivor or Tenured:
// if an object still doesn't fit either after a fallback compaction, no
// further compaction within this call will change that — it is the same
// object-versus-capacity problem the compaction already failed to solve.
// evacuateEden therefore allows at most one such fallback per call (to
// give whatever else is still pending in Eden a fair chance via the
// resumed scan) and panics if the condition recurs, rather than looping
// forever or writing past a region's configured capacity into its
// neighbor.
func (h *Heap) evacuateEden() {
	eden := &h.regions[regionEden]
	off := eden.base
	fellBackOnce := false

	for off-eden.base < int(eden.used) {
		src := refAt(off + headerSize)
		size := h.chunkSize(src)

		if !h.mark(src) {
			off += int(size)
			continue
		}

		active := h.activeSurvivor()

		switch {
		case h.regions[active].fits(size):
			h.evacuate(src, active)
		case h.regions[regionTenured].fits(size):
			h.evacuate(src, regionTenured)
		case fellBackOnce:
			panic("genheap: live object has no room in survivor or tenured even after compacting eden")
		default:
			// Neither survivor nor tenured has room for this object.
			// Fix up everything relocated so far, then compact Eden in
			// place to make room, and force a major collection soon.
			h.rewriteRefs()
			h.compactInPlace(regionEden)
			h.gcPressure += uint32(h.gcDelay)
			fellBackOnce = true

			// compactInPlace's own reference-rewrite pass clears the mark
			// bit on every chunk reachable from root, heap-wide — not just
			// Eden's. Every chunk still in Eden survived the compaction,
			// so it is by construction live; re-mark so the liveness check
			// below (shared with the pre-fallback scan) sees that.
			h.runMark()

			// eden.used has shrunk; resume scanning from the start of
			// the compacted region rather than trying to preserve an
			// offset into bytes that may no longer hold the same chunk.
			off = eden.base

			continue
		}

		off += int(size)
	}
}
