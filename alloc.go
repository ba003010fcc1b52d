package genheap

// Alloc reserves size bytes and returns a Ref to the zeroed payload, or
// the zero Ref if size cannot be satisfied even after a full collection
// cycle. size must be positive; Alloc does not validate it is.
//
// The allocator is a single pipeline, not a large/small fork with
// separate fallbacks: TryLarge? -> TryEden -> [MaybeMajor] -> Minor ->
// TryEden -> [Major] -> TryTenured -> OkOrFail.
//
//  1. If the request is large (at least half of Eden's or a Survivor's
//     capacity), try Tenured directly — a large object would not survive
//     copying collection cheaply and would just churn Eden. On success,
//     return immediately; otherwise fall through into the rest of the
//     pipeline exactly like a small request that missed Eden.
//  2. Try a plain Eden bump allocation.
//  3. If accumulated pressure has reached the configured delay, run a
//     major collection before doing anything else.
//  4. Run a minor collection unconditionally (whether or not step 3
//     ran), then retry the Eden bump.
//  5. If that still doesn't fit and a major collection did not already
//     run in step 3, run one now.
//  6. Try Tenured directly.
//  7. Otherwise, fail: return the zero Ref.
func (h *Heap) Alloc(size int) Ref {
	n := uint32(size)
	total := n + headerSize

	if h.isLarge(total) && h.regions[regionTenured].fits(total) {
		return h.allocIn(regionTenured, n)
	}

	if h.regions[regionEden].fits(total) {
		return h.allocIn(regionEden, n)
	}

	majorDone := false
	if h.gcPressure >= uint32(h.gcDelay) {
		h.runMajor()
		majorDone = true
	}

	h.runMinor()

	if h.regions[regionEden].fits(total) {
		return h.allocIn(regionEden, n)
	}

	if !majorDone {
		h.runMajor()
	}

	if h.regions[regionTenured].fits(total) {
		return h.allocIn(regionTenured, n)
	}

	return Ref(0)
}

// isLarge reports whether n — the total chunk size, header included — is
// large enough to skip Eden and go straight to Tenured: at least half of
// Eden's capacity, or at least half of a Survivor space's capacity
// (either bound alone disqualifies it from ever being cheaply copied
// through the young generation).
func (h *Heap) isLarge(n uint32) bool {
	return n >= h.regions[regionEden].max/2 || n >= h.regions[regionSurvivorA].max/2
}

// allocIn bumps region r's frontier, initializes a fresh chunk header
// there, and zeroes the payload before returning its Ref.
func (h *Heap) allocIn(r region, n uint32) Ref {
	size := n + headerSize
	headerOff := h.regions[r].bump(size)
	ref := h.initChunk(headerOff, size)

	p := h.payload(ref)
	for i := range p {
		p[i] = 0
	}

	return ref
}
