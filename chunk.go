package genheap

import "encoding/binary"

// Every chunk is a fixed-size header followed by size-headerSize bytes
// of opaque payload. The header is read and written through explicit
// offset arithmetic into the arena's backing slice rather than aliased
// as a Go struct, so that a chunk's on-heap representation never depends
// on the host architecture's struct layout rules.
//
//	byte 0:    mark   (1 byte, 0 or 1)
//	byte 1:    age    (1 byte, saturates at 255)
//	bytes 2-3: padding
//	bytes 4-7: size    (uint32, total chunk size: header + payload)
//	bytes 8-11: forward (uint32, offset from arena base + 1; 0 = not moved)
const (
	headerSize = 12

	hdrMarkOff    = 0
	hdrAgeOff     = 1
	hdrSizeOff    = 4
	hdrForwardOff = 8
)

// chunkBase returns the arena offset of the header of the chunk whose
// payload starts at the byte offset held by ref. Panics if ref is the nil
// reference; any other ref is trusted to reference a valid chunk, and the
// collector never calls this with a dangling ref.
func (h *Heap) chunkBase(ref Ref) int {
	off, ok := ref.offset()
	if !ok {
		panic("genheap: nil reference has no chunk")
	}

	return off - headerSize
}

func (h *Heap) mark(ref Ref) bool {
	base := h.chunkBase(ref)
	return h.buf[base+hdrMarkOff] != 0
}

func (h *Heap) setMark(ref Ref, v bool) {
	base := h.chunkBase(ref)
	if v {
		h.buf[base+hdrMarkOff] = 1
	} else {
		h.buf[base+hdrMarkOff] = 0
	}
}

func (h *Heap) age(ref Ref) uint8 {
	base := h.chunkBase(ref)
	return h.buf[base+hdrAgeOff]
}

func (h *Heap) setAge(ref Ref, v uint8) {
	base := h.chunkBase(ref)
	h.buf[base+hdrAgeOff] = v
}

// bumpAge increments age with saturation at 255, per spec.md's age
// monotonicity law.
func (h *Heap) bumpAge(ref Ref) {
	base := h.chunkBase(ref)
	a := h.buf[base+hdrAgeOff]
	if a != 0xFF {
		h.buf[base+hdrAgeOff] = a + 1
	}
}

func (h *Heap) chunkSize(ref Ref) uint32 {
	base := h.chunkBase(ref)
	return binary.LittleEndian.Uint32(h.buf[base+hdrSizeOff:])
}

func (h *Heap) setChunkSize(ref Ref, size uint32) {
	base := h.chunkBase(ref)
	binary.LittleEndian.PutUint32(h.buf[base+hdrSizeOff:], size)
}

func (h *Heap) forward(ref Ref) Ref {
	base := h.chunkBase(ref)
	return Ref(binary.LittleEndian.Uint32(h.buf[base+hdrForwardOff:]))
}

func (h *Heap) setForward(ref Ref, fwd Ref) {
	base := h.chunkBase(ref)
	binary.LittleEndian.PutUint32(h.buf[base+hdrForwardOff:], uint32(fwd))
}

func (h *Heap) clearForward(ref Ref) {
	h.setForward(ref, 0)
}

// initChunk writes a fresh header (mark=0, age=0, forward=0, given size)
// at headerOff and returns a Ref to its payload.
func (h *Heap) initChunk(headerOff int, size uint32) Ref {
	h.buf[headerOff+hdrMarkOff] = 0
	h.buf[headerOff+hdrAgeOff] = 0
	binary.LittleEndian.PutUint32(h.buf[headerOff+hdrSizeOff:], size)
	binary.LittleEndian.PutUint32(h.buf[headerOff+hdrForwardOff:], 0)

	return refAt(headerOff + headerSize)
}

// copyChunk copies the whole chunk (header + payload) rooted at src to
// the header offset dstHeaderOff, returning a Ref to the copy's payload.
// Caller is responsible for region bookkeeping.
func (h *Heap) copyChunk(src Ref, dstHeaderOff int) Ref {
	base := h.chunkBase(src)
	size := h.chunkSize(src)
	copy(h.buf[dstHeaderOff:dstHeaderOff+int(size)], h.buf[base:base+int(size)])

	return refAt(dstHeaderOff + headerSize)
}

// payload returns the size-headerSize opaque bytes belonging to ref.
func (h *Heap) payload(ref Ref) []byte {
	off, ok := ref.offset()
	if !ok {
		return nil
	}

	size := h.chunkSize(ref)

	return h.buf[off : off+int(size)-headerSize]
}

// Payload returns the live, directly writable bytes of the object
// referenced by ref. The slice aliases the arena: it must not be
// retained across a call to Alloc, which may relocate ref's object
// without the caller's knowledge unless the object is reachable from
// root through the installed ObjectVisitor.
func (h *Heap) Payload(ref Ref) []byte {
	return h.payload(ref)
}
