package genheap

// RegionStats reports one region's occupancy at the moment Stats was
// called.
type RegionStats struct {
	Used uint32
	Max  uint32
}

// HeapStats is a snapshot of a heap's occupancy and collection history.
// Safe to copy; holds no references into the heap.
type HeapStats struct {
	Eden       RegionStats
	SurvivorA  RegionStats
	SurvivorB  RegionStats
	Tenured    RegionStats
	Permanent  RegionStats

	ActiveSurvivor string

	GCPressure uint32

	MinorCollections uint64
	MajorCollections uint64
	BytesRelocated   uint64
}

// Stats returns a point-in-time snapshot of h's region occupancy and
// collection counters.
func (h *Heap) Stats() HeapStats {
	rs := func(r region) RegionStats {
		c := h.regions[r]
		return RegionStats{Used: c.used, Max: c.max}
	}

	return HeapStats{
		Eden:      rs(regionEden),
		SurvivorA: rs(regionSurvivorA),
		SurvivorB: rs(regionSurvivorB),
		Tenured:   rs(regionTenured),
		Permanent: rs(regionPermanent),

		ActiveSurvivor: h.activeSurvivor().String(),

		GCPressure: h.gcPressure,

		MinorCollections: h.minorCollections,
		MajorCollections: h.majorCollections,
		BytesRelocated:   h.bytesRelocated,
	}
}
