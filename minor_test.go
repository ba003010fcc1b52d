package genheap

import (
	"testing"

	"github.com/arena-gc/genheap/hconfig"
)

func TestEvacuateBumpsAgeWithSaturation(t *testing.T) {
	h := mustNewHeap(testConfig())
	defer h.Destroy()

	fresh := h.Alloc(8)
	writeNode(h, fresh, 1, Ref(0))

	dst := h.evacuate(fresh, regionSurvivorA)
	if got := h.age(dst); got != 1 {
		t.Errorf("age after one evacuation from a fresh (age 0) object = %d, want 1", got)
	}

	h.setAge(dst, 254)
	dst = h.evacuate(dst, regionSurvivorB)
	if got := h.age(dst); got != 255 {
		t.Errorf("age after evacuating age 254 = %d, want 255", got)
	}

	dst = h.evacuate(dst, regionTenured)
	if got := h.age(dst); got != 255 {
		t.Errorf("age after evacuating already-saturated age 255 = %d, want 255 (no overflow)", got)
	}
}

func TestRunMinorEvacuatesLiveEdenObjects(t *testing.T) {
	h := mustNewHeap(testConfig())
	defer h.Destroy()

	a := h.Alloc(8)
	writeNode(h, a, 1, Ref(0))
	h.SetRoot(a)

	h.runMinor()

	if h.regions[regionEden].used != 0 {
		t.Errorf("eden used after minor = %d, want 0", h.regions[regionEden].used)
	}

	active := h.activeSurvivor()
	if h.regions[active].used == 0 {
		t.Error("expected the evacuated object to land in the active survivor space")
	}

	data, _ := readNode(h, h.Root())
	if data != 1 {
		t.Errorf("root data after minor = %d, want 1", data)
	}
}

func TestRunMinorDropsUnreachableObjects(t *testing.T) {
	h := mustNewHeap(testConfig())
	defer h.Destroy()

	a := h.Alloc(8)
	writeNode(h, a, 1, Ref(0))
	h.Alloc(8) // garbage: never linked from root

	h.SetRoot(a)
	h.runMinor()

	active := h.regions[h.activeSurvivor()]
	// Only the root's single node should have survived into the active
	// survivor space.
	if active.used != headerSize+8 {
		t.Errorf("active survivor used = %d, want %d", active.used, headerSize+8)
	}
}

func TestRunMinorFlipsSurvivorBit(t *testing.T) {
	h := mustNewHeap(testConfig())
	defer h.Destroy()

	before := h.survivor
	h.SetRoot(Ref(0))
	h.runMinor()

	if h.survivor == before {
		t.Error("runMinor should flip the active survivor bit")
	}
}

func TestRunMinorPromotesAgedSurvivors(t *testing.T) {
	cfg := testConfig()
	cfg.AgeCycles = 1
	h := mustNewHeap(cfg)
	defer h.Destroy()

	a := h.Alloc(8)
	writeNode(h, a, 9, Ref(0))
	h.SetRoot(a)

	h.runMinor() // age 0 -> 1, moves Eden -> active survivor
	h.runMinor() // age 1 >= AgeCycles(1), promoted Survivor -> Tenured

	if h.regions[regionTenured].used == 0 {
		t.Error("expected object to be promoted into tenured after aging")
	}

	data, _ := readNode(h, h.Root())
	if data != 9 {
		t.Errorf("root data after promotion = %d, want 9", data)
	}
}

func TestRunMinorIncrementsCounter(t *testing.T) {
	h := mustNewHeap(testConfig())
	defer h.Destroy()

	h.SetRoot(Ref(0))
	h.runMinor()
	h.runMinor()

	if h.minorCollections != 2 {
		t.Errorf("minorCollections = %d, want 2", h.minorCollections)
	}
}

func TestEvacuateEdenFallbackCompactsAndMakesProgress(t *testing.T) {
	// Survivor has just enough room for one small node; Tenured has
	// none. Two live Eden nodes chained off root: the first evacuates to
	// Survivor normally. The second can't fit in Survivor or Tenured, so
	// it forces the in-place Eden compaction fallback, which drops the
	// stale pre-evacuation bytes of the first node and leaves the second
	// alone, compacted, in Eden — still unplaceable, but consistent.
	cfg := hconfig.Config{
		EdenMax:     256,
		SurvivorMax: headerSize + 8 + 4, // room for one node, a sliver of slack
		TenuredMax:  1,                  // never fits anything
		PermMax:     64,
		AgeCycles:   5,
		GCDelay:     10,
	}
	h := mustNewHeap(cfg)
	defer h.Destroy()

	first := h.Alloc(8)
	writeNode(h, first, 1, Ref(0))

	second := h.Alloc(8)
	writeNode(h, second, 2, first)
	h.SetRoot(second)

	// The second node can never be placed (Survivor and Tenured both
	// lack room for it and nothing can free either), so a single
	// fallback compaction buys it one more scan before evacuateEden's
	// bounded-retry guard panics rather than looping or corrupting the
	// neighboring region.
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected a panic once the bounded fallback retry is exhausted")
		}
	}()

	h.runMinor()
}
