package genheap

import "testing"

func TestStatsReflectsAllocations(t *testing.T) {
	h := mustNewHeap(testConfig())
	defer h.Destroy()

	h.Alloc(16)

	stats := h.Stats()
	if stats.Eden.Used == 0 {
		t.Error("Stats().Eden.Used should be non-zero after an allocation")
	}
	if stats.Eden.Max != testConfig().EdenMax {
		t.Errorf("Stats().Eden.Max = %d, want %d", stats.Eden.Max, testConfig().EdenMax)
	}
}

func TestStatsActiveSurvivorMatchesState(t *testing.T) {
	h := mustNewHeap(testConfig())
	defer h.Destroy()

	if got := h.Stats().ActiveSurvivor; got != "survivor-a" {
		t.Errorf("ActiveSurvivor = %q, want %q", got, "survivor-a")
	}

	h.SetRoot(Ref(0))
	h.runMinor()

	if got := h.Stats().ActiveSurvivor; got != "survivor-b" {
		t.Errorf("ActiveSurvivor after one minor = %q, want %q", got, "survivor-b")
	}
}

func TestStatsCountsCollections(t *testing.T) {
	h := mustNewHeap(testConfig())
	defer h.Destroy()

	h.SetRoot(Ref(0))
	h.runMinor()
	h.runMajor()

	stats := h.Stats()
	if stats.MinorCollections != 1 {
		t.Errorf("MinorCollections = %d, want 1", stats.MinorCollections)
	}
	if stats.MajorCollections != 1 {
		t.Errorf("MajorCollections = %d, want 1", stats.MajorCollections)
	}
}

func TestStatsGCPressureVisible(t *testing.T) {
	h := mustNewHeap(testConfig())
	defer h.Destroy()

	h.gcPressure = 4
	if got := h.Stats().GCPressure; got != 4 {
		t.Errorf("GCPressure = %d, want 4", got)
	}
}
