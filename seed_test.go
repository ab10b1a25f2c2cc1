package isaac

import "testing"

func TestSeedStartState(t *testing.T) {
	g := New()

	if g.iv != seedIV {
		t.Error("New should install the published seeding vector")
	}
	for i, w := range g.mm {
		if w != 0 {
			t.Fatalf("state word %d = %#x, want 0", i, w)
		}
	}
	if g.a != 0 || g.b != 0 || g.c != 0 {
		t.Error("accumulators should start at zero")
	}
}

func TestSeedDataLittleEndian(t *testing.T) {
	g := New()
	g.SeedData([]byte{0x01, 0x02, 0x03, 0x04, 0x05})

	if g.mm[0] != 0x04030201 {
		t.Errorf("mm[0] = %#08x, want 0x04030201", g.mm[0])
	}
	if g.mm[1] != 0x00000005 {
		t.Errorf("mm[1] = %#08x, want 0x00000005", g.mm[1])
	}
	if g.c != 5 {
		t.Errorf("cursor = %d, want 5", g.c)
	}
}

func TestSeedDataEmpty(t *testing.T) {
	g := New()
	g.SeedData([]byte("abc"))
	snapshot := *g

	g.SeedData(nil)
	g.SeedData([]byte{})

	if *g != snapshot {
		t.Error("empty SeedData should be a no-op")
	}
}

// Feeding a stream in one batch or split into several must produce the
// same state: folding is associative along the byte stream.
func TestSeedDataSplitAssociative(t *testing.T) {
	stream := make([]byte, 100)
	for i := range stream {
		stream[i] = byte(i * 7)
	}

	whole := New()
	whole.SeedData(stream)

	split := New()
	split.SeedData(stream[:50])
	split.SeedData(stream[50:])

	if whole.mm != split.mm || whole.c != split.c || whole.iv != split.iv {
		t.Error("split seeding diverged from single-batch seeding")
	}
}

// Same property across a pool-wrapping boundary, where the interior
// mix pass fires.
func TestSeedDataSplitAcrossWrap(t *testing.T) {
	stream := make([]byte, isaacBytes+500)
	for i := range stream {
		stream[i] = byte(i*31 + 5)
	}

	whole := New()
	whole.SeedData(stream)

	split := New()
	split.SeedData(stream[:700])
	split.SeedData(stream[700:])

	if whole.mm != split.mm || whole.c != split.c || whole.iv != split.iv {
		t.Error("split seeding diverged across the wrap boundary")
	}
}

// A batch that exactly fills the pool defers the mix pass; the next
// byte triggers it.
func TestSeedDataExactFillDefersMix(t *testing.T) {
	fill := make([]byte, isaacBytes)
	for i := range fill {
		fill[i] = byte(i)
	}

	g := New()
	g.SeedData(fill)

	if g.c != isaacBytes {
		t.Fatalf("cursor = %d, want %d", g.c, isaacBytes)
	}
	if g.iv != seedIV {
		t.Error("exact fill should not trigger the mix pass")
	}

	g.SeedData([]byte{0xaa})

	if g.iv == seedIV {
		t.Error("overflowing byte should trigger the deferred mix pass")
	}
	if g.c != 1 {
		t.Errorf("cursor after wrap = %d, want 1", g.c)
	}
}

func TestSeedFinish(t *testing.T) {
	g := New()
	g.SeedData([]byte("some material"))
	g.SeedFinish()

	if g.c != 0 {
		t.Errorf("counter after SeedFinish = %d, want 0", g.c)
	}
	if g.phase != phaseReady {
		t.Error("generator should be ready after SeedFinish")
	}
}

// Even with no seed material at all, SeedFinish produces a working
// (if predictable) generator: the two diffusion passes run over the
// zero pool.
func TestSeedFinishNoMaterial(t *testing.T) {
	g := New()
	g.SeedFinish()

	nonzero := 0
	for _, w := range g.mm {
		if w != 0 {
			nonzero++
		}
	}
	if nonzero < isaacWords/2 {
		t.Errorf("only %d of %d state words nonzero after zero-seed finish", nonzero, isaacWords)
	}
}

func TestSeedDataAfterFinishPanics(t *testing.T) {
	g := newTestGenerator("done")

	defer func() {
		if recover() == nil {
			t.Error("SeedData after SeedFinish should panic")
		}
	}()
	g.SeedData([]byte("late"))
}

func TestSeedFinishTwicePanics(t *testing.T) {
	g := newTestGenerator("done")

	defer func() {
		if recover() == nil {
			t.Error("second SeedFinish should panic")
		}
	}()
	g.SeedFinish()
}

func TestUint32BeforeFinishPanics(t *testing.T) {
	g := New()
	g.SeedData([]byte("not finished"))

	defer func() {
		if recover() == nil {
			t.Error("Uint32 before SeedFinish should panic")
		}
	}()
	g.Uint32()
}
