package isaac

// SeedData folds a buffer of seed material into the state pool. Bytes
// are XORed into the pool (little-endian within each word) starting at
// the current write cursor; when a buffer crosses the end of the pool,
// the pool is scrambled with a full mixState pass and folding wraps to
// the top. May be called any number of times while seeding, so
// heterogeneous sources can each contribute without the caller
// concatenating buffers.
//
// An empty buffer is a no-op. A buffer that exactly fills the pool
// leaves the mix pass to the next call or to SeedFinish.
func (g *Generator) SeedData(p []byte) {
	if g.phase != phaseSeeding {
		panic("isaac: SeedData called after SeedFinish")
	}

	// c serves as the byte write cursor until seeding completes.
	avail := isaacBytes - int(g.c)
	for len(p) > avail {
		g.xorBytes(int(g.c), p[:avail])
		p = p[avail:]
		g.mixState(g.mm[:])
		g.c = 0
		avail = isaacBytes
	}

	g.xorBytes(int(g.c), p)
	g.c += uint32(len(p))
}

// xorBytes folds buf into the state pool at byte offset off. Each
// 32-bit word holds four little-endian byte lanes regardless of host
// byte order, so a given seed stream produces the same state on every
// platform.
func (g *Generator) xorBytes(off int, buf []byte) {
	for i, b := range buf {
		j := off + i
		g.mm[j>>2] ^= uint32(b) << (8 * uint(j&3))
	}
}

// SeedFinish ends the seeding phase: two further mixState passes
// diffuse whatever material was folded in across the whole pool, and
// the cursor returns to duty as the refill counter. The Generator is
// ready to produce output afterwards.
func (g *Generator) SeedFinish() {
	if g.phase != phaseSeeding {
		panic("isaac: SeedFinish called twice")
	}

	g.mixState(g.mm[:])
	g.mixState(g.mm[:])
	g.c = 0
	g.phase = phaseReady
}
