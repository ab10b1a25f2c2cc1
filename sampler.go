package isaac

import "encoding/binary"

// Uint32 returns the next generator word, refilling the output block
// when it is exhausted.
//
// Words are consumed from the end of the block toward the front. The
// tail words of a refill are marginally better mixed than the first
// ones, so callers that need only a few values get the best ones.
func (g *Generator) Uint32() uint32 {
	if g.phase != phaseReady {
		panic("isaac: Uint32 called before SeedFinish")
	}

	if g.left == 0 {
		g.refill()
		g.left = isaacWords
	}
	g.left--
	return g.out[g.left]
}

// Uint32n returns a uniformly distributed value in [0, n] inclusive.
//
// As x steps through every 32-bit value, x mod (n+1) takes each
// residue at least floor(2^32/(n+1)) times, but residues below
// 2^32 mod (n+1) appear one extra time. Draws below that limit are
// rejected and redrawn, which removes the bias; since the limit is
// always smaller than n+1, the chance of k consecutive rejections
// decays geometrically and the expected number of extra draws is
// below one.
func (g *Generator) Uint32n(n uint32) uint32 {
	m := n + 1
	if m == 0 {
		// Full range; the reduction below would divide by zero.
		return g.Uint32()
	}

	lim := -m % m // == (2^32 - m) % m == 2^32 % m
	for {
		x := g.Uint32()
		if x >= lim {
			return x % m
		}
	}
}

// Read fills p with generator output, one little-endian word at a
// time. It always returns len(p) and a nil error, satisfying
// io.Reader for callers that consume random bytes in bulk.
func (g *Generator) Read(p []byte) (int, error) {
	n := len(p)
	for len(p) >= 4 {
		binary.LittleEndian.PutUint32(p, g.Uint32())
		p = p[4:]
	}
	if len(p) > 0 {
		w := g.Uint32()
		for i := range p {
			p[i] = byte(w >> (8 * uint(i)))
		}
	}
	return n, nil
}
