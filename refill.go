package isaac

// step is one unrolled step of the refill pass. amix is the running
// accumulator with this step's shift already folded in (a ^ a<<13 and
// so on); m is the word being replaced and partner the word half the
// table away. Both the new accumulators are returned.
//
// The two table lookups re-index the state array by the low bits of a
// just-computed word, not by position: ind(x) selects a word by bits
// 2..9 of x, matching the byte-scaled index trick in the reference
// implementation.
func (g *Generator) step(m, partner int, amix, b uint32) (uint32, uint32) {
	a := amix + g.mm[partner]
	x := g.mm[m]
	y := g.mm[(x>>2)&(isaacWords-1)] + a + b
	g.mm[m] = y
	b = g.mm[(y>>(2+isaacLog))&(isaacWords-1)] + x
	g.out[m] = b
	return a, b
}

// refill regenerates the entire output block and advances the state:
// all 256 state words are rewritten and a, b, c move forward. Words
// are processed in ascending order in two halves, each word paired
// with the word 128 away; later words read earlier words already
// updated in this same pass, so the order is part of the algorithm.
func (g *Generator) refill() {
	g.c++
	a := g.a
	b := g.b + g.c

	const half = isaacWords / 2
	for m := 0; m < half; m += 4 {
		a, b = g.step(m, m+half, a^(a<<13), b)
		a, b = g.step(m+1, m+1+half, a^(a>>6), b)
		a, b = g.step(m+2, m+2+half, a^(a<<2), b)
		a, b = g.step(m+3, m+3+half, a^(a>>16), b)
	}
	for m := half; m < isaacWords; m += 4 {
		a, b = g.step(m, m-half, a^(a<<13), b)
		a, b = g.step(m+1, m+1-half, a^(a>>6), b)
		a, b = g.step(m+2, m+2-half, a^(a<<2), b)
		a, b = g.step(m+3, m+3-half, a^(a>>16), b)
	}

	g.a = a
	g.b = b
}
