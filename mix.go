package isaac

// seedIV is the published pre-scrambled seeding vector: eight copies of
// the golden ratio 0x9e3779b9 put through four rounds of mixEight.
var seedIV = [8]uint32{
	0x1367df5a, 0x95d90059, 0xc3163e4b, 0x0f421ad8,
	0xd92a4a78, 0xa51a3c49, 0xc4efea1b, 0x30609119,
}

// mixEight is the central seed-scrambling step, based on Bob Jenkins's
// 256-bit hash. Eight rounds, each folding one lane into the next via
// XOR/add and a direct shift. The rounds are sequential: each consumes
// lanes the previous round just wrote, so the order below is
// load-bearing and must not be rearranged.
func mixEight(v *[8]uint32) {
	a, b, c, d := v[0], v[1], v[2], v[3]
	e, f, g, h := v[4], v[5], v[6], v[7]

	a ^= b << 11
	d += a
	b += c
	b ^= c >> 2
	e += b
	c += d
	c ^= d << 8
	f += c
	d += e
	d ^= e >> 16
	g += d
	e += f
	e ^= f << 10
	h += e
	f += g
	f ^= g >> 4
	a += f
	g += h
	g ^= h << 8
	b += g
	h += a
	h ^= a >> 9
	c += h
	a += b

	v[0], v[1], v[2], v[3] = a, b, c, d
	v[4], v[5], v[6], v[7] = e, f, g, h
}

// mixState runs one initialization pass: each group of eight seed words
// is added into the running vector, scrambled with mixEight, and
// written into the corresponding slots of the state array. The vector
// carries across groups and across calls through g.iv.
//
// seed may alias g.mm[:]; each group's words are read before the group
// is overwritten.
func (g *Generator) mixState(seed []uint32) {
	v := g.iv
	for i := 0; i < isaacWords; i += 8 {
		for j := 0; j < 8; j++ {
			v[j] += seed[i+j]
		}
		mixEight(&v)
		copy(g.mm[i:i+8], v[:])
	}
	g.iv = v
}
