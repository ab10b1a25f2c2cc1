// Package isaac implements Bob Jenkins's ISAAC pseudo-random number
// generator together with an incremental seeding protocol and an
// unbiased bounded-integer sampler.
//
// ISAAC is fast and has published analysis behind it, but no
// cryptographic-strength claims are made here: the generator is meant
// for callers that want good, cheap randomness rather than a CSPRNG
// with forward secrecy.
//
// A Generator is seeded in three phases: New puts it in the seeding
// phase, SeedData folds in entropy (repeatably, from as many sources as
// are available), and SeedFinish makes it ready to produce output.
// NewSeeded runs the whole protocol over a set of entropy sources in
// one call:
//
//	gen := isaac.NewSeeded()
//	die := gen.Uint32n(5) + 1
//
// A Generator is confined to a single goroutine; independent instances
// may run concurrently with no shared state.
package isaac

// Size of the state table. isaacLog must be at least 3; smaller values
// weaken the generator.
const (
	isaacLog   = 8
	isaacWords = 1 << isaacLog
	isaacBytes = isaacWords * 4
)

// Generator phases. New enters phaseSeeding directly; SeedFinish moves
// to phaseReady.
type phase int

const (
	phaseSeeding phase = iota
	phaseReady
)

// Generator holds the complete ISAAC state: the 256-word entropy pool,
// the seeding vector, the three running accumulators, and the output
// block the sampler consumes from.
type Generator struct {
	mm [isaacWords]uint32 // Main state array
	iv [8]uint32          // Seeding initial vector, re-mixed each pass
	a  uint32             // Running mix accumulator
	b  uint32             // Running mix accumulator
	c  uint32             // Refill counter; write offset while seeding

	out   [isaacWords]uint32 // Current output block
	left  int                // Words remaining in out (consumed 255..0)
	phase phase
}

// New returns a Generator in the seeding phase: the initialization
// vector holds the pre-scrambled golden-ratio constants, the state
// array is zeroed, and the write cursor is at the start of the pool.
// Feed entropy with SeedData, then call SeedFinish before drawing.
func New() *Generator {
	g := &Generator{iv: seedIV}
	return g
}

// SeedSource supplies seed material for NewSeeded. Implementations
// return whatever bytes they could gather; nil or short results are
// acceptable and simply contribute less. The entropy subpackage
// provides the production sources.
type SeedSource interface {
	Gather() []byte
}

// NewSeeded returns a ready Generator seeded from the given sources in
// order. With no arguments it uses the platform defaults: process
// identifiers, a high-resolution timestamp, the OS random device, and
// a host fingerprint. Seeding never fails; sources that produce
// nothing are skipped, and the generator proceeds with whatever
// material was gathered.
func NewSeeded(sources ...SeedSource) *Generator {
	g := New()
	if len(sources) == 0 {
		sources = defaultSources()
	}
	for _, src := range sources {
		g.SeedData(src.Gather())
	}
	g.SeedFinish()
	return g
}
