package isaac

import (
	"github.com/opd-ai/go-isaac/entropy"
)

// defaultSources adapts the entropy package's production chain to the
// SeedSource interface.
func defaultSources() []SeedSource {
	defaults := entropy.Defaults()
	sources := make([]SeedSource, len(defaults))
	for i, src := range defaults {
		sources[i] = src
	}
	return sources
}
