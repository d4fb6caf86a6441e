package rng

import "github.com/btuckerc/traderoads/internal/catan/resource"

// SampleSteal samples one resource type from bundle with probability
// proportional to its count. The caller must ensure bundle.Total() > 0; the
// validator's eligible-victim computation already filters to non-empty
// hands, so this should never see an empty bundle in practice.
func SampleSteal(s *Stream, bundle resource.Bundle) resource.Type {
	total := bundle.Total()
	if total == 0 {
		panic("rng: SampleSteal called with an empty bundle")
	}
	pick := s.Intn(total)
	for _, t := range resource.All() {
		n := bundle[t]
		if pick < n {
			return t
		}
		pick -= n
	}
	panic("rng: unreachable: pick exceeded bundle total")
}
