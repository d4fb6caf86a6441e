// Package rng provides the deterministic, seedable pseudo-random stream
// consumed by the reducer for dice, shuffles, and resource-steal sampling.
// The same seed always yields the same sequence, independent of process or
// machine, so a game's history is reproducible from its seed alone (though
// replay from the event log remains the normative reconstruction path).
package rng

import "math/rand"

// Stream is a deterministic pseudo-random source bound to one game.
type Stream struct {
	r *rand.Rand
}

// New returns a stream seeded deterministically from seed.
func New(seed uint64) *Stream {
	return &Stream{r: rand.New(rand.NewSource(int64(seed)))}
}

// Uint64 returns the next pseudo-random 64-bit value in the stream.
func (s *Stream) Uint64() uint64 {
	return s.r.Uint64()
}

// Intn returns a pseudo-random int in [0, n).
func (s *Stream) Intn(n int) int {
	return s.r.Intn(n)
}

// Shuffle permutes n items in place via swap. Its signature matches
// board.Shuffler, so a Stream's Shuffle method value can be passed directly
// as the shuffle callback for board.New.
func (s *Stream) Shuffle(n int, swap func(i, j int)) {
	s.r.Shuffle(n, swap)
}
