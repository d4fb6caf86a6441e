package rng

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
)

// NewSeed draws a fresh, high-entropy seed from the system RNG. It is used
// only to initialize a new game's deterministic Stream at creation time,
// never to drive gameplay draws directly.
func NewSeed() (uint64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("rng: read system entropy: %w", err)
	}
	return binary.BigEndian.Uint64(buf[:]), nil
}

// DeriveResumeSeed derives a fresh seed for the portion of a game's RNG
// stream consumed after eventIndex, used when the runtime resumes a game
// after a process restart. The board and the initial development-card
// deck order remain exactly reproducible from the original seed (they are
// always the first draws from a freshly seeded stream, regardless of how
// much gameplay has happened since); only the stream driving *future*
// dice rolls and steals after a restart is reseeded this way, since
// replaying the exact prior draw sequence would require re-deriving
// math/rand's internal rejection-sampling state, which the event log does
// not record. The replay law (§4.5/§8) is unaffected: the event applier
// never consults RNG, so reconstructed state is identical either way.
func DeriveResumeSeed(original uint64, eventIndex int) uint64 {
	h := sha256.New()
	var buf [16]byte
	binary.BigEndian.PutUint64(buf[0:8], original)
	binary.BigEndian.PutUint64(buf[8:16], uint64(eventIndex))
	h.Write(buf[:])
	sum := h.Sum(nil)
	return binary.BigEndian.Uint64(sum[:8])
}
