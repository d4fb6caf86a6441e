package errors

// Code is a machine-readable internal error code.
type Code string

const (
	// CodeUnknown represents an unclassified error.
	CodeUnknown Code = "UNKNOWN"

	// CodeNotFound indicates a requested record is missing.
	CodeNotFound Code = "NOT_FOUND"
	// CodeActiveGameExists indicates a lobby already produced a game.
	CodeActiveGameExists Code = "ACTIVE_GAME_EXISTS"
	// CodeEventSeqConflict indicates a non-contiguous event append was attempted.
	CodeEventSeqConflict Code = "EVENT_SEQ_CONFLICT"
	// CodeEventHashMismatch indicates a stored event's chain hash failed verification.
	CodeEventHashMismatch Code = "EVENT_HASH_MISMATCH"
	// CodeStorageUnavailable indicates the persistence layer rejected the call.
	CodeStorageUnavailable Code = "STORAGE_UNAVAILABLE"
	// CodeInvariantBreach indicates a state invariant was violated after a reduce step.
	CodeInvariantBreach Code = "INVARIANT_BREACH"
)

// Retryable reports whether a caller may reasonably retry the operation that
// produced this code without changing its input.
func (c Code) Retryable() bool {
	switch c {
	case CodeStorageUnavailable:
		return true
	default:
		return false
	}
}
