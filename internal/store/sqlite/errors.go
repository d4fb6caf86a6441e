package sqlite

import "github.com/btuckerc/traderoads/internal/platform/errors"

// ErrNotFound is returned when a lookup finds no matching row.
var ErrNotFound = errors.New(errors.CodeNotFound, "sqlite: no such row")

// ErrEventSeqConflict is returned by AppendEvents when the caller's first
// new index does not immediately follow the highest index already stored
// for the game (§4.9 "the store must reject gaps").
var ErrEventSeqConflict = errors.New(errors.CodeEventSeqConflict, "sqlite: non-contiguous event append")
