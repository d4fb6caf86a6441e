// Package migrations contains embedded SQL migrations for the event/snapshot
// store, adapted from the auth service's migrations package in the teacher
// tree (same embed.FS + "-- +migrate Up/Down" marker convention).
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
