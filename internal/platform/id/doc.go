// Package id generates unguessable, lexically compact identifiers.
//
// Identifiers are UUIDv4 values encoded as 26-character lowercase base32
// strings (no padding), which keeps them URL-safe and shorter than the
// canonical hyphenated UUID form while remaining collision-resistant.
package id
