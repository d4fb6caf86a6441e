package lobby

import (
	"crypto/rand"
	"fmt"
)

// codeAlphabet is the 32-character alphabet from §4.11: digits 2-9 and
// uppercase letters excluding I, O, 0, 1 (visually ambiguous characters).
const codeAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

const codeLength = 4

// newCode draws a fresh 4-character join code from codeAlphabet using
// crypto/rand, the same entropy source internal/platform/id uses.
func newCode() (string, error) {
	var raw [codeLength]byte
	if _, err := rand.Read(raw[:]); err != nil {
		return "", fmt.Errorf("lobby: read random bytes: %w", err)
	}
	out := make([]byte, codeLength)
	for i, b := range raw {
		out[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(out), nil
}
