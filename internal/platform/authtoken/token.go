// Package authtoken issues and verifies opaque session tokens: a random
// body plus an HMAC over that body, so verification never needs a database
// round trip to reject a forged token outright. Adapted from the same
// crypto/hmac + crypto/hkdf primitives as internal/store/integrity, applied
// to session tokens instead of event chain hashes (§6 Auth token).
package authtoken

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

// Lifetime is the fixed session lifetime per §6.
const Lifetime = 7 * 24 * time.Hour

const bodyBytes = 32

// Issuer signs and verifies opaque session tokens with a single HMAC key.
type Issuer struct {
	key []byte
}

// NewIssuer constructs an Issuer from a secret key.
func NewIssuer(key []byte) (*Issuer, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("authtoken: key is required")
	}
	return &Issuer{key: key}, nil
}

// Issue returns a new opaque token: base64(random_body) "." base64(hmac).
func (s *Issuer) Issue() (string, error) {
	if s == nil {
		return "", fmt.Errorf("authtoken: issuer is not configured")
	}
	body := make([]byte, bodyBytes)
	if _, err := rand.Read(body); err != nil {
		return "", fmt.Errorf("authtoken: read random bytes: %w", err)
	}
	sig := s.sign(body)
	return encode(body) + "." + encode(sig), nil
}

// Verify recomputes the HMAC over the token's random body and reports
// whether it matches the signature the token carries.
func (s *Issuer) Verify(token string) error {
	if s == nil {
		return fmt.Errorf("authtoken: issuer is not configured")
	}
	parts := strings.SplitN(token, ".", 2)
	if len(parts) != 2 {
		return fmt.Errorf("authtoken: malformed token")
	}
	body, err := decode(parts[0])
	if err != nil {
		return fmt.Errorf("authtoken: decode body: %w", err)
	}
	sig, err := decode(parts[1])
	if err != nil {
		return fmt.Errorf("authtoken: decode signature: %w", err)
	}
	if !hmac.Equal(s.sign(body), sig) {
		return fmt.Errorf("authtoken: signature mismatch")
	}
	return nil
}

func (s *Issuer) sign(body []byte) []byte {
	mac := hmac.New(sha256.New, s.key)
	_, _ = mac.Write(body)
	return mac.Sum(nil)
}

func encode(b []byte) string { return base64.RawURLEncoding.EncodeToString(b) }
func decode(s string) ([]byte, error) { return base64.RawURLEncoding.DecodeString(s) }
