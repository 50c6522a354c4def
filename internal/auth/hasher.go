package auth

import (
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/argon2"
)

// Argon2i parameters. Changing any of these invalidates every stored digest.
const (
	hashTime    = 3
	hashMemory  = 32 * 1024
	hashThreads = 4
	hashKeyLen  = 32
)

// Hasher derives deterministic, salted argon2i digests from plaintext
// passwords. The salt is resolved once at startup and shared process-wide, so
// the same plaintext always maps to the same digest and digests stay
// comparable across restarts. It knows nothing about users or sessions.
type Hasher struct {
	salt []byte
}

// NewHasher returns a Hasher bound to the given salt.
func NewHasher(salt string) *Hasher {
	return &Hasher{salt: []byte(salt)}
}

// Hash returns the hex-encoded argon2i digest of password.
func (h *Hasher) Hash(password string) string {
	digest := argon2.Key([]byte(password), h.salt, hashTime, hashMemory, hashThreads, hashKeyLen)
	return hex.EncodeToString(digest)
}

// Verify reports whether password hashes to digest. The comparison is
// constant-time to avoid leaking how many leading bytes matched.
func (h *Hasher) Verify(password, digest string) bool {
	return subtle.ConstantTimeCompare([]byte(h.Hash(password)), []byte(digest)) == 1
}
