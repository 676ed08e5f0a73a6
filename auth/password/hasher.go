// Package password provides password hashing and verification for Imbi
// services.
//
// It defines a Hasher interface with two implementations:
//   - Argon2Hasher: memory-hard argon2id hashing (default)
//   - BcryptHasher: bcrypt hashing for compatibility with older stores
//
// Hashes are self-describing strings embedding algorithm, parameters,
// salt, and digest, so verification needs no external bookkeeping.
// A wrong password is a normal (false, nil) outcome, not an error;
// only a hash outside the hasher's format family produces
// ErrUnsupportedHash. Password strength policy is enforced by callers
// (see settings.Auth), not here: the empty string hashes like any other.
//
// Usage:
//
//	hasher := password.NewArgon2Hasher()
//	hash, err := hasher.Hash("my-password")
//	ok, err := hasher.Verify("my-password", hash)
package password

import (
	"crypto/rand"
	"errors"
	"io"
)

// ErrUnsupportedHash is returned by Verify and NeedsRehash when the
// stored hash was not produced by this hasher's algorithm family.
var ErrUnsupportedHash = errors.New("password: unsupported hash format")

// Hasher defines the interface for password hashing and verification.
type Hasher interface {
	// Hash returns a self-describing hashed representation of the
	// password. A fresh random salt is used per call, so hashing the
	// same password twice yields different strings.
	Hash(password string) (string, error)

	// Verify reports whether password matches the given hash.
	// A mismatch is (false, nil); an error means hash is malformed or
	// of an unsupported algorithm family.
	Verify(password, hash string) (bool, error)

	// NeedsRehash reports whether the hash was produced with cost
	// parameters differing from the hasher's current configuration,
	// enabling lazy rehash-on-login after a policy change.
	NeedsRehash(hash string) (bool, error)
}

// generateRandomBytes returns cryptographically secure random bytes.
func generateRandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, err
	}
	return b, nil
}
