// Package encryption provides authenticated symmetric encryption for
// tokens persisted at rest by Imbi services.
//
// Tokens are sealed with AES-256-GCM (or optionally ChaCha20-Poly1305)
// under a key derived from the configured passphrase via SHA-256. The
// output is an opaque base64url string embedding nonce, ciphertext, and
// authentication tag; a fresh nonce per call means the same plaintext
// never encrypts to the same ciphertext twice.
//
// # Usage
//
//	enc, err := encryption.New(cfg.EncryptionKey)
//	sealed, err := enc.Encrypt(refreshToken)
//	token, err := enc.Decrypt(sealed)
package encryption
