package auth

import (
	"fmt"

	"github.com/imbi-platform/imbikit/auth/jwt"
	"github.com/imbi-platform/imbikit/auth/password"
	"github.com/imbi-platform/imbikit/encryption"
	"github.com/imbi-platform/imbikit/settings"
)

// Service bundles the authentication primitives an Imbi service needs:
// password hashing, token issuance and verification, and encryption of
// tokens at rest. The fields are exported so callers that need only one
// primitive can use it directly.
type Service struct {
	Tokens      *jwt.Service
	Passwords   password.Hasher
	TokenCipher encryption.Encryptor
}

// New builds a Service from the auth section of the resolved settings.
func New(cfg *settings.Auth) (*Service, error) {
	jwtCfg := &jwt.Config{
		Secret:          cfg.JWTSecret,
		Method:          jwt.SigningMethod(cfg.JWTAlgorithm),
		AccessTokenTTL:  cfg.AccessTokenTTL(),
		RefreshTokenTTL: cfg.RefreshTokenTTL(),
	}
	tokens, err := jwt.NewService(jwtCfg)
	if err != nil {
		return nil, fmt.Errorf("auth: build token service: %w", err)
	}

	cipher, err := encryption.New(cfg.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("auth: build token cipher: %w", err)
	}

	return &Service{
		Tokens:      tokens,
		Passwords:   password.NewHasher(password.Config{}),
		TokenCipher: cipher,
	}, nil
}

// Default builds a Service from the process-wide settings singleton.
func Default() (*Service, error) {
	cfg, err := settings.Get()
	if err != nil {
		return nil, err
	}
	return New(&cfg.Auth)
}

// HashPassword hashes a plaintext password for storage.
func (s *Service) HashPassword(plaintext string) (string, error) {
	return s.Passwords.Hash(plaintext)
}

// VerifyPassword reports whether plaintext matches the stored hash.
// A mismatch is (false, nil); errors are reserved for hashes the
// configured hasher cannot interpret.
func (s *Service) VerifyPassword(plaintext, hash string) (bool, error) {
	return s.Passwords.Verify(plaintext, hash)
}

// NeedsRehash reports whether a stored hash was produced with weaker
// parameters than currently configured and should be regenerated on the
// next successful login.
func (s *Service) NeedsRehash(hash string) (bool, error) {
	return s.Passwords.NeedsRehash(hash)
}

// CreateAccessToken issues a signed access token for subject. Extra
// claims are embedded alongside the reserved ones; reserved claim names
// in extra are ignored.
func (s *Service) CreateAccessToken(subject string, extra map[string]any) (string, error) {
	return s.Tokens.IssueAccess(subject, extra)
}

// CreateRefreshToken issues a signed refresh token for subject.
func (s *Service) CreateRefreshToken(subject string) (string, error) {
	return s.Tokens.IssueRefresh(subject)
}

// VerifyToken checks the signature, required claims, and expiry of a
// token and returns its decoded claims.
func (s *Service) VerifyToken(tokenString string) (*jwt.Claims, error) {
	return s.Tokens.Verify(tokenString)
}

// EncryptToken encrypts a token for storage at rest.
func (s *Service) EncryptToken(token string) (string, error) {
	return s.TokenCipher.Encrypt(token)
}

// DecryptToken reverses EncryptToken.
func (s *Service) DecryptToken(ciphertext string) (string, error) {
	return s.TokenCipher.Decrypt(ciphertext)
}
