package jwt

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"time"
)

// TokenType distinguishes access tokens from refresh tokens.
type TokenType string

const (
	TypeAccess  TokenType = "access"
	TypeRefresh TokenType = "refresh"
)

// Reserved claim keys set by the issuer. Caller-supplied extra claims
// never overwrite these.
const (
	ClaimSubject   = "sub"
	ClaimTokenID   = "jti"
	ClaimTokenType = "type"
	ClaimIssuedAt  = "iat"
	ClaimExpiresAt = "exp"
)

// requiredClaims must all be present for a token to verify.
// Requiring jti and type even though the signature doesn't need them
// keeps the door open for revocation lists and type-specific rules
// without re-issuing the fleet's tokens.
var requiredClaims = []string{ClaimSubject, ClaimTokenID, ClaimTokenType, ClaimIssuedAt, ClaimExpiresAt}

// Claims is the decoded payload of a verified token.
type Claims struct {
	// Subject is the caller-supplied identity string. Opaque to imbikit.
	Subject string

	// TokenID is a random URL-safe identifier unique to this issuance.
	TokenID string

	// TokenType is "access" or "refresh".
	TokenType TokenType

	IssuedAt  time.Time
	ExpiresAt time.Time

	// Extra holds caller-supplied claims from issuance (access tokens only).
	Extra map[string]any
}

// newTokenID returns a fresh jti: 16 bytes from crypto/rand, base64url
// without padding (22 characters).
func newTokenID() (string, error) {
	b := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return "", fmt.Errorf("jwt: generate token id: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
