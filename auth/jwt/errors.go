package jwt

import "errors"

// Verification failures are distinct so callers can branch on them:
// an expired token warrants a refresh flow, a tampered one does not.
var (
	// ErrSignatureInvalid means the signature does not verify under the
	// configured secret and algorithm.
	ErrSignatureInvalid = errors.New("jwt: signature invalid")

	// ErrTokenMalformed means the token is not a parseable JWT or carries
	// claims of an unexpected shape.
	ErrTokenMalformed = errors.New("jwt: token malformed")

	// ErrTokenExpired means the token verified but its exp is in the past.
	ErrTokenExpired = errors.New("jwt: token expired")

	// ErrEmptySubject is returned at issuance when subject is empty.
	ErrEmptySubject = errors.New("jwt: subject is required")
)

// MissingClaimError reports a token that verified cryptographically but
// lacks one of the required claims.
type MissingClaimError struct {
	Claim string
}

func (e *MissingClaimError) Error() string {
	return "jwt: missing required claim: " + e.Claim
}
