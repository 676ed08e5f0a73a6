// Package jwt issues and verifies the signed bearer tokens shared by
// Imbi backend services.
//
// Access and refresh tokens carry five reserved claims (sub, jti, type,
// iat, exp); access tokens may additionally carry caller-supplied extra
// claims. Any service holding the shared secret can verify a token
// issued by any other.
//
// Usage:
//
//	svc, err := jwt.NewService(&jwt.Config{Secret: secret})
//	token, err := svc.IssueAccess("user@example.com", map[string]any{"role": "admin"})
//	claims, err := svc.Verify(token)
package jwt

import (
	"errors"
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"

	"github.com/imbi-platform/imbikit/util"
)

// Service issues and verifies signed tokens. Immutable after
// construction and safe for concurrent use.
type Service struct {
	cfg Config
}

// NewService creates a JWT service from the given configuration.
func NewService(cfg *Config) (*Service, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Service{cfg: *cfg}, nil
}

// IssueAccess builds and signs an access token for subject, valid for
// AccessTokenTTL. Extra claims are merged into the payload; reserved
// claims always win over same-named extras.
func (s *Service) IssueAccess(subject string, extra map[string]any) (string, error) {
	return s.issue(subject, TypeAccess, s.cfg.AccessTokenTTL, extra)
}

// IssueRefresh builds and signs a refresh token for subject, valid for
// RefreshTokenTTL. Refresh tokens carry only the reserved claims to
// keep their replay value minimal.
func (s *Service) IssueRefresh(subject string) (string, error) {
	return s.issue(subject, TypeRefresh, s.cfg.RefreshTokenTTL, nil)
}

func (s *Service) issue(subject string, typ TokenType, ttl time.Duration, extra map[string]any) (string, error) {
	if subject == "" {
		return "", ErrEmptySubject
	}

	jti, err := newTokenID()
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	claims := gojwt.MapClaims{}
	for k, v := range extra {
		claims[k] = v
	}
	// Reserved claims are assigned last so they overwrite any extras.
	claims[ClaimSubject] = subject
	claims[ClaimTokenID] = jti
	claims[ClaimTokenType] = string(typ)
	claims[ClaimIssuedAt] = gojwt.NewNumericDate(now)
	claims[ClaimExpiresAt] = gojwt.NewNumericDate(now.Add(ttl))

	token := gojwt.NewWithClaims(s.cfg.signingMethod(), claims)
	signed, err := token.SignedString(s.cfg.signKey())
	if err != nil {
		return "", fmt.Errorf("jwt: sign token: %w", err)
	}
	return signed, nil
}

// Verify decodes tokenString and checks, in order: signature validity
// under the configured secret and algorithm, presence of all reserved
// claims, and expiry against the current time. Failures map to
// ErrSignatureInvalid, ErrTokenMalformed, MissingClaimError, or
// ErrTokenExpired.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	mc := gojwt.MapClaims{}
	_, err := gojwt.ParseWithClaims(tokenString, mc, s.keyFunc,
		gojwt.WithValidMethods([]string{s.cfg.signingMethod().Alg()}),
		// Claim checks run below so that presence is reported before expiry.
		gojwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return nil, mapParseError(err)
	}

	for _, name := range requiredClaims {
		if _, ok := mc[name]; !ok {
			return nil, &MissingClaimError{Claim: name}
		}
	}

	exp, err := mc.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, fmt.Errorf("%w: invalid exp claim", ErrTokenMalformed)
	}
	if time.Now().After(exp.Time) {
		return nil, ErrTokenExpired
	}

	return decodeClaims(mc, exp.Time)
}

// keyFunc pins the signing algorithm before handing out the secret.
func (s *Service) keyFunc(token *gojwt.Token) (any, error) {
	if token.Method.Alg() != s.cfg.signingMethod().Alg() {
		return nil, fmt.Errorf("jwt: unexpected signing method: %s", token.Method.Alg())
	}
	return s.cfg.signKey(), nil
}

// mapParseError translates golang-jwt parse failures into the package's
// sentinel errors.
func mapParseError(err error) error {
	switch {
	case errors.Is(err, gojwt.ErrTokenSignatureInvalid):
		return fmt.Errorf("%w: %v", ErrSignatureInvalid, err)
	case errors.Is(err, gojwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	default:
		return fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	}
}

// decodeClaims projects the raw claim map into a typed Claims value.
// Reserved claims of the wrong JSON type render the token malformed.
func decodeClaims(mc gojwt.MapClaims, expiresAt time.Time) (*Claims, error) {
	sub, err := util.UnwrapAs[string](mc[ClaimSubject])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid sub claim", ErrTokenMalformed)
	}
	jti, err := util.UnwrapAs[string](mc[ClaimTokenID])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid jti claim", ErrTokenMalformed)
	}
	typ, err := util.UnwrapAs[string](mc[ClaimTokenType])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid type claim", ErrTokenMalformed)
	}
	if TokenType(typ) != TypeAccess && TokenType(typ) != TypeRefresh {
		return nil, fmt.Errorf("%w: unknown token type %q", ErrTokenMalformed, typ)
	}
	iat, err := mc.GetIssuedAt()
	if err != nil || iat == nil {
		return nil, fmt.Errorf("%w: invalid iat claim", ErrTokenMalformed)
	}

	claims := &Claims{
		Subject:   sub,
		TokenID:   jti,
		TokenType: TokenType(typ),
		IssuedAt:  iat.Time,
		ExpiresAt: expiresAt,
	}
	for k, v := range mc {
		switch k {
		case ClaimSubject, ClaimTokenID, ClaimTokenType, ClaimIssuedAt, ClaimExpiresAt:
		default:
			if claims.Extra == nil {
				claims.Extra = make(map[string]any)
			}
			claims.Extra[k] = v
		}
	}
	return claims, nil
}
