package store

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"pacifisai/internal/util"
	"pacifisai/pkg/domain"
)

// sessionClaims carries the identity inside a signed session token.
type sessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTSessionStore issues HS256-signed session tokens carrying the identity.
// Logout is implemented with a revocation list keyed by token ID, so the
// store works across instances without shared session state.
type JWTSessionStore struct {
	secret  []byte
	ttl     time.Duration
	issuer  string
	revoker TokenRevoker
}

// NewJWTSessionStore builds a signed-token session store. A nil revoker
// falls back to an in-memory revocation list.
func NewJWTSessionStore(secret string, ttl time.Duration, revoker TokenRevoker) (*JWTSessionStore, error) {
	if secret == "" {
		return nil, errors.New("jwt session secret is required")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if revoker == nil {
		revoker = NewMemoryTokenRevoker()
	}
	return &JWTSessionStore{
		secret:  []byte(secret),
		ttl:     ttl,
		issuer:  "pacifisai-auth",
		revoker: revoker,
	}, nil
}

// NewSession signs a token embedding the identity.
func (s *JWTSessionStore) NewSession(identity domain.Identity) (string, error) {
	now := time.Now().UTC()
	claims := sessionClaims{
		Email: identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        util.NewID(),
			Subject:   identity.ID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// GetIdentityByToken verifies the signature, expiry, and revocation list.
// Any invalid token reads as absence, never as an error.
func (s *JWTSessionStore) GetIdentityByToken(token string) (domain.Identity, bool, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return domain.Identity{}, false, nil
	}
	revoked, err := s.revoker.IsRevoked(claims.ID)
	if err != nil {
		return domain.Identity{}, false, fmt.Errorf("check revocation: %w", err)
	}
	if revoked {
		return domain.Identity{}, false, nil
	}
	return domain.Identity{ID: claims.Subject, Email: claims.Email}, true, nil
}

// DeleteSession revokes the token until its expiry. Tokens that no longer
// verify are already dead and need no revocation entry.
func (s *JWTSessionStore) DeleteSession(token string) error {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid || claims.ID == "" {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	return s.revoker.Revoke(claims.ID, ttl)
}
