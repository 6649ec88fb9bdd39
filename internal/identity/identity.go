// Package identity authenticates HTTP callers with HS256 bearer tokens and
// exposes the caller identity to request handlers. The core application layer
// never sees token plumbing; it receives an already-resolved Caller.
package identity

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenInvalid is returned when a token fails signature or claims validation.
	ErrTokenInvalid = errors.New("token is invalid")
	// ErrTokenExpired is returned when a token is past its expiry.
	ErrTokenExpired = errors.New("token has expired")
)

// Caller is the authenticated identity attached to a request.
type Caller struct {
	ID       string
	Username string
	Roles    []string
}

// HasRole reports whether the caller carries the given realm role.
func (c Caller) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// realmAccess mirrors the realm_access claim layout issued by Keycloak.
type realmAccess struct {
	Roles []string `json:"roles"`
}

// Claims represents the JWT claims of an access token.
type Claims struct {
	PreferredUsername string      `json:"preferred_username"`
	RealmAccess       realmAccess `json:"realm_access"`
	jwt.RegisteredClaims
}

// TokenService validates and issues HS256 access tokens.
type TokenService struct {
	signingKey []byte
	issuer     string
}

// NewTokenService creates a token service with the given signing key and issuer.
func NewTokenService(signingKey string, issuer string) *TokenService {
	return &TokenService{
		signingKey: []byte(signingKey),
		issuer:     issuer,
	}
}

// GenerateToken issues a signed access token for the caller.
func (s *TokenService) GenerateToken(caller Caller, expiresIn time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		PreferredUsername: caller.Username,
		RealmAccess:       realmAccess{Roles: caller.Roles},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   caller.ID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
		},
	})

	return token.SignedString(s.signingKey)
}

// ValidateToken parses and verifies a token string and resolves the caller.
func (s *TokenService) ValidateToken(tokenString string) (Caller, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return s.signingKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Caller{}, ErrTokenExpired
		}
		return Caller{}, ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return Caller{}, ErrTokenInvalid
	}

	return Caller{
		ID:       claims.Subject,
		Username: claims.PreferredUsername,
		Roles:    claims.RealmAccess.Roles,
	}, nil
}
