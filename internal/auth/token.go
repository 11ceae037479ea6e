package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the fixed lifetime of an issued bearer token.
// There is no sliding expiry and no refresh flow; clients re-authenticate
// after 24 hours.
const TokenTTL = 24 * time.Hour

// Claims is the JWT claim set carried by Innkeeper bearer tokens.
// Subject holds the authenticated username.
type Claims struct {
	jwt.RegisteredClaims
}

// GenerateToken creates a signed HS256 JWT for a username.
//
// The claim set is {sub: username, iat: now, exp: now + TokenTTL}; the token
// is a compact, URL-safe, self-contained string validated without any
// server-side session state.
//
// Parameters:
//   - username: Subject of the token
//   - secret: Server-wide signing secret
//   - now: Issuance instant (injected for testability)
//
// Returns:
//   - string: Signed compact token
//   - error: If signing fails
func GenerateToken(username string, secret []byte, now time.Time) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// ParseToken validates and parses a bearer token, returning its claims.
//
// It checks the signature (HS256 only — any other algorithm is rejected),
// then the expiry against the supplied instant. Expiry is strict: a token
// whose exp equals now is already expired. Every failure — malformed input,
// wrong segment count, bad signature, expired claim — comes back as an error
// wrapping ErrTokenInvalid; callers are not expected to distinguish them.
//
// Parameters:
//   - tokenString: Compact token as presented by the client
//   - secret: Server-wide signing secret
//   - now: Verification instant (injected for testability)
//
// Returns:
//   - *Claims: Parsed claims on success
//   - error: Wrapping ErrTokenInvalid on any rejection
func ParseToken(tokenString string, secret []byte, now time.Time) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(_ *jwt.Token) (any, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrTokenInvalid)
	}

	return claims, nil
}
