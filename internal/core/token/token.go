// Package token implements the signed bearer-token codec: HMAC-SHA256 JWTs
// carrying the subject email and role, valid for a fixed lifetime.
//
// The signing secret is process-wide: it is handed to NewCodec once at
// startup and never leaves this package.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the token lifetime applied when none is configured.
const DefaultTTL = time.Hour

// Decode failures, classified for internal use. The HTTP boundary collapses
// all three to a single 401 so a caller cannot probe why a token failed.
var (
	ErrMalformed    = errors.New("malformed token")
	ErrBadSignature = errors.New("invalid token signature")
	ErrExpired      = errors.New("token expired")
)

// Claims is the payload encoded into every issued token. Subject is the
// user's email.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Codec issues and decodes signed tokens.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewCodec returns a Codec signing with secret. If ttl <= 0, DefaultTTL is
// used.
func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token for the given subject email and role, expiring
// ttl from now.
func (c *Codec) Issue(email, role string) (string, error) {
	now := c.now().UTC()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Decode verifies the signature and expiry of a token string and returns its
// claims. It is a pure function of the token and the current time: no state
// is read or written, and a valid token is never implicitly renewed.
func (c *Codec) Decode(tokenString string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		// Pin the algorithm so a token cannot downgrade to "none" or
		// smuggle an asymmetric header.
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(c.now))
	if err != nil {
		return nil, classify(err)
	}
	if !tkn.Valid || claims.Subject == "" {
		return nil, ErrMalformed
	}
	return claims, nil
}

// classify maps jwt/v5 parse errors onto this package's taxonomy.
func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrBadSignature
	default:
		return ErrMalformed
	}
}
