package security

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenMalformed      = errors.New("token is malformed")
	ErrTokenSignature      = errors.New("token signature is invalid")
	ErrTokenExpired        = errors.New("token has expired")
	ErrTokenMissingSubject = errors.New("token does not carry a subject")
)

type Claims struct {
	jwt.RegisteredClaims
}

// UserID decodes the numeric subject embedded at signing time.
func (c *Claims) UserID() (uint, error) {
	if c.Subject == "" {
		return 0, ErrTokenMissingSubject
	}
	id64, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil || id64 == 0 {
		return 0, ErrTokenMissingSubject
	}
	return uint(id64), nil
}

// JWTManager issues and verifies the self-contained bearer tokens that carry
// identity between requests. Tokens are HS256-signed with a process-wide
// secret and expire after a fixed TTL; there is no revocation list, so a
// token stays valid for its full TTL even after a password change.
type JWTManager struct {
	issuer   string
	audience string
	secret   []byte
	ttl      time.Duration
}

func NewJWTManager(issuer, audience, secret string, ttl time.Duration) *JWTManager {
	return &JWTManager{issuer: issuer, audience: audience, secret: []byte(secret), ttl: ttl}
}

func (m *JWTManager) TTL() time.Duration { return m.ttl }

func (m *JWTManager) Sign(userID uint) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			Issuer:    m.issuer,
			Audience:  jwt.ClaimStrings{m.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Parse verifies structure, signature and expiry, in that order of reporting:
// a tampered or garbled token never decodes into usable claims.
func (m *JWTManager) Parse(raw string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithAudience(m.audience),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrTokenSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		default:
			return nil, err
		}
	}
	if claims.Subject == "" {
		return nil, ErrTokenMissingSubject
	}
	return claims, nil
}
