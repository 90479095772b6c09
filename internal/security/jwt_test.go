package security

import (
	"errors"
	"testing"
	"time"
)

const testSecret = "abcdefghijklmnopqrstuvwxyz123456"

func newTestManager(ttl time.Duration) *JWTManager {
	return NewJWTManager("stuma-api", "stuma-api-clients", testSecret, ttl)
}

func TestSignAndParseRoundTrip(t *testing.T) {
	m := newTestManager(time.Hour)
	token, err := m.Sign(42)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	id, err := claims.UserID()
	if err != nil {
		t.Fatalf("user id: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected subject 42, got %d", id)
	}
}

func TestParseExpiredToken(t *testing.T) {
	m := newTestManager(-time.Minute)
	token, err := m.Sign(7)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := m.Parse(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestParseTamperedSignature(t *testing.T) {
	m := newTestManager(time.Hour)
	token, err := m.Sign(7)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	raw := []byte(token)
	last := raw[len(raw)-1]
	if last == 'A' {
		raw[len(raw)-1] = 'B'
	} else {
		raw[len(raw)-1] = 'A'
	}
	if _, err := m.Parse(string(raw)); !errors.Is(err, ErrTokenSignature) {
		t.Fatalf("expected ErrTokenSignature, got %v", err)
	}
}

func TestParseForeignSecret(t *testing.T) {
	m := newTestManager(time.Hour)
	other := NewJWTManager("stuma-api", "stuma-api-clients", "zyxwvutsrqponmlkjihgfedcba654321", time.Hour)
	token, err := other.Sign(7)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := m.Parse(token); !errors.Is(err, ErrTokenSignature) {
		t.Fatalf("expected ErrTokenSignature, got %v", err)
	}
}

func TestParseGarbledToken(t *testing.T) {
	m := newTestManager(time.Hour)
	for _, raw := range []string{"not-a-token", "a.b", "....", "header.payload"} {
		if _, err := m.Parse(raw); !errors.Is(err, ErrTokenMalformed) {
			t.Fatalf("expected ErrTokenMalformed for %q, got %v", raw, err)
		}
	}
}

func TestClaimsUserIDRejectsMissingOrBadSubject(t *testing.T) {
	cases := []string{"", "abc", "0", "-5"}
	for _, sub := range cases {
		c := &Claims{}
		c.Subject = sub
		if _, err := c.UserID(); !errors.Is(err, ErrTokenMissingSubject) {
			t.Fatalf("expected ErrTokenMissingSubject for subject %q, got %v", sub, err)
		}
	}
}

func TestIdentityFromClaimsCopiesTimestamps(t *testing.T) {
	m := newTestManager(time.Hour)
	token, err := m.Sign(9)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	ident, err := IdentityFromClaims(claims)
	if err != nil {
		t.Fatalf("identity: %v", err)
	}
	if ident.UserID != 9 {
		t.Fatalf("expected user 9, got %d", ident.UserID)
	}
	if ident.ExpiresAt.Before(ident.IssuedAt) {
		t.Fatalf("expiry %v before issue %v", ident.ExpiresAt, ident.IssuedAt)
	}
	if got := ident.ExpiresAt.Sub(ident.IssuedAt); got != time.Hour {
		t.Fatalf("expected 1h lifetime, got %v", got)
	}
}
