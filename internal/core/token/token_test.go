package token

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"
)

func TestCodec_RoundTrip(t *testing.T) {
	c := NewCodec("secret", time.Hour)

	signed, err := c.Issue("alice@example.com", "EMPLOYEE")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := c.Decode(signed)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if claims.Subject != "alice@example.com" {
		t.Fatalf("unexpected subject: %q", claims.Subject)
	}
	if claims.Role != "EMPLOYEE" {
		t.Fatalf("unexpected role: %q", claims.Role)
	}
	if !claims.ExpiresAt.After(claims.IssuedAt.Time) {
		t.Fatalf("expiry %v not after issuance %v", claims.ExpiresAt, claims.IssuedAt)
	}
}

func TestCodec_TamperedPayload(t *testing.T) {
	c := NewCodec("secret", time.Hour)

	signed, err := c.Issue("alice@example.com", "EMPLOYEE")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Rewrite the payload with an escalated role, keeping the original
	// signature. The payload stays well-formed, so only the MAC can catch it.
	parts := strings.Split(signed, ".")
	if len(parts) != 3 {
		t.Fatalf("expected 3 token segments, got %d", len(parts))
	}
	decoded, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	forged := strings.Replace(string(decoded), "EMPLOYEE", "ADMIN", 1)
	parts[1] = base64.RawURLEncoding.EncodeToString([]byte(forged))
	tampered := strings.Join(parts, ".")

	if _, err := c.Decode(tampered); err != ErrBadSignature {
		t.Fatalf("expected ErrBadSignature, got %v", err)
	}
}

func TestCodec_TamperedSignature(t *testing.T) {
	c := NewCodec("secret", time.Hour)

	signed, err := c.Issue("alice@example.com", "EMPLOYEE")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	sig := []byte(signed)
	if sig[len(sig)-1] == 'A' {
		sig[len(sig)-1] = 'B'
	} else {
		sig[len(sig)-1] = 'A'
	}

	if _, err := c.Decode(string(sig)); err != ErrBadSignature {
		t.Fatalf("expected ErrBadSignature, got %v", err)
	}
}

func TestCodec_WrongSecret(t *testing.T) {
	issuer := NewCodec("secret-a", time.Hour)
	verifier := NewCodec("secret-b", time.Hour)

	signed, err := issuer.Issue("alice@example.com", "EMPLOYEE")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := verifier.Decode(signed); err != ErrBadSignature {
		t.Fatalf("expected ErrBadSignature, got %v", err)
	}
}

func TestCodec_Expired(t *testing.T) {
	c := NewCodec("secret", time.Hour)

	issuedAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return issuedAt }

	signed, err := c.Issue("alice@example.com", "EMPLOYEE")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Still valid one minute before expiry.
	c.now = func() time.Time { return issuedAt.Add(59 * time.Minute) }
	if _, err := c.Decode(signed); err != nil {
		t.Fatalf("token should still be valid: %v", err)
	}

	// Invalid at and after expiry.
	c.now = func() time.Time { return issuedAt.Add(61 * time.Minute) }
	if _, err := c.Decode(signed); err != ErrExpired {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestCodec_Malformed(t *testing.T) {
	c := NewCodec("secret", time.Hour)

	for _, tok := range []string{"", "not-a-token", "a.b", "a.b.c.d"} {
		if _, err := c.Decode(tok); err != ErrMalformed {
			t.Fatalf("token %q: expected ErrMalformed, got %v", tok, err)
		}
	}
}

func TestCodec_DefaultTTL(t *testing.T) {
	c := NewCodec("secret", 0)
	if c.ttl != DefaultTTL {
		t.Fatalf("expected default ttl %v, got %v", DefaultTTL, c.ttl)
	}
}
