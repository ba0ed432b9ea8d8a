package security_test

import (
	"errors"
	"testing"
	"time"

	"github.com/haseebk/dev-net/internal/security"
)

func TestAccessRoundTrip(t *testing.T) {
	tok, err := security.MakeAccess("s3cret", "u1", time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	c, err := security.ParseAccess("s3cret", tok)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c.UID != "u1" || c.Subject != "u1" {
		t.Fatalf("claims mismatch: %#v", c)
	}
}

func TestAccessExpired(t *testing.T) {
	tok, err := security.MakeAccess("s3cret", "u1", -time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := security.ParseAccess("s3cret", tok); !errors.Is(err, security.ErrTokenExpired) {
		t.Fatalf("want ErrTokenExpired, got %v", err)
	}
}

func TestAccessWrongSecret(t *testing.T) {
	tok, err := security.MakeAccess("s3cret", "u1", time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := security.ParseAccess("other", tok); !errors.Is(err, security.ErrTokenInvalid) {
		t.Fatalf("want ErrTokenInvalid, got %v", err)
	}
}

func TestAccessGarbage(t *testing.T) {
	if _, err := security.ParseAccess("s3cret", "not-a-jwt"); !errors.Is(err, security.ErrTokenInvalid) {
		t.Fatalf("want ErrTokenInvalid, got %v", err)
	}
}
