package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTokenRoundTrip(t *testing.T) {
	id := uuid.New()

	token, err := GenerateToken("secret", id, time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	parsed, err := ParseToken("secret", token)
	if err != nil {
		t.Fatal(err)
	}
	if parsed != id {
		t.Fatalf("want %s, got %s", id, parsed)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("secret", uuid.New(), time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ParseToken("other-secret", token); err == nil {
		t.Fatal("want signature error")
	}
}

func TestParseToken_Expired(t *testing.T) {
	token, err := GenerateToken("secret", uuid.New(), -time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ParseToken("secret", token); err == nil {
		t.Fatal("want expiry error")
	}
}
