package token

import (
	"strings"
	"testing"
	"time"

	"github.com/cosmic-community/luxe-fashion-boutique-clone/pkg/config"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "unit-test-secret",
		Issuer:            "luxe-boutique",
		ExpirationMinutes: 60,
	}
}

func TestMintAndParseRoundTrip(t *testing.T) {
	cfg := testJWTConfig()
	now := time.Now()

	signed, err := Mint(cfg, now, Payload{UserID: "user-1", Email: "a@b.com", Name: "Ada"})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	claims, err := Parse(cfg, signed)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != "user-1" || claims.Email != "a@b.com" || claims.Name != "Ada" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.Issuer != cfg.Issuer {
		t.Fatalf("unexpected issuer: %q", claims.Issuer)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	cfg := testJWTConfig()
	signed, err := Mint(cfg, time.Now(), Payload{UserID: "user-1"})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	other := cfg
	other.Secret = "different-secret"
	if _, err := Parse(other, signed); err == nil {
		t.Fatal("expected signature validation failure")
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	cfg := testJWTConfig()
	signed, err := Mint(cfg, time.Now().Add(-2*time.Hour), Payload{UserID: "user-1"})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	_, err = Parse(cfg, signed)
	if err == nil || !strings.Contains(err.Error(), "expired") {
		t.Fatalf("expected expiry error, got %v", err)
	}
}

func TestMintValidatesConfig(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Secret = ""
	if _, err := Mint(cfg, time.Now(), Payload{UserID: "u"}); err == nil {
		t.Fatal("expected error for missing secret")
	}

	cfg = testJWTConfig()
	if _, err := Mint(cfg, time.Now(), Payload{}); err == nil {
		t.Fatal("expected error for missing user id")
	}
}
