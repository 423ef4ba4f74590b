package jwtauth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/auditx/auditx/internal/domain"
	"github.com/auditx/auditx/internal/ports"
)

func TestJWTServiceRoundtrip(t *testing.T) {
	service := NewJWTService("test-secret", time.Hour)

	token, err := service.GenerateAccessToken(ports.TokenClaims{
		UserID: "user-1",
		Email:  "cliente@empresa.co",
		Role:   domain.RoleClient,
	})
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := service.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("expected user id user-1, got %s", claims.UserID)
	}
	if claims.Email != "cliente@empresa.co" {
		t.Errorf("expected email preserved, got %s", claims.Email)
	}
	if claims.Role != domain.RoleClient {
		t.Errorf("expected client role, got %s", claims.Role)
	}
}

func TestJWTServiceExpiredToken(t *testing.T) {
	service := NewJWTService("test-secret", -time.Minute)

	token, err := service.GenerateAccessToken(ports.TokenClaims{UserID: "user-1"})
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	_, err = service.ValidateAccessToken(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestJWTServiceWrongSecret(t *testing.T) {
	service := NewJWTService("test-secret", time.Hour)
	other := NewJWTService("other-secret", time.Hour)

	token, err := service.GenerateAccessToken(ports.TokenClaims{UserID: "user-1"})
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if _, err := other.ValidateAccessToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTServiceTamperedToken(t *testing.T) {
	service := NewJWTService("test-secret", time.Hour)

	token, err := service.GenerateAccessToken(ports.TokenClaims{UserID: "user-1"})
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %s", token)
	}
	tampered := parts[0] + ".eyJ1c2VyX2lkIjoiYWRtaW4ifQ." + parts[2]

	if _, err := service.ValidateAccessToken(tampered); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTServiceGarbage(t *testing.T) {
	service := NewJWTService("test-secret", time.Hour)

	for _, input := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := service.ValidateAccessToken(input); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("input %q: expected ErrInvalidToken, got %v", input, err)
		}
	}
}
