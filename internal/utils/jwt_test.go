// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/MKhiriev/buy-from-me/models"
	"github.com/golang-jwt/jwt/v5"
)

var testUser = models.User{ID: 123, Username: "alice", Email: "alice@example.com"}

func accessParams() JWTParams {
	return JWTParams{
		Issuer:   "test-issuer",
		Purpose:  models.AccessPurpose,
		Duration: time.Hour,
		SignKey:  "secret-key",
	}
}

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(testUser, accessParams())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}
	if token.UserID != 123 || token.Username != "alice" {
		t.Errorf("unexpected claims %+v", token.TokenClaims)
	}
	if token.Subject != "123" {
		t.Errorf("expected subject '123', got %s", token.Subject)
	}
	if token.Email != "" {
		t.Errorf("access token must not carry email, got %s", token.Email)
	}
}

func TestGenerateJWTToken_VerificationCarriesEmail(t *testing.T) {
	params := accessParams()
	params.Purpose = models.VerificationPurpose

	token, err := GenerateJWTToken(testUser, params)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.Email != testUser.Email {
		t.Errorf("expected email %s, got %s", testUser.Email, token.Email)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		modify func(p *JWTParams)
	}{
		{"empty issuer", func(p *JWTParams) { p.Issuer = "" }},
		{"empty purpose", func(p *JWTParams) { p.Purpose = "" }},
		{"zero duration", func(p *JWTParams) { p.Duration = 0 }},
		{"empty key", func(p *JWTParams) { p.SignKey = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := accessParams()
			tt.modify(&params)
			if _, err := GenerateJWTToken(testUser, params); err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(testUser, accessParams())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(token.SignedString, "secret-key", "test-issuer", models.AccessPurpose)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if parsed.UserID != testUser.ID {
		t.Errorf("expected user id %d, got %d", testUser.ID, parsed.UserID)
	}
}

func TestValidateAndParseJWTToken_Rejects(t *testing.T) {
	valid, err := GenerateJWTToken(testUser, accessParams())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	expiredClaims := models.TokenClaims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "test-issuer",
			Audience:  jwt.ClaimStrings{string(models.AccessPurpose)},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	expired, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, expiredClaims).SignedString([]byte("secret-key"))

	noExpiryClaims := expiredClaims
	noExpiryClaims.ExpiresAt = nil
	noExpiry, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, noExpiryClaims).SignedString([]byte("secret-key"))

	noUserClaims := expiredClaims
	noUserClaims.UserID = 0
	noUserClaims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(time.Hour))
	noUser, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, noUserClaims).SignedString([]byte("secret-key"))

	hs512, _ := jwt.NewWithClaims(jwt.SigningMethodHS512, valid.TokenClaims).SignedString([]byte("secret-key"))

	tests := []struct {
		name    string
		token   string
		key     string
		issuer  string
		purpose models.TokenPurpose
	}{
		{"foreign secret", valid.SignedString, "other-key", "test-issuer", models.AccessPurpose},
		{"wrong issuer", valid.SignedString, "secret-key", "other-issuer", models.AccessPurpose},
		{"wrong purpose", valid.SignedString, "secret-key", "test-issuer", models.VerificationPurpose},
		{"malformed", "not.a.token", "secret-key", "test-issuer", models.AccessPurpose},
		{"expired", expired, "secret-key", "test-issuer", models.AccessPurpose},
		{"missing exp", noExpiry, "secret-key", "test-issuer", models.AccessPurpose},
		{"missing user id", noUser, "secret-key", "test-issuer", models.AccessPurpose},
		{"unexpected algorithm", hs512, "secret-key", "test-issuer", models.AccessPurpose},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer, tt.purpose); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{"Bearer abc", "abc", false},
		{"bearer abc", "abc", false},
		{"Basic abc", "", true},
		{"Bearer", "", true},
		{"", "", true},
		{"Bearer a b", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if (err != nil) != tt.wantErr {
				t.Fatalf("unexpected error state: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
