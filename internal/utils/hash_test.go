// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	digest, err := HashPassword("secret1", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if digest == "secret1" {
		t.Fatal("digest must not equal the plaintext")
	}
	if !CheckPassword("secret1", digest) {
		t.Error("expected password to match its digest")
	}
	if CheckPassword("secret2", digest) {
		t.Error("expected a different password not to match")
	}
}

func TestHashPassword_FreshSaltPerCall(t *testing.T) {
	first, err := HashPassword("secret1", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := HashPassword("secret1", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first == second {
		t.Error("expected two digests of the same password to differ")
	}
}

func TestHashPassword_InvalidCost(t *testing.T) {
	if _, err := HashPassword("secret1", bcrypt.MaxCost+1); err == nil {
		t.Fatal("expected error for cost above bcrypt.MaxCost")
	}
}

func TestHashPassword_TooLong(t *testing.T) {
	if _, err := HashPassword(strings.Repeat("a", 73), bcrypt.MinCost); err == nil {
		t.Fatal("expected error for password longer than 72 bytes")
	}
}

func TestCheckPassword_MalformedDigest(t *testing.T) {
	if CheckPassword("secret1", "not-a-bcrypt-digest") {
		t.Error("malformed digest must never match")
	}
}
