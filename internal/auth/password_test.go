// Sport Buddy - Social Sport Matching Backend
// Copyright 2026 Sport Buddy contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sportbuddy/sportbuddy

package auth

import (
	"errors"
	"strings"
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{name: "simple password", password: "hunter22"},
		{name: "long passphrase", password: "correct horse battery staple 1234"},
		{name: "unicode password", password: "pärla-åska-2026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password)
			if err != nil {
				t.Fatalf("HashPassword() error = %v", err)
			}
			if hash == tt.password {
				t.Error("Hash must not equal the plaintext password")
			}
			if !strings.HasPrefix(hash, "$2") {
				t.Errorf("Expected bcrypt hash prefix, got %q", hash[:4])
			}

			if err := CheckPassword(hash, tt.password); err != nil {
				t.Errorf("CheckPassword() with correct password: %v", err)
			}
		})
	}
}

func TestCheckPassword_WrongPassword(t *testing.T) {
	hash, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	err = CheckPassword(hash, "hunter23")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials, got %v", err)
	}
}

func TestCheckPassword_InvalidHash(t *testing.T) {
	err := CheckPassword("not-a-bcrypt-hash", "hunter22")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials for invalid hash, got %v", err)
	}
}

func TestHashPassword_SaltsAreUnique(t *testing.T) {
	hash1, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	hash2, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if hash1 == hash2 {
		t.Error("Two hashes of the same password must differ (per-hash salt)")
	}
	if err := CheckPassword(hash1, "same-password"); err != nil {
		t.Errorf("First hash rejects its own password: %v", err)
	}
	if err := CheckPassword(hash2, "same-password"); err != nil {
		t.Errorf("Second hash rejects its own password: %v", err)
	}
}

func TestHashPassword_TooLong(t *testing.T) {
	// bcrypt rejects inputs over 72 bytes.
	_, err := HashPassword(strings.Repeat("a", 73))
	if err == nil {
		t.Error("Expected error for password over 72 bytes")
	}
}
