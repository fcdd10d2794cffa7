package service

import (
	"errors"
	"testing"

	"github.com/castingdesk/casting-api/internal/core/domain"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		ok       bool
	}{
		{"valid", "Str0ng!pass", true},
		{"valid all symbols", "Aa1!@#$%&*", true},
		{"minimum length", "Aa1!bcde", true},
		{"maximum length", "Aa1!bcdefghijklmnopq", true},
		{"too short", "Aa1!bcd", false},
		{"too long", "Aa1!bcdefghijklmnopqr", false},
		{"no uppercase", "str0ng!pass", false},
		{"no lowercase", "STR0NG!PASS", false},
		{"no digit", "Strong!pass", false},
		{"no symbol", "Str0ngpass", false},
		{"symbol outside the set", "Str0ng?pass", false},
		{"whitespace", "Str0ng! pass", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validatePassword(tc.password)
			if tc.ok && err != nil {
				t.Fatalf("expected %q to pass, got %v", tc.password, err)
			}
			if !tc.ok && !errors.Is(err, domain.ErrWeakPassword) {
				t.Fatalf("expected ErrWeakPassword for %q, got %v", tc.password, err)
			}
		})
	}
}

func TestGenerateOTP(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := generateOTP()
		if err != nil {
			t.Fatalf("generateOTP returned error: %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("expected 6 digits, got %q", code)
		}
		if code[0] == '0' {
			t.Fatalf("code must not have a leading zero: %q", code)
		}
	}
}

func TestHashOTPDeterministic(t *testing.T) {
	if hashOTP("123456") != hashOTP("123456") {
		t.Fatalf("digest must be deterministic")
	}
	if hashOTP("123456") == hashOTP("123457") {
		t.Fatalf("different codes must not collide")
	}
	if len(hashOTP("123456")) != 64 {
		t.Fatalf("expected a hex sha-256 digest")
	}
}
