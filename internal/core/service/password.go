package service

import (
	"strings"

	"github.com/castingdesk/casting-api/internal/core/domain"
)

const passwordSymbols = "!@#$%&*"

// validatePassword enforces the complexity policy: 8-20 characters, at least
// one uppercase letter, one lowercase letter, one digit and one symbol from
// the fixed set, and nothing outside those classes.
func validatePassword(password string) error {
	if len(password) < 8 || len(password) > 20 {
		return domain.ErrWeakPassword
	}

	var upper, lower, digit, symbol bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		default:
			return domain.ErrWeakPassword
		}
	}

	if !upper || !lower || !digit || !symbol {
		return domain.ErrWeakPassword
	}
	return nil
}
