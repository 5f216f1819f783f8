package service

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

const (
	passwordMinLen = 8
	passwordMaxLen = 50

	// ASCII punctuation accepted as special characters; underscore and
	// hyphen are part of the set.
	passwordSpecials = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	// Extended Latin letters the policy explicitly rejects.
	passwordExcluded = "åäöœæøÅÄÖŒÆØ"
)

// validatePassword enforces the account password policy. Each failed rule
// reports its own message.
func validatePassword(password string) error {
	if password == "" {
		return newValidationError("password is required")
	}

	runes := []rune(password)
	if len(runes) < passwordMinLen {
		return newValidationError(fmt.Sprintf("password must be at least %d characters long", passwordMinLen))
	}
	if len(runes) > passwordMaxLen {
		return newValidationError(fmt.Sprintf("password must be at most %d characters long", passwordMaxLen))
	}

	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range runes {
		switch {
		case unicode.IsSpace(r):
			return newValidationError("password must not contain white spaces")
		case strings.ContainsRune(passwordExcluded, r):
			return newValidationError("password must not contain scands")
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSpecials, r):
			hasSpecial = true
		default:
			return newValidationError("password must contain only letters, numbers and special characters")
		}
	}

	switch {
	case !hasLower:
		return newValidationError("password must contain at least one lowercase letter")
	case !hasUpper:
		return newValidationError("password must contain at least one uppercase letter")
	case !hasDigit:
		return newValidationError("password must contain at least one number")
	case !hasSpecial:
		return newValidationError("password must contain at least one special character")
	}
	return nil
}

// hashPassword derives a bcrypt hash with the configured cost.
func hashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// verifyPassword compares a plaintext candidate against a stored hash.
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
