package service

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// PasswordScheme selects how newly registered passwords are stored.
type PasswordScheme string

const (
	PasswordBcrypt PasswordScheme = "bcrypt"
	PasswordPlain  PasswordScheme = "plain"
)

func (p PasswordScheme) hash(password string) (string, error) {
	if p == PasswordPlain {
		return password, nil
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// checkPassword accepts bcrypt hashes and the plain values older records carry.
func checkPassword(stored, given string) bool {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	return stored == given
}
