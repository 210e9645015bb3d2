// Package auth implements the single-admin session gate: a config-backed
// credential check and an in-memory session store behind an HttpOnly cookie.
package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// Credentials holds the configured admin login and bcrypt password hash.
type Credentials struct {
	Login        string
	PasswordHash string
}

// Verify checks a submitted login/password pair. The login comparison is
// constant-time and the password is checked against the bcrypt hash.
func (c Credentials) Verify(login, password string) bool {
	loginOK := subtle.ConstantTimeCompare([]byte(c.Login), []byte(login)) == 1
	passwordOK := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) == nil
	return loginOK && passwordOK
}

// HashPassword produces a bcrypt hash suitable for admin.password_hash.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
