// Package auth checks the admin password against a bcrypt hash.
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDisabled           = errors.New("admin login is disabled")
)

type Authenticator struct {
	hash []byte
}

// New returns an Authenticator for a bcrypt hash.
// An empty hash yields an Authenticator that rejects every password.
func New(hash string) (*Authenticator, error) {
	if hash == "" {
		return &Authenticator{}, nil
	}

	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return nil, fmt.Errorf("bcrypt.Cost: %w", err)
	}

	return &Authenticator{hash: []byte(hash)}, nil
}

func (a *Authenticator) Enabled() bool {
	return len(a.hash) > 0
}

func (a *Authenticator) Verify(password string) error {
	if !a.Enabled() {
		return ErrDisabled
	}

	err := bcrypt.CompareHashAndPassword(a.hash, []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrInvalidCredentials
	}
	if err != nil {
		return fmt.Errorf("bcrypt.CompareHashAndPassword: %w", err)
	}

	return nil
}

// Hash returns the bcrypt hash of password for use in configuration.
func Hash(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt.GenerateFromPassword: %w", err)
	}
	return string(hash), nil
}
