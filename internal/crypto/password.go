// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the credential hashing used at signup and login.
//
// Passwords are hashed with bcrypt: the per-password salt and the work
// factor are embedded in the produced hash, so verification needs no extra
// state. The work factor is configurable per deployment to keep the hash
// computationally expensive as hardware improves.
package crypto

import "golang.org/x/crypto/bcrypt"

// bcryptHasher is the bcrypt-backed implementation of [PasswordHasher].
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher constructs a [PasswordHasher] with the given bcrypt work
// factor. A cost below bcrypt's minimum (including zero) falls back to
// bcrypt.DefaultCost.
func NewBcryptHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

// Hash implements [PasswordHasher] using bcrypt.GenerateFromPassword.
func (h *bcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Compare implements [PasswordHasher] using bcrypt.CompareHashAndPassword.
// It returns bcrypt.ErrMismatchedHashAndPassword when the password does not
// match and nil when it does.
func (h *bcryptHasher) Compare(hash string, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
