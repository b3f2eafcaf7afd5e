// Package cryptox wraps the one-way password hashing used for stored
// credentials.
package cryptox

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost is the bcrypt work factor. It is fixed so that every stored
// hash costs the same to verify.
const PasswordHashCost = 10

// maxBcryptInput is the longest input bcrypt.GenerateFromPassword accepts.
const maxBcryptInput = 72

// ErrPasswordMismatch is returned by ComparePassword when the password does
// not match the hash.
var ErrPasswordMismatch = errors.New("password mismatch")

// dummyHash is compared against when there is no stored hash, so that the
// caller spends the same time as for a real mismatch.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("dummy-password-for-timing"), PasswordHashCost)

// bcryptInput returns the bytes handed to bcrypt. Passwords longer than
// maxBcryptInput are replaced by the base64 of their SHA-256 digest, which is
// 44 bytes; shorter ones are used unchanged.
func bcryptInput(password string) []byte {
	if len(password) <= maxBcryptInput {
		return []byte(password)
	}
	sum := sha256.Sum256([]byte(password))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}

// HashPassword returns a salted bcrypt hash of password. Any length is
// accepted.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(bcryptInput(password), PasswordHashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// ComparePassword checks password against a bcrypt hash. Any mismatch,
// including a malformed hash, yields ErrPasswordMismatch.
func ComparePassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), bcryptInput(password)); err != nil {
		return ErrPasswordMismatch
	}
	return nil
}

// BurnCompare performs a comparison against a fixed hash and discards the
// result.
func BurnCompare(password string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash, bcryptInput(password))
}
