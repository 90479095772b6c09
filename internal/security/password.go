package security

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the cost the stored hashes were created with.
const bcryptCost = 10

// ErrInvalidHash reports a stored hash that bcrypt cannot interpret. A
// malformed hash must surface as an error, never as a silent match.
var ErrInvalidHash = errors.New("invalid password hash")

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword recomputes the bcrypt digest and compares in constant time.
// A plain mismatch is (false, nil); an undecodable hash is (false, ErrInvalidHash).
func VerifyPassword(encoded, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(encoded), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, ErrInvalidHash
}
