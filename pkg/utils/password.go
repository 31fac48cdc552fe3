package utils

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the work factor the user store was provisioned with.
const bcryptCost = 12

// HashPassword hashes a plaintext password with bcrypt. The salt is
// randomized per call, so equal inputs produce distinct hashes.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPasswordHash verifies a plaintext password against a bcrypt hash.
// Any mismatch or malformed hash yields false, never an error.
func CheckPasswordHash(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
