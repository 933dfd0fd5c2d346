package utils

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the work factor used when the user base was created.
const bcryptCost = 10

// HashPassword produces a salted bcrypt hash. Output differs between calls for
// the same plaintext.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash reports whether the plaintext matches the stored hash.
// Comparison is delegated to bcrypt and does not leak which byte differed.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
