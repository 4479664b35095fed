package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// bcryptVerifier checks the hashes stored before the move to argon2id.
// New hashes are never produced with bcrypt.
type bcryptVerifier struct{}

// Check compares a plaintext password with a bcrypt hash.
func (bcryptVerifier) Check(password, hash string) bool {
	// err is nil if the password and hash match.
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
