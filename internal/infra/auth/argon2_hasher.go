// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"

	"github.com/alexedwards/argon2id"

	"madr/config"
	"madr/internal/domain/service"
)

// DefaultArgon2Params are used when no argon2 section is configured.
var DefaultArgon2Params = argon2id.Params{
	Memory:      64 * 1024,
	Iterations:  3,
	Parallelism: 2,
	SaltLength:  16,
	KeyLength:   32,
}

// argon2Hasher hashes new passwords with argon2id and still accepts hashes
// written by the previous bcrypt implementation.
type argon2Hasher struct {
	params argon2id.Params
	legacy bcryptVerifier
}

// NewPasswordHasher builds the hasher from the auth.argon2 configuration.
func NewPasswordHasher(cfg *config.Config) service.PasswordHasher {
	params := DefaultArgon2Params
	if a := cfg.Auth.Argon2; a != nil {
		if a.Memory > 0 {
			params.Memory = a.Memory
		}
		if a.Iterations > 0 {
			params.Iterations = a.Iterations
		}
		if a.Parallelism > 0 {
			params.Parallelism = a.Parallelism
		}
		if a.SaltLength > 0 {
			params.SaltLength = a.SaltLength
		}
		if a.KeyLength > 0 {
			params.KeyLength = a.KeyLength
		}
	}

	return NewArgon2Hasher(params)
}

// NewArgon2Hasher is the constructor for argon2Hasher.
func NewArgon2Hasher(params argon2id.Params) service.PasswordHasher {
	return &argon2Hasher{params: params, legacy: bcryptVerifier{}}
}

// Hash returns an encoded $argon2id$v=19$m=...,t=...,p=...$salt$key string.
func (h *argon2Hasher) Hash(password string) (string, error) {
	return argon2id.CreateHash(password, &h.params)
}

// Check recomputes the key with the salt and parameters embedded in hash.
func (h *argon2Hasher) Check(password, hash string) bool {
	if isBcryptHash(hash) {
		return h.legacy.Check(password, hash)
	}

	params, _, _, err := argon2id.DecodeHash(hash)
	if err != nil || !usableParams(params) {
		return false
	}

	match, err := argon2id.ComparePasswordAndHash(password, hash)

	return err == nil && match
}

func (h *argon2Hasher) NeedsRehash(hash string) bool {
	if isBcryptHash(hash) {
		return true
	}

	params, _, _, err := argon2id.DecodeHash(hash)
	if err != nil {
		return false
	}

	return *params != h.params
}

// usableParams rejects decoded parameters the key derivation cannot run with.
func usableParams(p *argon2id.Params) bool {
	return p.Iterations > 0 && p.Parallelism > 0 && p.Memory > 0 && p.KeyLength > 0
}

func isBcryptHash(hash string) bool {
	return strings.HasPrefix(hash, "$2a$") || strings.HasPrefix(hash, "$2b$") || strings.HasPrefix(hash, "$2y$")
}
