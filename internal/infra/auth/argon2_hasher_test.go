package auth

import (
	"strings"
	"testing"

	"github.com/alexedwards/argon2id"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"madr/config"
)

// testArgon2Params keeps key derivation fast in tests.
var testArgon2Params = argon2id.Params{
	Memory:      1024,
	Iterations:  1,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

func TestArgon2Hasher_HashAndCheck(t *testing.T) {
	hasher := NewArgon2Hasher(testArgon2Params)

	first, err := hasher.Hash("secret")
	require.NoError(t, err)
	second, err := hasher.Hash("secret")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(first, "$argon2id$v=19$m=1024,t=1,p=1$"))
	assert.NotEqual(t, first, second, "salt must make every hash unique")
	assert.True(t, hasher.Check("secret", first))
	assert.True(t, hasher.Check("secret", second))
	assert.False(t, hasher.Check("secret2", first))
	assert.False(t, hasher.Check("", first))
}

func TestArgon2Hasher_MalformedHashNeverMatches(t *testing.T) {
	hasher := NewArgon2Hasher(testArgon2Params)

	malformed := []string{
		"",
		"plaintext",
		"$argon2id$v=19$m=1024,t=1,p=1$onlysalt",
		"$argon2i$v=19$m=1024,t=1,p=1$c2FsdHNhbHRzYWx0$a2V5a2V5a2V5",
		"$argon2id$v=18$m=1024,t=1,p=1$c2FsdHNhbHRzYWx0$a2V5a2V5a2V5",
		"$argon2id$v=19$m=1024,t=1,p=0$c2FsdHNhbHRzYWx0$a2V5a2V5a2V5",
		"$argon2id$v=19$m=1024,t=0,p=1$c2FsdHNhbHRzYWx0$a2V5a2V5a2V5",
		"$argon2id$v=19$m=1024,t=1,p=1$!!!$a2V5a2V5a2V5",
	}

	for _, hash := range malformed {
		assert.NotPanics(t, func() {
			assert.False(t, hasher.Check("secret", hash), "hash %q", hash)
		})
	}
}

func TestArgon2Hasher_AcceptsLegacyBcrypt(t *testing.T) {
	hasher := NewArgon2Hasher(testArgon2Params)

	legacy := legacyHash(t, "secret")

	assert.True(t, hasher.Check("secret", legacy))
	assert.False(t, hasher.Check("wrong", legacy))
	assert.True(t, hasher.NeedsRehash(legacy))
}

func TestArgon2Hasher_NeedsRehash(t *testing.T) {
	hasher := NewArgon2Hasher(testArgon2Params)

	current, err := hasher.Hash("secret")
	require.NoError(t, err)
	assert.False(t, hasher.NeedsRehash(current))

	stronger := testArgon2Params
	stronger.Iterations = 2
	outdated, err := NewArgon2Hasher(stronger).Hash("secret")
	require.NoError(t, err)
	assert.True(t, hasher.NeedsRehash(outdated))

	assert.False(t, hasher.NeedsRehash("garbage"))
}

func TestNewPasswordHasher_UsesConfiguredParams(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth.Argon2 = &config.Argon2Config{Memory: 2048, Iterations: 1, Parallelism: 1}

	hasher := NewPasswordHasher(cfg)
	hash, err := hasher.Hash("secret")
	require.NoError(t, err)

	params, salt, key, err := argon2id.DecodeHash(hash)
	require.NoError(t, err)
	assert.Equal(t, uint32(2048), params.Memory)
	assert.Equal(t, uint32(1), params.Iterations)
	assert.Equal(t, uint8(1), params.Parallelism)
	assert.Len(t, salt, int(DefaultArgon2Params.SaltLength))
	assert.Len(t, key, int(DefaultArgon2Params.KeyLength))
}
