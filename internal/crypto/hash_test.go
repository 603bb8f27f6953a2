package crypto

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cheapParams() HashParams {
	return HashParams{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}
}

func TestHash(t *testing.T) {
	hash, err := NewHasher(DefaultHashParams(), nil).Hash("correct-horse-battery-staple")
	require.NoError(t, err)

	// $argon2id$v=19$m=65536,t=3,p=2$<salt>$<hash>
	parts := strings.Split(hash, "$")
	require.Len(t, parts, 6)
	assert.Equal(t, "argon2id", parts[1])
	assert.Equal(t, "v=19", parts[2])
	assert.Equal(t, "m=65536,t=3,p=2", parts[3])
}

func TestVerifyGeneratedPassword(t *testing.T) {
	password := newTestGenerator(21).Generate(DefaultOptions())

	hash, err := NewHasher(cheapParams(), nil).Hash(password)
	require.NoError(t, err)

	match, err := Verify(password, hash)
	require.NoError(t, err)
	assert.True(t, match)

	match, err = Verify(password+"x", hash)
	require.NoError(t, err)
	assert.False(t, match)
}

func TestHashDeterministicSalt(t *testing.T) {
	salt := bytes.Repeat([]byte{0x01}, 32)

	a, err := NewHasher(cheapParams(), bytes.NewReader(salt)).Hash("same-password")
	require.NoError(t, err)
	b, err := NewHasher(cheapParams(), bytes.NewReader(salt)).Hash("same-password")
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := NewHasher(cheapParams(), nil).Hash("same-password")
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestHashShortSaltReader(t *testing.T) {
	_, err := NewHasher(cheapParams(), bytes.NewReader([]byte{1, 2})).Hash("pw")
	assert.Error(t, err)
}

func TestVerifyInvalidHash(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
		wantErr error
	}{
		{name: "garbage", encoded: "invalid-hash-format", wantErr: ErrInvalidHashFormat},
		{name: "wrong algorithm", encoded: "$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA", wantErr: ErrInvalidHashFormat},
		{name: "wrong version", encoded: "$argon2id$v=16$m=1,t=1,p=1$c2FsdA$aGFzaA", wantErr: ErrIncompatibleVersion},
		{name: "bad params", encoded: "$argon2id$v=19$bogus$c2FsdA$aGFzaA", wantErr: ErrInvalidHashFormat},
		{name: "bad salt", encoded: "$argon2id$v=19$m=1,t=1,p=1$!!!$aGFzaA", wantErr: ErrInvalidHashFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Verify("password", tt.encoded)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}
