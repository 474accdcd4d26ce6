package auth

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snapevents/internal/domain"
)

func TestBcryptHasher_GenerateSalt(t *testing.T) {
	h := NewBcryptHasher(DefaultCost)
	hexRe := regexp.MustCompile(`^[0-9a-f]{64}$`)

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		salt, err := h.GenerateSalt()
		require.NoError(t, err)
		assert.Regexp(t, hexRe, salt)
		assert.False(t, seen[salt], "salts must not repeat")
		seen[salt] = true
	}
}

func TestBcryptHasher_Compare(t *testing.T) {
	h := NewBcryptHasher(DefaultCost)
	salt, err := h.GenerateSalt()
	require.NoError(t, err)
	otherSalt, err := h.GenerateSalt()
	require.NoError(t, err)

	long := strings.Repeat("p", 100)
	hash, err := h.Hash(salt, long)
	require.NoError(t, err)

	tests := []struct {
		name     string
		salt     string
		password string
		wantErr  bool
	}{
		{name: "match", salt: salt, password: long},
		{name: "differs after 72 bytes", salt: salt, password: strings.Repeat("p", 99) + "q", wantErr: true},
		{name: "wrong password", salt: salt, password: "wrong", wantErr: true},
		{name: "wrong salt", salt: otherSalt, password: long, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := h.Compare(hash, tt.salt, tt.password)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
				return
			}
			assert.NoError(t, err)
		})
	}
}
