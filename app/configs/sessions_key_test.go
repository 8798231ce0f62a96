package configs

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorilla/securecookie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodedKey(size int) string {
	return base64.URLEncoding.EncodeToString(securecookie.GenerateRandomKey(size))
}

func TestLoadSessionKeysGeneratesOutsideProduction(t *testing.T) {
	keys, err := LoadSessionKeys(ENV{AppEnv: EnvDevelopment})
	require.NoError(t, err)
	assert.Len(t, keys.AuthKey, 64)
	assert.Len(t, keys.EncKey, 32)
	assert.Len(t, keys.CSRFKey, 32)
}

func TestLoadSessionKeysRequiredInProduction(t *testing.T) {
	_, err := LoadSessionKeys(ENV{AppEnv: EnvProduction})
	assert.ErrorContains(t, err, "APP_AUTH_KEY")
}

func TestLoadSessionKeysDecodes(t *testing.T) {
	env := ENV{
		AppEnv:     EnvProduction,
		AppAuthKey: encodedKey(64),
		AppEncKey:  encodedKey(16),
		CSRFKey:    encodedKey(32),
	}

	keys, err := LoadSessionKeys(env)
	require.NoError(t, err)
	assert.Len(t, keys.EncKey, 16)
}

func TestLoadSessionKeysRejectsBadKeys(t *testing.T) {
	tests := []struct {
		name string
		env  ENV
		want string
	}{
		{
			name: "encryption key length",
			env:  ENV{AppAuthKey: encodedKey(64), AppEncKey: encodedKey(20), CSRFKey: encodedKey(32)},
			want: "APP_ENC_KEY",
		},
		{
			name: "csrf key length",
			env:  ENV{AppAuthKey: encodedKey(64), AppEncKey: encodedKey(32), CSRFKey: encodedKey(16)},
			want: "CSRF_KEY",
		},
		{
			name: "not base64",
			env:  ENV{AppAuthKey: "%%%"},
			want: "APP_AUTH_KEY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSessionKeys(tt.env)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestGenerateAndPrintSessionKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env.new_keys")
	require.NoError(t, GenerateAndPrintSessionKeys(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	values := map[string]string{}
	for _, line := range strings.Split(strings.TrimSpace(string(raw)), "\n") {
		k, v, ok := strings.Cut(line, "=")
		require.True(t, ok)
		values[k] = v
	}

	keys, err := LoadSessionKeys(ENV{
		AppEnv:     EnvProduction,
		AppAuthKey: values["APP_AUTH_KEY"],
		AppEncKey:  values["APP_ENC_KEY"],
		CSRFKey:    values["CSRF_KEY"],
	})
	require.NoError(t, err)
	assert.Len(t, keys.AuthKey, 64)
}
