package configs

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gorilla/securecookie"
	"go.uber.org/zap"
)

type SessionKeys struct {
	AuthKey []byte
	EncKey  []byte
	CSRFKey []byte
}

// LoadSessionKeys decodes APP_AUTH_KEY, APP_ENC_KEY and CSRF_KEY.
// Missing keys are replaced with random ones outside production, which
// invalidates cookies on restart but keeps local runs zero-config.
func LoadSessionKeys(env ENV) (*SessionKeys, error) {
	authKey, err := decodeKey("APP_AUTH_KEY", env.AppAuthKey, 64, env.IsProduction())
	if err != nil {
		return nil, err
	}
	encKey, err := decodeKey("APP_ENC_KEY", env.AppEncKey, 32, env.IsProduction())
	if err != nil {
		return nil, err
	}
	csrfKey, err := decodeKey("CSRF_KEY", env.CSRFKey, 32, env.IsProduction())
	if err != nil {
		return nil, err
	}

	if len(encKey) != 16 && len(encKey) != 24 && len(encKey) != 32 {
		return nil, fmt.Errorf("APP_ENC_KEY has invalid length %d after decoding. Must be 16, 24, or 32 bytes for AES encryption", len(encKey))
	}
	if len(csrfKey) != 32 {
		return nil, fmt.Errorf("CSRF_KEY has invalid length %d after decoding. Must be 32 bytes", len(csrfKey))
	}

	zap.L().Info("Session keys loaded")
	return &SessionKeys{
		AuthKey: authKey,
		EncKey:  encKey,
		CSRFKey: csrfKey,
	}, nil
}

func decodeKey(name, value string, size int, required bool) ([]byte, error) {
	if value == "" {
		if required {
			return nil, fmt.Errorf("%s environment variable not set", name)
		}
		zap.L().Warn("Session key not set, generating an ephemeral one", zap.String("key", name))
		key := securecookie.GenerateRandomKey(size)
		if key == nil {
			return nil, fmt.Errorf("could not generate %s", name)
		}
		return key, nil
	}

	key, err := base64.URLEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s from Base64: %w", name, err)
	}
	return key, nil
}

func GenerateAndPrintSessionKeys(envFilePath string) error {
	fmt.Println("Generating new session keys...")

	keys := []struct {
		name string
		size int
	}{
		{"APP_AUTH_KEY", 64},
		{"APP_ENC_KEY", 32},
		{"CSRF_KEY", 32},
	}

	lines := ""
	for _, k := range keys {
		raw := securecookie.GenerateRandomKey(k.size)
		if raw == nil {
			return fmt.Errorf("error: could not generate %s", k.name)
		}
		lines += fmt.Sprintf("%s=%s\n", k.name, base64.URLEncoding.EncodeToString(raw))
	}

	fmt.Println("\n================================================")
	fmt.Print(lines)
	fmt.Println("================================================")

	fullPath, err := filepath.Abs(envFilePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for %s: %w", envFilePath, err)
	}

	if err := os.WriteFile(envFilePath, []byte(lines), 0o600); err != nil {
		return fmt.Errorf("failed to write keys to file %s: %w", envFilePath, err)
	}

	fmt.Printf("\nKeys have been written to '%s'.\n", fullPath)
	fmt.Println("Copy these lines into your .env file. Regenerating them invalidates existing sessions.")

	return nil
}
