// Package crypto provides the concrete token cipher used to seal access
// tokens before they are written to the connections table.
package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"

	"roost/internal/domain/service"
	"roost/internal/errors"

	"golang.org/x/crypto/chacha20poly1305"
)

// tokenCipher seals tokens with XChaCha20-Poly1305. The sealed form is
// base64(nonce || ciphertext), safe for a text column.
type tokenCipher struct {
	key []byte
}

// NewTokenCipher builds a TokenCipher from a hex-encoded 32-byte key.
func NewTokenCipher(hexKey string) (service.TokenCipher, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, errors.Wrap(err, "token cipher key is not valid hex")
	}
	if len(key) != chacha20poly1305.KeySize {
		return nil, errors.Errorf("token cipher key must be %d bytes, got %d", chacha20poly1305.KeySize, len(key))
	}

	return &tokenCipher{key: key}, nil
}

// Seal encrypts a plaintext token.
func (c *tokenCipher) Seal(plaintext string) (string, error) {
	aead, err := chacha20poly1305.NewX(c.key)
	if err != nil {
		return "", errors.Wrap(err, "create cipher")
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", errors.Wrap(err, "generate nonce")
	}

	sealed := aead.Seal(nonce, nonce, []byte(plaintext), nil)

	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Open decrypts a previously sealed token.
func (c *tokenCipher) Open(sealed string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", errors.Wrap(err, "sealed token is not valid base64")
	}

	aead, err := chacha20poly1305.NewX(c.key)
	if err != nil {
		return "", errors.Wrap(err, "create cipher")
	}

	if len(raw) < aead.NonceSize() {
		return "", errors.New("sealed token is too short")
	}

	nonce, ciphertext := raw[:aead.NonceSize()], raw[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", errors.Wrap(err, "open sealed token")
	}

	return string(plaintext), nil
}
