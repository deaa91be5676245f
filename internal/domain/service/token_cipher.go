package service

// TokenCipher seals access tokens before they reach storage and opens
// them on the way back out. Sealed values are self-contained strings
// safe to put in a text column.
type TokenCipher interface {
	// Seal encrypts a plaintext token.
	Seal(plaintext string) (string, error)

	// Open decrypts a previously sealed token.
	Open(sealed string) (string, error)
}
