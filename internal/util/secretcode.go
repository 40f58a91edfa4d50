package util

import (
	"crypto/rand"
	"math/big"
)

const (
	secretCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	SecretCodeLength   = 9
)

// GenerateSecretCode returns a 9-character login code for student accounts,
// drawn uniformly from [A-Z0-9].
func GenerateSecretCode() (string, error) {
	max := big.NewInt(int64(len(secretCodeAlphabet)))
	code := make([]byte, SecretCodeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = secretCodeAlphabet[n.Int64()]
	}
	return string(code), nil
}

// IsValidSecretCode reports whether s has the exact shape of a generated code.
func IsValidSecretCode(s string) bool {
	if len(s) != SecretCodeLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}
