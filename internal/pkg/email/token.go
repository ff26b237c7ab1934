package email

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const tokenChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateToken generates a random 32-character alphanumeric token for
// email-verification and password-reset links.
func GenerateToken() (string, error) {
	result := make([]byte, 32)
	for i := range result {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(tokenChars))))
		if err != nil {
			return "", fmt.Errorf("secure random generation failed: %w", err)
		}
		result[i] = tokenChars[n.Int64()]
	}
	return string(result), nil
}
