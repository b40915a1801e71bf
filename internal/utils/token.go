package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// tokenKeyBytes is the amount of randomness in a token key. Hex encoding
// doubles it, giving 40-character keys.
const tokenKeyBytes = 20

// GenerateTokenKey returns a new random, hex-encoded API token key.
func GenerateTokenKey() (string, error) {
	buf := make([]byte, tokenKeyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error generating token key: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
