package utils

import (
	"crypto/rand"
	"fmt"
)

const (
	gameCodeAlphabet = "1234567890abcdefghijklmnopqrstuvwxyz"
	gameCodeLength   = 5
)

// GenerateGameCode returns a short random join code, e.g. "ab12c".
func GenerateGameCode() (string, error) {
	buf := make([]byte, gameCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate game code: %w", err)
	}
	for i, b := range buf {
		buf[i] = gameCodeAlphabet[int(b)%len(gameCodeAlphabet)]
	}
	return string(buf), nil
}
