package utils

import (
	"strings"
	"testing"
)

func TestGenerateGameCode(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := GenerateGameCode()
		if err != nil {
			t.Fatalf("GenerateGameCode() error: %v", err)
		}
		if len(code) != gameCodeLength {
			t.Fatalf("GenerateGameCode() = %q, want length %d", code, gameCodeLength)
		}
		for _, c := range code {
			if !strings.ContainsRune(gameCodeAlphabet, c) {
				t.Fatalf("GenerateGameCode() = %q, contains %q outside the alphabet", code, c)
			}
		}
	}
}
