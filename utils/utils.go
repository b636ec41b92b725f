package utils

import (
	"math/rand"
	"time"
)

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateRandomString builds a short shareable code. Sites use 9 characters,
// tickets 7.
func GenerateRandomString(length int) string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	code := make([]byte, length)
	for i := range code {
		code[i] = codeAlphabet[rng.Intn(len(codeAlphabet))]
	}
	return string(code)
}

// IsMarathi reports whether text contains any Devanagari codepoint
// (U+0900 to U+097F). Empty text is not Marathi.
func IsMarathi(text string) bool {
	for _, r := range text {
		if r >= 0x0900 && r <= 0x097F {
			return true
		}
	}
	return false
}
