// Package tripcode generates shareable trip codes.
package tripcode

import (
	"crypto/rand"
	"fmt"

	"tripplanner/internal/domain"
)

// codeChars deliberately omits 0/O/1/I so codes read back unambiguously
// over the phone or from a screenshot.
const codeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// CodeLength is the length of every generated trip code.
const CodeLength = 6

type generator struct{}

// NewGenerator returns a CodeGenerator producing 6-character codes from a
// 32-character unambiguous alphabet.
func NewGenerator() domain.CodeGenerator {
	return generator{}
}

func (generator) Generate() (string, error) {
	buf := make([]byte, CodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate trip code: %w", err)
	}
	code := make([]byte, CodeLength)
	for i, b := range buf {
		// 256 is a multiple of 32, so the modulo introduces no bias.
		code[i] = codeChars[int(b)%len(codeChars)]
	}
	return string(code), nil
}
