package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"
)

var (
	ErrMalformedPayload = errors.New("malformed payload")
	ErrInvalidSealKey   = errors.New("invalid seal key: must be 32 bytes")
)

// Obfuscate encodes text as standard base64 over its UTF-8 bytes.
// It is a reversible encoding, not encryption: anyone holding the output can read it.
func Obfuscate(text string) string {
	return base64.StdEncoding.EncodeToString([]byte(text))
}

// Deobfuscate reverses Obfuscate. Malformed input yields "" and ErrMalformedPayload.
func Deobfuscate(data string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%w: not valid UTF-8", ErrMalformedPayload)
	}
	return string(raw), nil
}

// Checksum is a 32-bit rolling hash (h*31 + c) over the UTF-16 code units of text,
// rendered as a signed decimal. It detects accidental corruption only; collisions are expected.
func Checksum(text string) string {
	var h int32
	for _, c := range utf16.Encode([]rune(text)) {
		h = h*31 + int32(c)
	}
	return strconv.FormatInt(int64(h), 10)
}

// Obfuscator adapts Obfuscate/Deobfuscate to the secure store codec contract.
type Obfuscator struct{}

func (Obfuscator) Encode(text string) (string, error) { return Obfuscate(text), nil }

func (Obfuscator) Decode(data string) (string, error) { return Deobfuscate(data) }

// GenerateRandomString produces a cryptographically random base64url string of n bytes.
func GenerateRandomString(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
