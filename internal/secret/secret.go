package secret

import (
	"crypto/rand"
	"fmt"
	"io"
)

// Length is the number of characters in a generated secret.
const Length = 50

// Alphabet holds lowercase letters, digits and ASCII punctuation without the
// double quote, so a secret can sit inside a double-quoted .env value.
const Alphabet = "abcdefghijklmnopqrstuvwxyz" +
	"0123456789" +
	"!#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Generate returns a fresh Length-character secret drawn uniformly from
// Alphabet using the operating system's CSPRNG.
func Generate() (string, error) {
	return GenerateFrom(rand.Reader, Length)
}

// GenerateFrom draws n symbols uniformly from Alphabet using bytes read from
// r. Bytes that would bias the modulo are discarded.
func GenerateFrom(r io.Reader, n int) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("secret length must not be negative, got %d", n)
	}

	size := len(Alphabet)
	limit := 256 - 256%size // largest multiple of size that fits in a byte

	out := make([]byte, 0, n)
	buf := make([]byte, n+n/2+8)
	for len(out) < n {
		if _, err := io.ReadFull(r, buf); err != nil {
			return "", fmt.Errorf("reading random bytes: %w", err)
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			out = append(out, Alphabet[int(b)%size])
			if len(out) == n {
				break
			}
		}
	}
	return string(out), nil
}
