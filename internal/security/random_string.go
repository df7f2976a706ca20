package security

import (
	"crypto/rand"
	"errors"
)

// Suffix alphabet for disambiguating time-based event identifiers;
// lowercase plus digits keeps the IDs URL-safe.
const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

var errNegativeLength = errors.New("length must be non-negative")

// IDSuffix returns a random identifier suffix of the requested length.
// The alphabet has 36 symbols, so rejection sampling on a single byte
// keeps the draw unbiased.
func IDSuffix(length int) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}
	if length == 0 {
		return "", nil
	}

	// Largest multiple of len(idAlphabet) that fits in a byte.
	limit := byte(256 - 256%len(idAlphabet))

	suffix := make([]byte, 0, length)
	buffer := make([]byte, 1)
	for len(suffix) < length {
		if _, err := rand.Read(buffer); err != nil {
			return "", err
		}
		if buffer[0] >= limit {
			continue
		}
		suffix = append(suffix, idAlphabet[int(buffer[0])%len(idAlphabet)])
	}

	return string(suffix), nil
}
