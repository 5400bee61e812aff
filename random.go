package mailtm

import (
	"crypto/rand"
	"fmt"
	"io"
)

// DefaultRandomLength is the length of generated address local parts and
// passwords.
const DefaultRandomLength = 8

const alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// maxUnbiased is the largest multiple of len(alphanumeric) that fits in a
// byte; bytes at or above it are rejected to keep the selection uniform.
const maxUnbiased = 256 - 256%len(alphanumeric)

// RandomString returns n characters drawn uniformly from [A-Za-z0-9].
// Values are not checked for uniqueness.
func RandomString(n int) string {
	s, err := randomString(rand.Reader, n)
	if err != nil {
		// crypto/rand.Reader does not fail on supported platforms.
		panic(fmt.Sprintf("mailtm: read random bytes: %v", err))
	}
	return s
}

func randomString(r io.Reader, n int) (string, error) {
	if n <= 0 {
		return "", nil
	}
	out := make([]byte, 0, n)
	buf := make([]byte, n)
	for len(out) < n {
		if _, err := io.ReadFull(r, buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			if int(b) >= maxUnbiased {
				continue
			}
			out = append(out, alphanumeric[int(b)%len(alphanumeric)])
			if len(out) == n {
				break
			}
		}
	}
	return string(out), nil
}
