package auth

import (
	"crypto/rand"
	"encoding/base64"
)

// RememberTokenBytes is the byte size of generated remember tokens.
const RememberTokenBytes = 32

// MakeRememberToken generates a remember token of RememberTokenBytes
// random bytes, base64 URL encoded.
func MakeRememberToken() (string, error) {
	b := make([]byte, RememberTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

// NBytes returns the number of bytes used in a base64 URL encoded string.
// It's used to validate the size of incoming remember tokens.
func NBytes(base64String string) (int, error) {
	b, err := base64.URLEncoding.DecodeString(base64String)
	if err != nil {
		return -1, err
	}
	return len(b), nil
}
