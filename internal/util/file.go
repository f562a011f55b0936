package util

import (
	"errors"
	"io"
	"math/rand"
	"net/http"
	"strings"
)

// ValidateMimeType sniffs the real content type of reader and checks it
// against allowedTypes (full types or prefixes such as "image/").
func ValidateMimeType(reader io.Reader, allowedTypes []string) (string, error) {
	buffer := make([]byte, 512)
	n, err := reader.Read(buffer)
	if err != nil && err != io.EOF {
		return "", err
	}

	mimeType := http.DetectContentType(buffer[:n])

	for _, allowed := range allowedTypes {
		if strings.HasPrefix(mimeType, allowed) || mimeType == allowed {
			return mimeType, nil
		}
	}

	return mimeType, errors.New("invalid file type: " + mimeType)
}

const randomChars = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateRandomString returns an n-character lowercase alphanumeric suffix
// for uploaded file names.
func GenerateRandomString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = randomChars[rand.Intn(len(randomChars))]
	}
	return string(b)
}
