package utils

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// ISOTimeLayout matches JavaScript's Date.toISOString output.
const ISOTimeLayout = "2006-01-02T15:04:05.000Z"

// GenerateUniqueID creates a secure random string of specified length
func GenerateUniqueID(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// MustGenerateUniqueID is GenerateUniqueID for callers that cannot recover
// from an exhausted entropy source.
func MustGenerateUniqueID(length int) string {
	id, err := GenerateUniqueID(length)
	if err != nil {
		panic("failed to generate unique id: " + err.Error())
	}
	return id
}

// ISOTime formats t in UTC with millisecond precision.
func ISOTime(t time.Time) string {
	return t.UTC().Format(ISOTimeLayout)
}
