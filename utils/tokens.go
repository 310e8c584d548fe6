package utils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

// EnvOrDefault returns ENV value or fallback default.
func EnvOrDefault(key, def string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// GenerateSecureToken returns a hex token of `length` random bytes.
func GenerateSecureToken(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("invalid token length")
	}
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// NewTransactionID builds the opaque identifier recorded on a payment:
// millisecond timestamp plus a uuid fragment so retried attempts never
// collide on the same millisecond.
func NewTransactionID(now time.Time) string {
	frag := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("TXN-%d-%s", now.UnixMilli(), frag)
}
