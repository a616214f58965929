package pkg

import (
	"crypto/rand"
	"encoding/base64"
	"strconv"
	"time"
)

const gameIDBytes = 32

// GenerateGameID - generates a random URL-safe identifier for a finished-match record.
func GenerateGameID() string {
	b := make([]byte, gameIDBytes)
	if _, err := rand.Read(b); err != nil {
		return strconv.FormatInt(time.Now().UnixNano(), 10)
	}

	return base64.RawURLEncoding.EncodeToString(b)
}
