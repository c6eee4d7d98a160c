package util

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/google/uuid"
)

// GenerateBase64Key generates a secure 32-byte key and returns it as base64 URL-encoded
func GenerateBase64Key(size int) (string, error) {
	if size != 32 {
		return "", fmt.Errorf("PASETO v2 local requires a 32-byte key")
	}

	key := make([]byte, size)
	_, err := rand.Read(key)
	if err != nil {
		return "", fmt.Errorf("failed to generate random key: %w", err)
	}

	return base64.URLEncoding.EncodeToString(key), nil
}

// GenerateQRValue membuat nilai unik untuk QR lokasi. Nilai ini yang dipindai
// perangkat saat absen masuk, jadi harus tidak bisa ditebak; regenerasi
// langsung membatalkan QR lama.
func GenerateQRValue() string {
	return uuid.New().String()
}
