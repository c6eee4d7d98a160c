package paseto

import (
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"Sistem-Absensi-Karyawan/models"

	"github.com/o1egl/paseto"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Claims struct {
	UserID primitive.ObjectID `json:"user_id"`
	Email  string             `json:"email"`
	Role   string             `json:"role"`
}

var (
	pasetoInstance = paseto.NewV2()
	symmetricKey   []byte
)

// InitKey mendekode PASETO_SECRET dan menyimpan symmetric key. Wajib
// dipanggil sekali dari main sebelum GenerateToken / ValidateToken.
func InitKey(secretBase64 string) error {
	if secretBase64 == "" {
		return errors.New("PASETO_SECRET kosong")
	}

	// Coba beberapa varian base64 supaya key dari generator lain tetap terbaca
	decodedKey, err := base64.URLEncoding.DecodeString(secretBase64)
	if err != nil {
		decodedKey, err = base64.URLEncoding.WithPadding(base64.StdPadding).DecodeString(secretBase64)
		if err != nil {
			decodedKey, err = base64.StdEncoding.DecodeString(secretBase64)
			if err != nil {
				return fmt.Errorf("gagal mendekode PASETO_SECRET: %w", err)
			}
		}
	}

	if len(decodedKey) != 32 {
		return fmt.Errorf("PASETO_SECRET harus tepat 32 byte setelah didekode, dapat %d byte", len(decodedKey))
	}

	symmetricKey = decodedKey
	return nil
}

func GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	exp := now.Add(24 * time.Hour)

	token := paseto.JSONToken{
		IssuedAt:   now,
		Expiration: exp,
		NotBefore:  now,
	}

	// Custom claims disimpan sebagai string
	token.Set("user_id", user.ID.Hex())
	token.Set("email", user.Email)
	token.Set("role", user.Role)

	return pasetoInstance.Encrypt(symmetricKey, token, "")
}

func ValidateToken(tokenString string) (*Claims, error) {
	var token paseto.JSONToken
	var footer string

	err := pasetoInstance.Decrypt(tokenString, symmetricKey, &token, &footer)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt paseto token: %w", err)
	}

	if err := token.Validate(); err != nil {
		return nil, fmt.Errorf("token validation failed: %w", err)
	}

	var claims Claims

	userIDStr := token.Get("user_id")
	objectID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		return nil, fmt.Errorf("invalid user_id format: %v", err)
	}
	claims.UserID = objectID
	claims.Email = token.Get("email")
	claims.Role = token.Get("role")

	return &claims, nil
}
