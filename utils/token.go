package utils

import (
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ApiSecret returns the HMAC key for signing and verifying tokens.
func ApiSecret() []byte {
	secret := os.Getenv("API_SECRET")
	if secret == "" {
		secret = "humanizer_dev_secret"
	}
	return []byte(secret)
}

// GenerateToken mints a session token carrying the user id.
// Lifespan comes from TOKEN_HOUR_LIFESPAN (default 24 hours).
func GenerateToken(userID uint) (string, error) {
	lifespan, err := strconv.Atoi(os.Getenv("TOKEN_HOUR_LIFESPAN"))
	if err != nil || lifespan <= 0 {
		lifespan = 24
	}

	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(time.Duration(lifespan) * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(ApiSecret())
}
