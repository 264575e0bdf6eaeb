package services

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/styleverse/styleverse-backend/internal/models"
)

func jwtMapClaims(user models.User, ttl time.Duration) jwt.MapClaims {
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(ttl).Unix(),
	}
	if user.Email != nil {
		claims["email"] = *user.Email
	}
	return claims
}

func signHS256(claims jwt.MapClaims, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
