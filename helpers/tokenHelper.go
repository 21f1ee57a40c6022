package helper

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long an issued session token stays valid.
const TokenTTL = 2 * time.Hour

// GenerateToken signs an arbitrary identity payload with HS256. Any iat or
// exp supplied by the caller is replaced.
func GenerateToken(payload map[string]interface{}, secret string, now time.Time) (string, error) {
	if secret == "" {
		return "", errors.New("token secret is empty")
	}
	claims := jwt.MapClaims{}
	for k, v := range payload {
		claims[k] = v
	}
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(TokenTTL).Unix()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidToken verifies signature, algorithm and expiry and returns the claims.
func ValidToken(signedToken, secret string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(signedToken, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token is invalid")
	}
	return claims, nil
}

// EmailFromClaims returns the email claim, or "" if absent or not a string.
func EmailFromClaims(claims jwt.MapClaims) string {
	email, _ := claims["email"].(string)
	return email
}
