package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/akhilesh-av/Salon-akhil-freelance/config"
)

var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("invalid token")
)

func jwtSecret() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "default-jwt-secret"
	}
	return []byte(secret)
}

// GenerateToken creates a signed HS256 JWT for the given user. The role
// claim is what the authorization middleware gates on.
func GenerateToken(userID, role, email string) (string, error) {
	expiry := time.Duration(config.AppConfig.JWTExpirySeconds) * time.Second
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}
	claims := jwt.MapClaims{
		"sub":   userID,
		"role":  role,
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(expiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// ValidateToken parses a token string and returns its claims.
// Expiration is checked by the parser; an expired token yields
// ErrTokenExpired so callers can report it distinctly.
func ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret(), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// IdentityFromToken extracts the subject and role claims from a valid
// token string.
func IdentityFromToken(tokenString string) (userID, role string, err error) {
	claims, err := ValidateToken(tokenString)
	if err != nil {
		return "", "", err
	}
	userID, _ = claims["sub"].(string)
	role, _ = claims["role"].(string)
	if userID == "" || role == "" {
		return "", "", ErrTokenInvalid
	}
	return userID, role, nil
}
