package jwt

import (
	"errors"
	"fmt"
	"time"

	"task-manager-service/internal/domain"
	"task-manager-service/internal/my_errors"

	"github.com/golang-jwt/jwt/v4"
)

type Claims struct {
	jwt.RegisteredClaims
	UserID string      `json:"user_id"`
	Email  string      `json:"email"`
	Role   domain.Role `json:"role"`
}

func GenerateToken(identity domain.Identity, secret string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: identity.UserID,
		Email:  identity.Email,
		Role:   identity.Role,
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

func ParseToken(tokenString string, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil {
		return nil, classifyError(err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("%w", my_errors.ErrTokenInvalid)
	}

	return claims, nil
}

// classifyError distinguishes expiry from malformed/forged tokens so
// callers can give precise feedback.
func classifyError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w", my_errors.ErrTokenExpired)
	case errors.Is(err, jwt.ErrTokenMalformed),
		errors.Is(err, jwt.ErrTokenSignatureInvalid),
		errors.Is(err, jwt.ErrTokenUnverifiable):
		return fmt.Errorf("%w: %v", my_errors.ErrTokenInvalid, err)
	default:
		return fmt.Errorf("%w: %v", my_errors.ErrTokenVerification, err)
	}
}
