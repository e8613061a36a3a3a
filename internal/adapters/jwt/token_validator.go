package token_adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MaryChris21/Estify/internal/contextkeys"
	"github.com/MaryChris21/Estify/internal/core/domain"
	"github.com/MaryChris21/Estify/internal/core/port"
	"github.com/golang-jwt/jwt/v5"
)

// TokenValidator checks HS256 bearer tokens issued by the account service.
type TokenValidator struct {
	signingKey []byte
	leeway     time.Duration
}

var _ port.TokenValidatorPort = (*TokenValidator)(nil)

func NewTokenValidator(signingKey string) (*TokenValidator, error) {
	if signingKey == "" {
		return nil, fmt.Errorf("JWT signing key cannot be empty")
	}
	return &TokenValidator{signingKey: []byte(signingKey), leeway: 30 * time.Second}, nil
}

// AccessClaims is the token payload. Subject is used when user_id is absent.
type AccessClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func (v *TokenValidator) ValidateToken(ctx context.Context, tokenString string) (*domain.Claims, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	validatorLogger := logger.WithFields(port.Fields{
		"component": "TokenValidator",
		"method":    "ValidateToken",
	})

	token, err := jwt.ParseWithClaims(tokenString, &AccessClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.signingKey, nil
	}, jwt.WithLeeway(v.leeway), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			validatorLogger.Warn("Token has expired", nil)
		} else {
			validatorLogger.Warn("Invalid token format or signature", port.Fields{"error": err.Error()})
		}
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(*AccessClaims)
	if !ok || !token.Valid {
		validatorLogger.Error("Token parsed without error, but claims type assertion failed", nil, nil)
		return nil, domain.ErrTokenInvalid
	}

	userID := claims.UserID
	if userID == "" {
		userID = claims.Subject
	}
	if userID == "" {
		validatorLogger.Warn("Token carries no user id", nil)
		return nil, domain.ErrTokenInvalid
	}

	validatorLogger.Debug("Token validated", port.Fields{"user_id": userID, "role": claims.Role})
	return &domain.Claims{UserID: userID, Role: claims.Role}, nil
}
