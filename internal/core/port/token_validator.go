package port

import (
	"context"

	"github.com/MaryChris21/Estify/internal/core/domain"
)

// TokenValidatorPort turns a bearer token into the caller identity.
type TokenValidatorPort interface {
	ValidateToken(ctx context.Context, tokenString string) (*domain.Claims, error)
}
