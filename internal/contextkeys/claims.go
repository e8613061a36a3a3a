package contextkeys

import (
	"context"

	"github.com/MaryChris21/Estify/internal/core/domain"
)

type claimsKeyType struct{}

var claimsKey = claimsKeyType{}

func ContextWithClaims(ctx context.Context, claims *domain.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext returns the caller identity set by the auth middleware.
func ClaimsFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*domain.Claims)
	return claims, ok && claims != nil
}
