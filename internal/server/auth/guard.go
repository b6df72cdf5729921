package auth

import (
	"context"

	"github.com/dmitrijs2005/userauth/internal/common"
)

// Verifier is the part of Issuer the guard depends on.
type Verifier interface {
	Verify(token string) (*Claims, error)
}

// Guard gates protected operations on a valid access token.
type Guard struct {
	verifier Verifier
}

// NewGuard returns a Guard that checks tokens with v.
func NewGuard(v Verifier) *Guard {
	return &Guard{verifier: v}
}

// Authorize returns the token's claims, or common.ErrorUnauthorized for a
// missing, malformed, forged, expired or foreign token.
func (g *Guard) Authorize(token string) (*Claims, error) {
	if token == "" {
		return nil, common.ErrorUnauthorized
	}
	claims, err := g.verifier.Verify(token)
	if err != nil {
		return nil, common.ErrorUnauthorized
	}
	return claims, nil
}

type ctxKey struct{}

// WithClaims stores verified claims in ctx.
func WithClaims(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, ctxKey{}, c)
}

// ClaimsFromContext returns the claims set by the guard, if any.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(ctxKey{}).(*Claims)
	return c, ok && c != nil
}
