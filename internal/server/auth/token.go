// Package auth implements password hashing, JWT issuance and verification,
// and the access guard used by protected endpoints.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/userauth/internal/common"
	"github.com/dmitrijs2005/userauth/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultExpiryMinutes is used when TokenConfig.ExpiryMinutes is not positive.
const DefaultExpiryMinutes = 60

// TokenConfig carries the signing settings for an Issuer.
type TokenConfig struct {
	SecretKey     string
	Issuer        string
	Audience      string
	ExpiryMinutes int
}

// Claims is the token payload: standard claims plus the user's email and
// display name. Subject holds the user id.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// UserID parses the subject back into a user id.
func (c *Claims) UserID() (int64, error) {
	return strconv.ParseInt(c.Subject, 10, 64)
}

// Issuer signs and verifies HS256 access tokens.
type Issuer struct {
	secret   []byte
	issuer   string
	audience string
	expiry   time.Duration
	minutes  int
	now      func() time.Time
}

// IssuerOption customizes an Issuer.
type IssuerOption func(*Issuer)

// WithClock replaces time.Now for issuance and expiry checks.
func WithClock(now func() time.Time) IssuerOption {
	return func(i *Issuer) { i.now = now }
}

// NewIssuer builds an Issuer. The secret is not checked here; Issue and
// Verify fail with common.ErrConfiguration while it is empty.
func NewIssuer(cfg TokenConfig, opts ...IssuerOption) *Issuer {
	minutes := cfg.ExpiryMinutes
	if minutes <= 0 {
		minutes = DefaultExpiryMinutes
	}
	i := &Issuer{
		secret:   []byte(cfg.SecretKey),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		minutes:  minutes,
		expiry:   time.Duration(minutes) * time.Minute,
		now:      time.Now,
	}
	for _, o := range opts {
		o(i)
	}
	return i
}

// ExpiresIn is the token lifetime in seconds.
func (i *Issuer) ExpiresIn() int {
	return i.minutes * 60
}

// Issue signs a token for user. Two calls never yield the same string: each
// token carries its own jti.
func (i *Issuer) Issue(user *models.User) (string, error) {
	if len(i.secret) == 0 {
		return "", fmt.Errorf("%w: signing secret is not configured", common.ErrConfiguration)
	}

	issuedAt := i.now().UTC()
	claims := Claims{
		Email: user.Email,
		Name:  user.FullName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(i.expiry)),
			Issuer:    i.issuer,
		},
	}
	if i.audience != "" {
		claims.Audience = jwt.ClaimStrings{i.audience}
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Verify checks signature, algorithm, issuer, audience and expiry. On
// failure no claims are returned.
func (i *Issuer) Verify(tokenString string) (*Claims, error) {
	if len(i.secret) == 0 {
		return nil, fmt.Errorf("%w: signing secret is not configured", common.ErrConfiguration)
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	}
	if i.issuer != "" {
		opts = append(opts, jwt.WithIssuer(i.issuer))
	}
	if i.audience != "" {
		opts = append(opts, jwt.WithAudience(i.audience))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}
	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
