package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/userauth/internal/common"
	"github.com/dmitrijs2005/userauth/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
)

func testConfig() TokenConfig {
	return TokenConfig{
		SecretKey:     "super-secret-key-for-tests",
		Issuer:        "TestIssuer",
		Audience:      "TestAudience",
		ExpiryMinutes: 60,
	}
}

func testUser() *models.User {
	return &models.User{ID: 123, Email: "testuser@example.com", FullName: "Test User"}
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	iss := NewIssuer(testConfig())

	tok, err := iss.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if parts := strings.Split(tok, "."); len(parts) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(parts))
	}

	claims, err := iss.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.Subject != "123" || claims.Email != "testuser@example.com" || claims.Name != "Test User" {
		t.Fatalf("claims mismatch: %+v", claims)
	}
	if id, err := claims.UserID(); err != nil || id != 123 {
		t.Fatalf("UserID: got (%d, %v)", id, err)
	}
	if claims.ID == "" {
		t.Fatalf("jti must be set")
	}
	if claims.IssuedAt == nil {
		t.Fatalf("iat must be set")
	}
	if claims.Issuer != "TestIssuer" {
		t.Fatalf("issuer mismatch: %q", claims.Issuer)
	}
	if len(claims.Audience) != 1 || claims.Audience[0] != "TestAudience" {
		t.Fatalf("audience mismatch: %v", claims.Audience)
	}
}

func TestIssue_ExpiryIsIssuedAtPlusMinutes(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	cfg := testConfig()
	cfg.ExpiryMinutes = 15
	iss := NewIssuer(cfg, WithClock(clock.Now))

	tok, err := iss.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	claims, err := iss.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != 15*time.Minute {
		t.Fatalf("exp-iat = %v, want 15m", got)
	}
	if iss.ExpiresIn() != 15*60 {
		t.Fatalf("ExpiresIn = %d", iss.ExpiresIn())
	}
}

func TestVerify_ExpiryBoundary(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := &fakeClock{t: start}
	iss := NewIssuer(testConfig(), WithClock(clock.Now))

	tok, err := iss.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	clock.t = start.Add(59 * time.Minute)
	if _, err := iss.Verify(tok); err != nil {
		t.Fatalf("token must be valid at +59m, got %v", err)
	}

	clock.t = start.Add(61 * time.Minute)
	if _, err := iss.Verify(tok); !errors.Is(err, common.ErrTokenExpired) {
		t.Fatalf("want ErrTokenExpired at +61m, got %v", err)
	}
}

func TestNewIssuer_DefaultExpiry(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.ExpiryMinutes = 0
	if got := NewIssuer(cfg).ExpiresIn(); got != 3600 {
		t.Fatalf("ExpiresIn = %d, want 3600", got)
	}
}

func TestIssue_MissingSecret(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.SecretKey = ""
	tok, err := NewIssuer(cfg).Issue(testUser())
	if !errors.Is(err, common.ErrConfiguration) {
		t.Fatalf("want ErrConfiguration, got %v", err)
	}
	if tok != "" {
		t.Fatalf("no token expected, got %q", tok)
	}
}

func TestIssue_TokensAreDistinct(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	iss := NewIssuer(testConfig(), WithClock(clock.Now))

	u := testUser()
	a, err := iss.Issue(u)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	b, err := iss.Issue(u)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if a == b {
		t.Fatalf("same user, same instant: tokens must differ")
	}

	other, err := iss.Issue(&models.User{ID: 2, Email: "user2@example.com", FullName: "Test User"})
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if other == a || other == b {
		t.Fatalf("different users must get different tokens")
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewIssuer(testConfig()).Issue(testUser())
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	cfg := testConfig()
	cfg.SecretKey = "another-secret"
	if _, err := NewIssuer(cfg).Verify(tok); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken, got %v", err)
	}
}

func TestVerify_TamperedPayload(t *testing.T) {
	t.Parallel()

	iss := NewIssuer(testConfig())
	tok, err := iss.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	parts := strings.Split(tok, ".")
	payload := []byte(parts[1])
	mid := len(payload) / 2
	if payload[mid] == 'A' {
		payload[mid] = 'B'
	} else {
		payload[mid] = 'A'
	}
	parts[1] = string(payload)

	if _, err := iss.Verify(strings.Join(parts, ".")); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken, got %v", err)
	}
}

func TestVerify_IssuerAndAudienceMismatch(t *testing.T) {
	t.Parallel()

	tok, err := NewIssuer(testConfig()).Issue(testUser())
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	cfg := testConfig()
	cfg.Issuer = "SomeoneElse"
	if _, err := NewIssuer(cfg).Verify(tok); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("issuer mismatch: want ErrInvalidToken, got %v", err)
	}

	cfg = testConfig()
	cfg.Audience = "OtherAudience"
	if _, err := NewIssuer(cfg).Verify(tok); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("audience mismatch: want ErrInvalidToken, got %v", err)
	}
}

func TestVerify_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	claims := Claims{
		Email: "x@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			Issuer:    cfg.Issuer,
			Audience:  jwt.ClaimStrings{cfg.Audience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(cfg.SecretKey))
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}
	if _, err := NewIssuer(cfg).Verify(tok); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken, got %v", err)
	}
}

func TestVerify_MissingExpiry(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  "1",
			Issuer:   cfg.Issuer,
			Audience: jwt.ClaimStrings{cfg.Audience},
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.SecretKey))
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}
	if _, err := NewIssuer(cfg).Verify(tok); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken, got %v", err)
	}
}

func TestVerify_MalformedString(t *testing.T) {
	t.Parallel()

	claims, err := NewIssuer(testConfig()).Verify("not.a.jwt")
	if err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
	if claims != nil {
		t.Fatalf("no claims expected on failure")
	}
}

func TestVerify_MissingSecret(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.SecretKey = ""
	if _, err := NewIssuer(cfg).Verify("a.b.c"); !errors.Is(err, common.ErrConfiguration) {
		t.Fatalf("want ErrConfiguration, got %v", err)
	}
}
