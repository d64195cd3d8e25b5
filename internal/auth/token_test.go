package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sams-backend/internal/domain"
)

var testUser = &domain.User{
	ID:       42,
	Username: "alice",
	Email:    "a@x.com",
	Role:     domain.RoleUser,
	IsActive: true,
}

func newTestTokenService(t *testing.T, now time.Time) *TokenService {
	t.Helper()
	svc, err := NewTokenService(TokenConfig{
		Secret: []byte("test-secret"),
		TTL:    30 * time.Minute,
		Now:    func() time.Time { return now },
	})
	require.NoError(t, err)
	return svc
}

func TestNewTokenServiceRequiresSecretAndTTL(t *testing.T) {
	_, err := NewTokenService(TokenConfig{TTL: time.Minute})
	assert.Error(t, err)

	_, err = NewTokenService(TokenConfig{Secret: []byte("s")})
	assert.Error(t, err)
}

func TestIssueAndValidate(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestTokenService(t, now)

	token, err := svc.Issue(testUser)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)

	assert.Equal(t, "a@x.com", claims.Subject)
	assert.Equal(t, domain.RoleUser, claims.Role)
	assert.Equal(t, int64(42), claims.UserID)
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.Time.After(now))
	assert.Equal(t, now.Add(30*time.Minute), claims.ExpiresAt.Time.UTC())
}

func TestValidateExpiredToken(t *testing.T) {
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	issuer := newTestTokenService(t, issuedAt)

	token, err := issuer.Issue(testUser)
	require.NoError(t, err)

	// Same secret, clock moved past the TTL.
	later := newTestTokenService(t, issuedAt.Add(31*time.Minute))
	_, err = later.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateWrongKey(t *testing.T) {
	now := time.Now()
	svc := newTestTokenService(t, now)

	other, err := NewTokenService(TokenConfig{
		Secret: []byte("a-different-secret"),
		TTL:    30 * time.Minute,
		Now:    func() time.Time { return now },
	})
	require.NoError(t, err)

	token, err := other.Issue(testUser)
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateMalformedToken(t *testing.T) {
	svc := newTestTokenService(t, time.Now())

	for _, tokenString := range []string{"", "garbage", "a.b.c"} {
		_, err := svc.Validate(tokenString)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestValidateRejectsUnexpectedAlgorithm(t *testing.T) {
	svc := newTestTokenService(t, time.Now())

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		Role:   domain.RoleAdmin,
		UserID: 42,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "a@x.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
