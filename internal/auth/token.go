package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"sams-backend/internal/domain"
)

// ErrInvalidToken covers every way a token can fail validation: bad
// signature, unexpected algorithm, expiry, or structural garbage.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the signed claim set carried by an access token.
type Claims struct {
	Role   domain.Role `json:"role"`
	UserID int64       `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenConfig carries the signing material and token lifetime. Now is
// optional and exists so tests can pin the clock; it defaults to time.Now.
type TokenConfig struct {
	Secret []byte
	TTL    time.Duration
	Now    func() time.Time
}

// TokenService issues and validates signed, time-bounded bearer tokens.
// Tokens are stateless: validity is purely a function of signature and
// expiry, so there is no revocation short of rotating the secret.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(cfg TokenConfig) (*TokenService, error) {
	if len(cfg.Secret) == 0 {
		return nil, errors.New("token secret is required")
	}
	if cfg.TTL <= 0 {
		return nil, errors.New("token ttl must be positive")
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &TokenService{secret: cfg.Secret, ttl: cfg.TTL, now: now}, nil
}

// Issue creates a signed token for the user, expiring after the configured TTL.
// The subject claim carries the user's email.
func (s *TokenService) Issue(user *domain.User) (string, error) {
	now := s.now()
	claims := &Claims{
		Role:   user.Role,
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate verifies the token's signature, algorithm, and expiry, and
// returns the embedded claims. All failures collapse to ErrInvalidToken.
func (s *TokenService) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
