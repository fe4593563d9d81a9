package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"shorturl-be/internal/entities"
)

// TokenTTL is the fixed lifetime of a session token.
const TokenTTL = time.Hour

// ErrInvalidToken covers every reason a token is rejected: bad signature, malformed, expired.
var ErrInvalidToken = errors.New("token invalid or expired")

// Claims is the payload carried in a session token
type Claims struct {
	UserID   string        `json:"id"`
	Username string        `json:"username"`
	Role     entities.Role `json:"role"`
	jwt.RegisteredClaims
}

// JWTService signs and verifies session tokens. Tokens are self-contained;
// nothing is stored server side, so a token stays valid until it expires.
type JWTService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService creates a new JWT service
func NewJWTService(secret string) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		ttl:    TokenTTL,
		now:    time.Now,
	}
}

// WithClock replaces the time source used to stamp and check tokens.
func (s *JWTService) WithClock(now func() time.Time) *JWTService {
	s.now = now
	return s
}

// GenerateToken issues a signed token for the given identity
func (s *JWTService) GenerateToken(identity entities.Identity) (string, error) {
	issuedAt := s.now()

	claims := Claims{
		UserID:   identity.UserID,
		Username: identity.Username,
		Role:     identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return token, nil
}

// ValidateToken verifies the signature and expiry of a token and returns the identity it carries
func (s *JWTService) ValidateToken(tokenString string) (*entities.Identity, error) {
	var claims Claims

	_, err := jwt.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if _, err := entities.ParseRole(string(claims.Role)); err != nil || claims.UserID == "" {
		return nil, ErrInvalidToken
	}

	return &entities.Identity{
		UserID:   claims.UserID,
		Username: claims.Username,
		Role:     claims.Role,
	}, nil
}
