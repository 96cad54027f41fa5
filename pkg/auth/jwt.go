package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid session token")

// SessionClaims identifies a browser session. The token ID is the session id.
type SessionClaims struct {
	jwt.RegisteredClaims
}

// JWTService issues and validates session tokens.
type JWTService interface {
	GenerateSessionToken(sessionID uuid.UUID) (string, error)
	ValidateSessionToken(token string) (uuid.UUID, error)
}

type jwtService struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewJWTService returns an HS256 session token service.
func NewJWTService(secret, issuer string, ttl time.Duration) JWTService {
	return &jwtService{secret: []byte(secret), issuer: issuer, ttl: ttl}
}

func (s *jwtService) GenerateSessionToken(sessionID uuid.UUID) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

func (s *jwtService) ValidateSessionToken(tokenString string) (uuid.UUID, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, opts...)
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	id, err := uuid.Parse(claims.ID)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return id, nil
}
