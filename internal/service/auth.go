package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/dailydish/backend/internal/types"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService issues and validates the JWT tokens guarding catalog write
// endpoints. There is a single admin identity configured via environment.
type AuthService struct {
	jwtSecret         string
	adminUsername     string
	adminPasswordHash string
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(jwtSecret, adminUsername, adminPasswordHash string) *AuthService {
	return &AuthService{
		jwtSecret:         jwtSecret,
		adminUsername:     adminUsername,
		adminPasswordHash: adminPasswordHash,
	}
}

// Login checks the admin credentials and returns a signed token.
func (s *AuthService) Login(username, password string) (string, error) {
	if username != s.adminUsername {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.adminPasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.generateToken(username)
}

func (s *AuthService) generateToken(username string) (string, error) {
	claims := &types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
		Username: username,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken parses and verifies a token, returning its claims.
func (s *AuthService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &types.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*types.TokenClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
