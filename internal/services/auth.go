package services

import (
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidPassword = errors.New("invalid password")

// AuthService gates the session-control surface behind a shared password.
// This is convenience access control for the organizer panel, not a security
// boundary: anyone deploying this publicly should front it with real auth.
type AuthService struct {
	password  string
	jwtSecret []byte
}

func NewAuthService(password, jwtSecret string) *AuthService {
	return &AuthService{password: password, jwtSecret: []byte(jwtSecret)}
}

func (s *AuthService) Login(password string) (string, error) {
	if !s.checkPassword(password) {
		return "", ErrInvalidPassword
	}
	return s.GenerateToken()
}

// checkPassword accepts either a bcrypt hash or a plain value in config.
func (s *AuthService) checkPassword(password string) bool {
	if strings.HasPrefix(s.password, "$2a$") || strings.HasPrefix(s.password, "$2b$") {
		return bcrypt.CompareHashAndPassword([]byte(s.password), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(s.password), []byte(password)) == 1
}

func (s *AuthService) GenerateToken() (string, error) {
	claims := jwt.MapClaims{
		"role": "organizer",
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *AuthService) ValidateToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return errors.New("invalid token")
	}
	return nil
}
