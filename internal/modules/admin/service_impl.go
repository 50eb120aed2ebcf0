package admin

import (
	"context"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/amherst-artisan-market/market-backend/internal/common"
)

const tokenSubject = "admin"

type service struct {
	passwordHash []byte
	jwtKey       []byte
	sessionTTL   time.Duration
	// failureDelay is the floor a failed login takes, on top of the bcrypt
	// cost, to blunt guessing.
	failureDelay time.Duration
}

// NewService creates the admin auth service. passwordHash is a bcrypt hash
// of the dashboard password.
func NewService(passwordHash, jwtSecret string, sessionTTL, failureDelay time.Duration) Service {
	return &service{
		passwordHash: []byte(passwordHash),
		jwtKey:       []byte(jwtSecret),
		sessionTTL:   sessionTTL,
		failureDelay: failureDelay,
	}
}

func (s *service) Login(ctx context.Context, password string) (*Session, error) {
	if password == "" {
		return nil, common.NewValidationError("password", "password is required")
	}

	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		logrus.Warn("rejected admin login attempt")
		if s.failureDelay > 0 {
			select {
			case <-time.After(s.failureDelay):
			case <-ctx.Done():
			}
		}
		return nil, common.NewError(common.CodeUnauthorized, "invalid password", nil)
	}

	expiresAt := time.Now().Add(s.sessionTTL)
	claims := &jwt.StandardClaims{
		Subject:   tokenSubject,
		IssuedAt:  time.Now().Unix(),
		ExpiresAt: expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtKey)
	if err != nil {
		return nil, common.NewError(common.CodeDownstream, "failed to sign session token", err)
	}

	return &Session{Token: tokenString, ExpiresAt: expiresAt}, nil
}

func (s *service) Verify(token string) error {
	claims := &jwt.StandardClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.NewError(common.CodeUnauthorized, "unexpected signing method", nil)
		}
		return s.jwtKey, nil
	})
	if err != nil || !parsed.Valid {
		return common.NewError(common.CodeUnauthorized, "invalid token", err)
	}
	if claims.Subject != tokenSubject {
		return common.NewError(common.CodeUnauthorized, "invalid token subject", nil)
	}
	return nil
}
