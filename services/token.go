package services

import (
	"Henteklar/models"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenTTL = 24 * time.Hour

type Claims struct {
	Email       string `json:"email"`
	FirebaseUID string `json:"firebase_uid"`
	AccountID   string `json:"account_id"`
	Role        string `json:"role"`
	Name        string `json:"name"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies session tokens with a shared HS256 secret.
type TokenIssuer struct {
	secret []byte
	now    func() time.Time
}

func NewTokenIssuer(secret string) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), now: time.Now}
}

func (t *TokenIssuer) Issue(session models.Session) (string, error) {
	now := t.now()
	claims := &Claims{
		Email:       session.Email,
		FirebaseUID: session.FirebaseUID,
		AccountID:   session.AccountID,
		Role:        session.Role,
		Name:        session.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   session.AccountID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies tokenString and returns the session it carries.
func (t *TokenIssuer) Parse(tokenString string) (models.Session, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(t.now))
	if err != nil {
		return models.Session{}, err
	}
	if !token.Valid {
		return models.Session{}, errors.New("invalid token")
	}
	return models.Session{
		AccountID:   claims.AccountID,
		FirebaseUID: claims.FirebaseUID,
		Email:       claims.Email,
		Name:        claims.Name,
		Role:        claims.Role,
	}, nil
}
