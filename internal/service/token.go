package service

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ignatzorin/creative-marketplace/internal/models"
)

// TokenManager выпускает и проверяет access токены (HS256).
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue выпускает токен с sub = id пользователя и ролью.
func (m *TokenManager) Issue(user *models.User) (string, time.Time, error) {
	now := m.now()
	exp := now.Add(m.ttl)
	claims := jwt.MapClaims{
		"sub":  strconv.FormatInt(user.ID, 10),
		"role": user.Role,
		"iat":  now.Unix(),
		"exp":  exp.Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, exp, nil
}

// Parse проверяет подпись и срок, возвращает id пользователя и роль.
func (m *TokenManager) Parse(token string) (int64, string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(m.now))
	if err != nil {
		return 0, "", err
	}
	if !parsed.Valid {
		return 0, "", jwt.ErrTokenInvalidClaims
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", jwt.ErrTokenInvalidClaims
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return 0, "", err
	}
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil || userID <= 0 {
		return 0, "", errors.New("token subject is not a user id")
	}
	role, _ := claims["role"].(string)
	return userID, role, nil
}
