package service

import (
	"MachCatalog/internal/auth"
	"MachCatalog/internal/repo"
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService проверяет учётные данные администратора и выпускает
// bearer-токены. Состояния на сервере нет: logout — забыть токен на клиенте.
type AuthService struct {
	users    repo.UserRepository
	secret   []byte
	tokenTTL time.Duration
}

func NewAuthService(users repo.UserRepository, secret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{users: users, secret: []byte(secret), tokenTTL: tokenTTL}
}

// Login ищет администратора по логину и сверяет пароль с bcrypt-хешем
// (сравнение внутри bcrypt константное по времени). Неизвестный логин и
// неверный пароль неразличимы для вызывающего.
func (s *AuthService) Login(ctx context.Context, login, password string) (string, error) {
	if login == "" || password == "" {
		return "", ErrValidation
	}

	user, err := s.users.GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUnauthorized
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrUnauthorized
	}

	return auth.GenerateToken(user.ID, s.secret, s.tokenTTL)
}
