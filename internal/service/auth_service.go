package service

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/ignatzorin/creative-marketplace/internal/domain/valueobject"
	"github.com/ignatzorin/creative-marketplace/internal/logger"
	"github.com/ignatzorin/creative-marketplace/internal/models"
	"github.com/ignatzorin/creative-marketplace/internal/pkg/apperror"
	"github.com/ignatzorin/creative-marketplace/internal/validation"
)

// AuthRepository описывает зависимости AuthService от слоя хранилища.
type AuthRepository interface {
	Create(ctx context.Context, user *models.User) error
	// GetByUsername возвращает nil, nil если пользователя нет.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// AuthService регистрирует пользователей и проверяет пароли.
type AuthService struct {
	repo         AuthRepository
	tokenManager *TokenManager
}

type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	Role      string
	FirstName string
	LastName  string
}

type LoginResult struct {
	User  *models.User
	Token string
}

func NewAuthService(repo AuthRepository, tokenManager *TokenManager) *AuthService {
	return &AuthService{
		repo:         repo,
		tokenManager: tokenManager,
	}
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := validation.ValidateUsername(in.Username); err != nil {
		return nil, err
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, err
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, err
	}
	if err := validation.ValidateLength("first_name", in.FirstName, 0, validation.MaxNameLength); err != nil {
		return nil, err
	}
	if err := validation.ValidateLength("last_name", in.LastName, 0, validation.MaxNameLength); err != nil {
		return nil, err
	}
	role, err := valueobject.NewUserRole(in.Role)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeInternal, "failed to hash password")
	}

	user := &models.User{
		Username:     in.Username,
		Email:        in.Email,
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		PasswordHash: string(hash),
		Role:         string(role),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.WithComponent("auth").WithFields(logrus.Fields{
		"user_id": user.ID,
		"role":    user.Role,
	}).Info("пользователь зарегистрирован")
	return user, nil
}

// Login возвращает одинаковую ошибку для неизвестного логина и неверного пароля.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.repo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	token, _, err := s.tokenManager.Issue(user)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeInternal, "failed to issue token")
	}

	return &LoginResult{User: user, Token: token}, nil
}
