package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ignatzorin/creative-marketplace/internal/models"
	"github.com/ignatzorin/creative-marketplace/internal/pkg/apperror"
)

// mockAuthRepository реализует AuthRepository для тестов.
type mockAuthRepository struct {
	users  map[string]*models.User
	nextID int64
}

func newMockAuthRepository() *mockAuthRepository {
	return &mockAuthRepository{users: make(map[string]*models.User), nextID: 1}
}

func (m *mockAuthRepository) Create(ctx context.Context, user *models.User) error {
	user.ID = m.nextID
	m.nextID++
	user.CreatedAt = time.Now()
	m.users[user.Username] = user
	return nil
}

func (m *mockAuthRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return m.users[username], nil
}

func newAuthService() (*AuthService, *mockAuthRepository) {
	repo := newMockAuthRepository()
	return NewAuthService(repo, NewTokenManager("test-secret", time.Hour)), repo
}

func TestAuthService_Register(t *testing.T) {
	svc, repo := newAuthService()

	user, err := svc.Register(context.Background(), RegisterInput{
		Username:  "alice",
		Email:     "Alice@Example.com",
		Password:  "password123",
		Role:      "creative",
		FirstName: "Alice",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "creative", user.Role)
	assert.NotEqual(t, "password123", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.users["alice"].PasswordHash), []byte("password123")))
}

func TestAuthService_RegisterDefaultsToClient(t *testing.T) {
	svc, _ := newAuthService()

	user, err := svc.Register(context.Background(), RegisterInput{Username: "bob", Password: "password123"})

	require.NoError(t, err)
	assert.Equal(t, "client", user.Role)
}

func TestAuthService_RegisterValidation(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Username: "bob", Password: "short"})
	assert.True(t, apperror.IsValidation(err))

	_, err = svc.Register(ctx, RegisterInput{Username: "bob", Password: "password123", Role: "admin"})
	assert.True(t, apperror.IsValidation(err))

	_, err = svc.Register(ctx, RegisterInput{Username: "bad name", Password: "password123"})
	assert.True(t, apperror.IsValidation(err))
}

func TestAuthService_RegisterDuplicate(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()
	_, err := svc.Register(ctx, RegisterInput{Username: "alice", Password: "password123"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterInput{Username: "alice", Password: "password456"})

	assert.ErrorIs(t, err, apperror.ErrUsernameTaken)
}

func TestAuthService_Login(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()
	registered, err := svc.Register(ctx, RegisterInput{Username: "alice", Password: "password123", Role: "creative"})
	require.NoError(t, err)

	result, err := svc.Login(ctx, "alice", "password123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, result.User.ID)

	userID, role, err := svc.tokenManager.Parse(result.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, userID)
	assert.Equal(t, "creative", role)
}

func TestAuthService_LoginInvalidCredentials(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()
	_, err := svc.Register(ctx, RegisterInput{Username: "alice", Password: "password123"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, "alice", "wrong-password")
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody", "password123")
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}
