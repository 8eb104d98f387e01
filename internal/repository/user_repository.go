package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/creative-marketplace/internal/models"
	"github.com/ignatzorin/creative-marketplace/internal/pkg/apperror"
	"github.com/ignatzorin/creative-marketplace/internal/repository/common"
)

// UserRepository работает с таблицей users.
type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, email, first_name, last_name, password_hash, role)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		user.Username, user.Email, user.FirstName, user.LastName, user.PasswordHash, user.Role,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if common.IsUniqueViolation(err, "users_username_key") {
			return apperror.ErrUsernameTaken
		}
		return apperror.Database(err, "failed to create user")
	}
	return nil
}

// GetByUsername возвращает nil, nil если пользователя нет.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := common.GetByField[models.User](ctx, r.db, "users", "username", username, nil)
	if err != nil {
		return nil, apperror.Database(err, "failed to load user")
	}
	return user, nil
}
