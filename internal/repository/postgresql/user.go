package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/attendo-hq/attendance-backend-go/internal/domain/user"
	"github.com/attendo-hq/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepository{db: db}
}

// GetByEmail implements user.UserRepository.
func (u *userRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return u.getBy(ctx, "email", email)
}

// GetByID implements user.UserRepository.
func (u *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	return u.getBy(ctx, "id", id)
}

func (u *userRepository) getBy(ctx context.Context, column, value string) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := fmt.Sprintf(`
		SELECT id, email, password_hash, role, created_at, updated_at
		FROM users
		WHERE %s = $1
	`, column)

	var usr user.User
	err := q.QueryRow(ctx, query, value).Scan(
		&usr.ID, &usr.Email, &usr.PasswordHash, &usr.Role,
		&usr.CreatedAt, &usr.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return usr, nil
}

// Create implements user.UserRepository.
func (u *userRepository) Create(ctx context.Context, usr user.User) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		INSERT INTO users (email, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, usr.Email, usr.PasswordHash, usr.Role).
		Scan(&usr.ID, &usr.CreatedAt, &usr.UpdatedAt)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return usr, nil
}
