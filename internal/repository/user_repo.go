package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"business_manager/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// UserRepository defines operations for user data
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id int) (*model.User, error)
	FindByToken(ctx context.Context, token string) (*model.User, error)
	UpdateSession(ctx context.Context, id int, token string, expiry time.Time) error
	ClearSession(ctx context.Context, id int) error
	List(ctx context.Context) ([]model.User, error)
}

type userRepository struct {
	db DBTX
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db DBTX) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, email, name, password_hash, role, access_token, access_token_expiry, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*model.User, error) {
	var (
		user   model.User
		token  pgtype.Text
		expiry pgtype.Timestamptz
	)
	if err := row.Scan(&user.ID, &user.Email, &user.Name, &user.PasswordHash, &user.Role, &token, &expiry, &user.CreatedAt); err != nil {
		return nil, err
	}
	user.AccessToken = textPtr(token)
	user.AccessTokenExpiry = timePtr(expiry)
	return &user, nil
}

// Create inserts a new user; a taken email yields ErrDuplicate
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	sql := `INSERT INTO users (email, name, password_hash, role, created_at)
            VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRow(ctx, sql, user.Email, user.Name, user.PasswordHash, user.Role, user.CreatedAt).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *userRepository) findOne(ctx context.Context, where string, arg any) (*model.User, error) {
	sql := `SELECT ` + userColumns + ` FROM users WHERE ` + where
	user, err := scanUser(r.db.QueryRow(ctx, sql, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // not found is left to the service layer
		}
		return nil, err
	}
	return user, nil
}

// FindByEmail retrieves a user by email
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := r.findOne(ctx, "email = $1", email)
	if err != nil {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return user, nil
}

// FindByID retrieves a user by their ID
func (r *userRepository) FindByID(ctx context.Context, id int) (*model.User, error) {
	user, err := r.findOne(ctx, "id = $1", id)
	if err != nil {
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	return user, nil
}

// FindByToken retrieves the user currently holding token. Tokens are not
// unique in the schema; the lowest id wins on a collision.
func (r *userRepository) FindByToken(ctx context.Context, token string) (*model.User, error) {
	user, err := r.findOne(ctx, "access_token = $1 ORDER BY id LIMIT 1", token)
	if err != nil {
		return nil, fmt.Errorf("failed to find user by token: %w", err)
	}
	return user, nil
}

// UpdateSession overwrites the stored token and expiry in one statement
func (r *userRepository) UpdateSession(ctx context.Context, id int, token string, expiry time.Time) error {
	sql := `UPDATE users SET access_token = $1, access_token_expiry = $2 WHERE id = $3`
	tag, err := r.db.Exec(ctx, sql, token, expiry, id)
	if err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to update session: user %d does not exist", id)
	}
	return nil
}

// ClearSession nulls both session fields; clearing an empty session is not an error
func (r *userRepository) ClearSession(ctx context.Context, id int) error {
	sql := `UPDATE users SET access_token = NULL, access_token_expiry = NULL WHERE id = $1`
	if _, err := r.db.Exec(ctx, sql, id); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// List returns all users ordered by id
func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}
	return users, nil
}
