package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"doclyn-be/internal/entities"
)

// ErrUserNotFound indicates the requested user does not exist.
var ErrUserNotFound = errors.New("user not found")

// ErrUserExists indicates a primary-key conflict on insert.
var ErrUserExists = errors.New("user already exists")

// UserRepository defines the interface for user database operations
type UserRepository interface {
	FindByID(id string) (*entities.User, error)
	FindByEmail(email string) (*entities.User, error)
	Create(user *entities.User) (*entities.User, error)
	Save(user *entities.User) (*entities.User, error)
}

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

// FindByID finds a user by its opaque identifier
func (r *userRepository) FindByID(id string) (*entities.User, error) {
	query := `
		SELECT id, email, full_name, password, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	return r.scanOne(r.db.QueryRow(query, id))
}

// FindByEmail finds a user by email. Email is not unique at the database
// level; the first match wins.
func (r *userRepository) FindByEmail(email string) (*entities.User, error) {
	query := `
		SELECT id, email, full_name, password, created_at, updated_at
		FROM users
		WHERE email = $1
		LIMIT 1
	`

	return r.scanOne(r.db.QueryRow(query, email))
}

// Create inserts a new user row, failing on an existing id
func (r *userRepository) Create(user *entities.User) (*entities.User, error) {
	query := `
		INSERT INTO users (id, email, full_name, password)
		VALUES ($1, $2, $3, $4)
		RETURNING id, email, full_name, password, created_at, updated_at
	`

	created, err := r.scanOne(r.db.QueryRow(query, user.ID, user.Email, user.FullName, user.Password))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrUserExists
		}
		return nil, err
	}
	return created, nil
}

// Save upserts a user row keyed by id
func (r *userRepository) Save(user *entities.User) (*entities.User, error) {
	query := `
		INSERT INTO users (id, email, full_name, password)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET email = EXCLUDED.email, full_name = EXCLUDED.full_name, password = EXCLUDED.password, updated_at = NOW()
		RETURNING id, email, full_name, password, created_at, updated_at
	`

	return r.scanOne(r.db.QueryRow(query, user.ID, user.Email, user.FullName, user.Password))
}

func (r *userRepository) scanOne(row *sql.Row) (*entities.User, error) {
	var user entities.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.FullName,
		&user.Password,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	return &user, nil
}
