package repository

import (
	"context"
	"database/sql"
	"errors"

	"app/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicateEmail is returned when an insert violates the unique constraint
// on the email address column.
var ErrDuplicateEmail = errors.New("email address already registered")

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

type UserRepository interface {
	CreateUser(ctx context.Context, u *model.User) error
	// GetUserByEmail retrieves a user by exact, case-sensitive email match.
	GetUserByEmail(ctx context.Context, emailAddress string) (*model.User, error)
}

type userRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) UserRepository {
	return &userRepo{db: db}
}

// CreateUser inserts a new user and fills in the generated identifier and
// timestamps. A duplicate email address yields ErrDuplicateEmail.
func (r *userRepo) CreateUser(ctx context.Context, u *model.User) error {
	u.ID = uuid.NewString()
	query := `
		INSERT INTO users (id, first_name, last_name, email_address, password_hash)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query, u.ID, u.FirstName, u.LastName, u.EmailAddress, u.PasswordHash).
		Scan(&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *userRepo) GetUserByEmail(ctx context.Context, emailAddress string) (*model.User, error) {
	query := `
		SELECT id, first_name, last_name, email_address, password_hash, created_at, updated_at
		FROM users
		WHERE email_address = $1
	`
	var u model.User
	err := r.db.QueryRowContext(ctx, query, emailAddress).Scan(
		&u.ID,
		&u.FirstName,
		&u.LastName,
		&u.EmailAddress,
		&u.PasswordHash,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
