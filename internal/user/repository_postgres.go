package user

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/cterryc/netlify-two/internal/apperr"
)

const opTimeout = 5 * time.Second

const (
	createUsersTable = `
		CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			phone TEXT NOT NULL,
			"createdAt" TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			"updatedAt" TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	alterUsersTable = `
		ALTER TABLE users
			ADD COLUMN IF NOT EXISTS name TEXT NOT NULL,
			ADD COLUMN IF NOT EXISTS email TEXT NOT NULL,
			ADD COLUMN IF NOT EXISTS phone TEXT NOT NULL,
			ADD COLUMN IF NOT EXISTS "createdAt" TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			ADD COLUMN IF NOT EXISTS "updatedAt" TIMESTAMPTZ NOT NULL DEFAULT NOW()
	`
	createUsersEmailIndex = `
		CREATE UNIQUE INDEX IF NOT EXISTS users_email_key ON users (email)
	`

	insertUserQuery = `
		INSERT INTO users (name, email, phone)
		VALUES ($1, $2, $3)
		RETURNING id, name, email, phone, "createdAt", "updatedAt"
	`
	listUsersQuery = `
		SELECT id, name, email, phone, "createdAt", "updatedAt"
		FROM users
		ORDER BY "createdAt" DESC, id DESC
	`
)

type PostgresRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// EnsureSchema brings the users table in line with the current model.
// Every statement is idempotent, so running it on an existing database
// is safe.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	for _, stmt := range []string{createUsersTable, alterUsersTable, createUsersEmailIndex} {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (r *PostgresRepository) Create(ctx context.Context, input CreateInput) (User, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	row := r.db.QueryRowContext(ctx, insertUserQuery, input.Name, input.Email, input.Phone)
	user, err := scanUser(row)
	if err != nil {
		return User{}, storeError(err)
	}

	return user, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]User, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, listUsersQuery)
	if err != nil {
		return nil, storeError(err)
	}
	defer rows.Close()

	users := make([]User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, storeError(err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError(err)
	}

	return users, nil
}

func scanUser(scanner rowScanner) (User, error) {
	user := User{}
	err := scanner.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Phone,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	return user, err
}

// storeError translates a driver error into the matching domain error.
// Constraint violations keep their meaning; everything else reports the
// store as unavailable.
func storeError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return apperr.DuplicateEmail()
		case "23502", "23514":
			return apperr.ValidationFailed(nil)
		}
	}
	return apperr.StoreUnavailable(err)
}
