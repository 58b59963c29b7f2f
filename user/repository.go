package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrNotFound signals that the user does not exist.
	ErrNotFound = errors.New("user: not found")
	// ErrDuplicateEmail signals that the email is already registered.
	ErrDuplicateEmail = errors.New("user: email already exists")
)

const userColumns = `id, first_name, last_name, email, phone, address, postcode,
	password_hash, reset_token, reset_token_expiry, created_at, updated_at`

// Repository handles data access for regular accounts.
type Repository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByResetToken(ctx context.Context, token string, now time.Time) (User, error)
	Update(ctx context.Context, u User) (User, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, limit int) ([]User, error)
}

// PGRepository implements Repository backed by PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a PostgreSQL-backed user repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// Create inserts a new user row. The caller supplies the id and an already
// hashed password.
func (r *PGRepository) Create(ctx context.Context, u User) (User, error) {
	insertSQL := `
		INSERT INTO users (id, first_name, last_name, email, phone, address, postcode, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + userColumns

	created, err := scanUser(r.pool.QueryRow(ctx, insertSQL,
		u.ID, u.FirstName, u.LastName, u.Email, u.Phone, u.Address, u.Postcode, u.PasswordHash))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return User{}, ErrDuplicateEmail
		}
		return User{}, fmt.Errorf("user: create: %w", err)
	}

	return created, nil
}

// GetByEmail retrieves a user by email address.
func (r *PGRepository) GetByEmail(ctx context.Context, email string) (User, error) {
	selectSQL := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	u, err := scanUser(r.pool.QueryRow(ctx, selectSQL, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("user: get by email: %w", err)
	}

	return u, nil
}

// GetByID retrieves a user by ID.
func (r *PGRepository) GetByID(ctx context.Context, id string) (User, error) {
	selectSQL := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	u, err := scanUser(r.pool.QueryRow(ctx, selectSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("user: get by id: %w", err)
	}

	return u, nil
}

// GetByResetToken retrieves the user holding the given reset token, provided
// the token has not expired at the supplied instant.
func (r *PGRepository) GetByResetToken(ctx context.Context, token string, now time.Time) (User, error) {
	selectSQL := `SELECT ` + userColumns + ` FROM users WHERE reset_token = $1 AND reset_token_expiry > $2`

	u, err := scanUser(r.pool.QueryRow(ctx, selectSQL, token, now))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("user: get by reset token: %w", err)
	}

	return u, nil
}

// Update persists every mutable column of the given user.
func (r *PGRepository) Update(ctx context.Context, u User) (User, error) {
	updateSQL := `
		UPDATE users
		SET first_name = $2, last_name = $3, email = $4, phone = $5, address = $6,
			postcode = $7, password_hash = $8, reset_token = $9, reset_token_expiry = $10,
			updated_at = now()
		WHERE id = $1
		RETURNING ` + userColumns

	updated, err := scanUser(r.pool.QueryRow(ctx, updateSQL,
		u.ID, u.FirstName, u.LastName, u.Email, u.Phone, u.Address, u.Postcode,
		u.PasswordHash, u.ResetToken, u.ResetTokenExpiry))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return User{}, ErrDuplicateEmail
		}
		return User{}, fmt.Errorf("user: update: %w", err)
	}

	return updated, nil
}

// Delete removes a user row and reports whether a row was deleted.
func (r *PGRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("user: delete: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// List fetches up to limit users ordered by creation time, newest first.
func (r *PGRepository) List(ctx context.Context, limit int) ([]User, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}

	selectSQL := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, selectSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("user: list: %w", err)
	}
	defer rows.Close()

	users := make([]User, 0, limit)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("user: scan row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("user: iterate rows: %w", err)
	}

	return users, nil
}

func scanUser(row pgx.Row) (User, error) {
	var u User
	err := row.Scan(
		&u.ID,
		&u.FirstName,
		&u.LastName,
		&u.Email,
		&u.Phone,
		&u.Address,
		&u.Postcode,
		&u.PasswordHash,
		&u.ResetToken,
		&u.ResetTokenExpiry,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return User{}, err
	}
	return u, nil
}
