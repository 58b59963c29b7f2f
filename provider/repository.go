package provider

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
	// ErrNotFound signals that the provider does not exist.
	ErrNotFound = errors.New("provider: not found")
	// ErrDuplicateEmail signals that the email is already registered.
	ErrDuplicateEmail = errors.New("provider: email already exists")
)

const providerColumns = `id, first_name, last_name, email, phone, address, postcode,
	expertise, description, password_hash, reset_token, reset_token_expiry, created_at, updated_at`

// Repository handles data access for service-provider accounts.
type Repository interface {
	Create(ctx context.Context, p Provider) (Provider, error)
	GetByEmail(ctx context.Context, email string) (Provider, error)
	GetByID(ctx context.Context, id string) (Provider, error)
	GetByResetToken(ctx context.Context, token string, now time.Time) (Provider, error)
	Update(ctx context.Context, p Provider) (Provider, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, limit int) ([]Provider, error)
	ListByExpertise(ctx context.Context, tag string, limit int) ([]Provider, error)
}

// PGRepository implements Repository backed by PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a PostgreSQL-backed provider repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// Create inserts a new provider row. The caller supplies the id and an
// already hashed password.
func (r *PGRepository) Create(ctx context.Context, p Provider) (Provider, error) {
	insertSQL := `
		INSERT INTO service_providers
			(id, first_name, last_name, email, phone, address, postcode, expertise, description, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + providerColumns

	created, err := scanProvider(r.pool.QueryRow(ctx, insertSQL,
		p.ID, p.FirstName, p.LastName, p.Email, p.Phone, p.Address, p.Postcode,
		p.Expertise, p.Description, p.PasswordHash))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return Provider{}, ErrDuplicateEmail
		}
		return Provider{}, fmt.Errorf("provider: create: %w", err)
	}

	return created, nil
}

// GetByEmail retrieves a provider by email address.
func (r *PGRepository) GetByEmail(ctx context.Context, email string) (Provider, error) {
	selectSQL := `SELECT ` + providerColumns + ` FROM service_providers WHERE email = $1`

	p, err := scanProvider(r.pool.QueryRow(ctx, selectSQL, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Provider{}, ErrNotFound
		}
		return Provider{}, fmt.Errorf("provider: get by email: %w", err)
	}

	return p, nil
}

// GetByID retrieves a provider by ID.
func (r *PGRepository) GetByID(ctx context.Context, id string) (Provider, error) {
	selectSQL := `SELECT ` + providerColumns + ` FROM service_providers WHERE id = $1`

	p, err := scanProvider(r.pool.QueryRow(ctx, selectSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Provider{}, ErrNotFound
		}
		return Provider{}, fmt.Errorf("provider: get by id: %w", err)
	}

	return p, nil
}

// GetByResetToken retrieves the provider holding the given reset token,
// provided the token has not expired at the supplied instant.
func (r *PGRepository) GetByResetToken(ctx context.Context, token string, now time.Time) (Provider, error) {
	selectSQL := `SELECT ` + providerColumns + ` FROM service_providers WHERE reset_token = $1 AND reset_token_expiry > $2`

	p, err := scanProvider(r.pool.QueryRow(ctx, selectSQL, token, now))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Provider{}, ErrNotFound
		}
		return Provider{}, fmt.Errorf("provider: get by reset token: %w", err)
	}

	return p, nil
}

// Update persists every mutable column of the given provider.
func (r *PGRepository) Update(ctx context.Context, p Provider) (Provider, error) {
	updateSQL := `
		UPDATE service_providers
		SET first_name = $2, last_name = $3, email = $4, phone = $5, address = $6,
			postcode = $7, expertise = $8, description = $9, password_hash = $10,
			reset_token = $11, reset_token_expiry = $12, updated_at = now()
		WHERE id = $1
		RETURNING ` + providerColumns

	updated, err := scanProvider(r.pool.QueryRow(ctx, updateSQL,
		p.ID, p.FirstName, p.LastName, p.Email, p.Phone, p.Address, p.Postcode,
		p.Expertise, p.Description, p.PasswordHash, p.ResetToken, p.ResetTokenExpiry))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Provider{}, ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return Provider{}, ErrDuplicateEmail
		}
		return Provider{}, fmt.Errorf("provider: update: %w", err)
	}

	return updated, nil
}

// Delete removes a provider row and reports whether a row was deleted.
func (r *PGRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM service_providers WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("provider: delete: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// List fetches up to limit providers ordered by creation time, newest first.
func (r *PGRepository) List(ctx context.Context, limit int) ([]Provider, error) {
	selectSQL := `SELECT ` + providerColumns + ` FROM service_providers ORDER BY created_at DESC LIMIT $1`
	return r.queryProviders(ctx, selectSQL, clampLimit(limit))
}

// ListByExpertise fetches up to limit providers whose expertise contains tag.
func (r *PGRepository) ListByExpertise(ctx context.Context, tag string, limit int) ([]Provider, error) {
	selectSQL := `
		SELECT ` + providerColumns + `
		FROM service_providers
		WHERE $1 = ANY(expertise)
		ORDER BY created_at DESC
		LIMIT $2`
	return r.queryProviders(ctx, selectSQL, tag, clampLimit(limit))
}

func (r *PGRepository) queryProviders(ctx context.Context, query string, args ...any) ([]Provider, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("provider: query: %w", err)
	}
	defer rows.Close()

	providers := make([]Provider, 0)
	for rows.Next() {
		p, err := scanProvider(rows)
		if err != nil {
			return nil, fmt.Errorf("provider: scan row: %w", err)
		}
		providers = append(providers, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("provider: iterate rows: %w", err)
	}

	return providers, nil
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > 100 {
		return 100
	}
	return limit
}

func scanProvider(row pgx.Row) (Provider, error) {
	var p Provider
	err := row.Scan(
		&p.ID,
		&p.FirstName,
		&p.LastName,
		&p.Email,
		&p.Phone,
		&p.Address,
		&p.Postcode,
		&p.Expertise,
		&p.Description,
		&p.PasswordHash,
		&p.ResetToken,
		&p.ResetTokenExpiry,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return Provider{}, err
	}
	return p, nil
}
