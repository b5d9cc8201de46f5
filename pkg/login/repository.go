package login

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Admin represents an administrator credential record.
type Admin struct {
	ID             uuid.UUID
	Username       string
	Email          string
	PasswordHash   string
	TwofaMethod    string
	TwofaConfirmed bool
	CreatedAt      time.Time
}

// CreateAdminParams represents parameters for creating an admin record
type CreateAdminParams struct {
	Username     string
	Email        string
	PasswordHash string
	TwofaMethod  string
}

// AdminRepository persists admin credential records keyed by exact-match username.
type AdminRepository interface {
	GetAdminByUsername(ctx context.Context, username string) (Admin, error)
	CreateAdmin(ctx context.Context, params CreateAdminParams) (Admin, error)
	MarkTwofaConfirmed(ctx context.Context, username string) error
}

// PostgresAdminRepository implements AdminRepository using PostgreSQL
type PostgresAdminRepository struct {
	db *pgxpool.Pool
}

// NewPostgresAdminRepository creates a new PostgreSQL-based admin repository
func NewPostgresAdminRepository(db *pgxpool.Pool) *PostgresAdminRepository {
	return &PostgresAdminRepository{db: db}
}

// GetAdminByUsername retrieves an admin record by exact username
func (r *PostgresAdminRepository) GetAdminByUsername(ctx context.Context, username string) (Admin, error) {
	query := `
		SELECT id, username, email, password_hash, twofa_method, twofa_confirmed, created_at
		FROM admin_credentials
		WHERE username = $1
	`

	var a Admin
	err := r.db.QueryRow(ctx, query, username).Scan(
		&a.ID,
		&a.Username,
		&a.Email,
		&a.PasswordHash,
		&a.TwofaMethod,
		&a.TwofaConfirmed,
		&a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Admin{}, ErrAdminNotFound
		}
		return Admin{}, err
	}

	return a, nil
}

// CreateAdmin inserts a new admin record
func (r *PostgresAdminRepository) CreateAdmin(ctx context.Context, params CreateAdminParams) (Admin, error) {
	query := `
		INSERT INTO admin_credentials (username, email, password_hash, twofa_method, twofa_confirmed)
		VALUES ($1, $2, $3, $4, FALSE)
		ON CONFLICT (username) DO NOTHING
		RETURNING id, username, email, password_hash, twofa_method, twofa_confirmed, created_at
	`

	var a Admin
	err := r.db.QueryRow(ctx, query, params.Username, params.Email, params.PasswordHash, params.TwofaMethod).Scan(
		&a.ID,
		&a.Username,
		&a.Email,
		&a.PasswordHash,
		&a.TwofaMethod,
		&a.TwofaConfirmed,
		&a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Admin{}, ErrUsernameTaken
		}
		return Admin{}, err
	}

	return a, nil
}

// MarkTwofaConfirmed flips the confirmation flag after a successful verification
func (r *PostgresAdminRepository) MarkTwofaConfirmed(ctx context.Context, username string) error {
	query := `
		UPDATE admin_credentials
		SET twofa_confirmed = TRUE
		WHERE username = $1
	`

	tag, err := r.db.Exec(ctx, query, username)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrAdminNotFound
	}

	return nil
}
