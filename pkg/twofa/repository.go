package twofa

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Principal is the slice of the admin record the 2FA core needs: the
// username it is keyed by and the contact address for passcode delivery.
type Principal struct {
	ID       uuid.UUID
	Username string
	Email    string
}

// Challenge is the stored representation of an outstanding passcode: the
// keyed digest and the absolute expiry. A challenge is either absent or
// complete, never partially set.
type Challenge struct {
	CodeHash  string
	ExpiresAt time.Time
}

// ChallengeRepository persists challenges keyed by exact-match username.
// SetChallenge overwrites any prior challenge for the username; the backing
// store must provide per-row atomic update.
type ChallengeRepository interface {
	GetPrincipal(ctx context.Context, username string) (Principal, error)
	GetChallenge(ctx context.Context, username string) (Challenge, error)
	SetChallenge(ctx context.Context, username string, challenge Challenge) error
	ClearChallenge(ctx context.Context, username string) error
}

// PostgresChallengeRepository implements ChallengeRepository against the
// admin_credentials table.
type PostgresChallengeRepository struct {
	db *pgxpool.Pool
}

// NewPostgresChallengeRepository creates a new PostgreSQL-backed challenge repository
func NewPostgresChallengeRepository(db *pgxpool.Pool) *PostgresChallengeRepository {
	return &PostgresChallengeRepository{db: db}
}

// GetPrincipal retrieves the admin record for a username
func (r *PostgresChallengeRepository) GetPrincipal(ctx context.Context, username string) (Principal, error) {
	query := `
		SELECT id, username, email
		FROM admin_credentials
		WHERE username = $1
	`

	var p Principal
	err := r.db.QueryRow(ctx, query, username).Scan(&p.ID, &p.Username, &p.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Principal{}, ErrPrincipalNotFound
		}
		return Principal{}, err
	}

	return p, nil
}

// GetChallenge retrieves the current challenge for a username. Both fields
// are written and cleared together, so a NULL digest means no challenge.
func (r *PostgresChallengeRepository) GetChallenge(ctx context.Context, username string) (Challenge, error) {
	query := `
		SELECT twofa_code_hash, twofa_code_expires
		FROM admin_credentials
		WHERE username = $1
	`

	var codeHash *string
	var expiresAt *time.Time
	err := r.db.QueryRow(ctx, query, username).Scan(&codeHash, &expiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Challenge{}, ErrPrincipalNotFound
		}
		return Challenge{}, err
	}

	if codeHash == nil || expiresAt == nil {
		return Challenge{}, ErrNoActiveChallenge
	}

	return Challenge{CodeHash: *codeHash, ExpiresAt: *expiresAt}, nil
}

// SetChallenge stores a challenge for a username, replacing any prior one
func (r *PostgresChallengeRepository) SetChallenge(ctx context.Context, username string, challenge Challenge) error {
	query := `
		UPDATE admin_credentials
		SET twofa_code_hash = $2,
		    twofa_code_expires = $3
		WHERE username = $1
	`

	tag, err := r.db.Exec(ctx, query, username, challenge.CodeHash, challenge.ExpiresAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPrincipalNotFound
	}

	return nil
}

// ClearChallenge removes the challenge for a username
func (r *PostgresChallengeRepository) ClearChallenge(ctx context.Context, username string) error {
	query := `
		UPDATE admin_credentials
		SET twofa_code_hash = NULL,
		    twofa_code_expires = NULL
		WHERE username = $1
	`

	tag, err := r.db.Exec(ctx, query, username)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPrincipalNotFound
	}

	return nil
}
