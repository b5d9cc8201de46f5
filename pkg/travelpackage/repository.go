// Package travelpackage manages the international and local travel package
// catalog: CRUD, seat availability and photo storage.
package travelpackage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Scope selects the catalog a package belongs to. International and local
// packages live in separate tables but share a schema.
type Scope string

const (
	ScopeInternational Scope = "international"
	ScopeLocal         Scope = "local"
)

var scopeTables = map[Scope]string{
	ScopeInternational: "package_info",
	ScopeLocal:         "local_package_info",
}

// ErrPackageNotFound is returned when no package matches the id
var ErrPackageNotFound = errors.New("package not found")

// ErrInvalidScope is returned for a scope other than international or local
var ErrInvalidScope = errors.New("invalid package scope")

// TravelPackage represents a bookable travel package
type TravelPackage struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Destination  string    `json:"destination"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	Available    int32     `json:"available"`
	DurationDays int32     `json:"duration_days"`
	PhotoURL     string    `json:"photo_url"`
	CreatedAt    time.Time `json:"created_at"`
}

// PackageParams represents the writable fields of a package
type PackageParams struct {
	Name         string  `json:"name"`
	Destination  string  `json:"destination"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Available    int32   `json:"available"`
	DurationDays int32   `json:"duration_days"`
	PhotoURL     string  `json:"photo_url"`
}

// PackageRepository persists travel packages per scope
type PackageRepository interface {
	ListPackages(ctx context.Context, scope Scope) ([]TravelPackage, error)
	GetPackage(ctx context.Context, scope Scope, id uuid.UUID) (TravelPackage, error)
	CreatePackage(ctx context.Context, scope Scope, params PackageParams) (uuid.UUID, error)
	UpdatePackage(ctx context.Context, scope Scope, id uuid.UUID, params PackageParams) error
	DeletePackage(ctx context.Context, scope Scope, id uuid.UUID) error
	UpdateAvailable(ctx context.Context, scope Scope, id uuid.UUID, available int32) error
}

func tableFor(scope Scope) (string, error) {
	table, ok := scopeTables[scope]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrInvalidScope, scope)
	}
	return table, nil
}

// PostgresPackageRepository implements PackageRepository using PostgreSQL
type PostgresPackageRepository struct {
	db *pgxpool.Pool
}

// NewPostgresPackageRepository creates a new PostgreSQL-based package repository
func NewPostgresPackageRepository(db *pgxpool.Pool) *PostgresPackageRepository {
	return &PostgresPackageRepository{db: db}
}

// ListPackages retrieves all packages in a scope
func (r *PostgresPackageRepository) ListPackages(ctx context.Context, scope Scope) ([]TravelPackage, error) {
	table, err := tableFor(scope)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT id, name, destination, description, price, available, duration_days, photo_url, created_at
		FROM %s
		ORDER BY created_at DESC
	`, table)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var packages []TravelPackage
	for rows.Next() {
		var p TravelPackage
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Destination,
			&p.Description,
			&p.Price,
			&p.Available,
			&p.DurationDays,
			&p.PhotoURL,
			&p.CreatedAt,
		); err != nil {
			return nil, err
		}
		packages = append(packages, p)
	}

	return packages, rows.Err()
}

// GetPackage retrieves a package by id
func (r *PostgresPackageRepository) GetPackage(ctx context.Context, scope Scope, id uuid.UUID) (TravelPackage, error) {
	table, err := tableFor(scope)
	if err != nil {
		return TravelPackage{}, err
	}

	query := fmt.Sprintf(`
		SELECT id, name, destination, description, price, available, duration_days, photo_url, created_at
		FROM %s
		WHERE id = $1
	`, table)

	var p TravelPackage
	err = r.db.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.Name,
		&p.Destination,
		&p.Description,
		&p.Price,
		&p.Available,
		&p.DurationDays,
		&p.PhotoURL,
		&p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return TravelPackage{}, ErrPackageNotFound
		}
		return TravelPackage{}, err
	}

	return p, nil
}

// CreatePackage inserts a new package and returns its id
func (r *PostgresPackageRepository) CreatePackage(ctx context.Context, scope Scope, params PackageParams) (uuid.UUID, error) {
	table, err := tableFor(scope)
	if err != nil {
		return uuid.Nil, err
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (name, destination, description, price, available, duration_days, photo_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, table)

	var id uuid.UUID
	err = r.db.QueryRow(ctx, query,
		params.Name,
		params.Destination,
		params.Description,
		params.Price,
		params.Available,
		params.DurationDays,
		params.PhotoURL,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}

	return id, nil
}

// UpdatePackage overwrites the writable fields of a package
func (r *PostgresPackageRepository) UpdatePackage(ctx context.Context, scope Scope, id uuid.UUID, params PackageParams) error {
	table, err := tableFor(scope)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $2,
		    destination = $3,
		    description = $4,
		    price = $5,
		    available = $6,
		    duration_days = $7,
		    photo_url = $8
		WHERE id = $1
	`, table)

	tag, err := r.db.Exec(ctx, query, id,
		params.Name,
		params.Destination,
		params.Description,
		params.Price,
		params.Available,
		params.DurationDays,
		params.PhotoURL,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPackageNotFound
	}

	return nil
}

// DeletePackage removes a package
func (r *PostgresPackageRepository) DeletePackage(ctx context.Context, scope Scope, id uuid.UUID) error {
	table, err := tableFor(scope)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table)

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPackageNotFound
	}

	return nil
}

// UpdateAvailable sets the available seat count
func (r *PostgresPackageRepository) UpdateAvailable(ctx context.Context, scope Scope, id uuid.UUID, available int32) error {
	table, err := tableFor(scope)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`UPDATE %s SET available = $2 WHERE id = $1`, table)

	tag, err := r.db.Exec(ctx, query, id, available)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPackageNotFound
	}

	return nil
}
