package travelpackage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryPackageRepository implements PackageRepository using in-memory storage
type InMemoryPackageRepository struct {
	mu       sync.RWMutex
	packages map[Scope]map[uuid.UUID]TravelPackage
}

// NewInMemoryPackageRepository creates a new in-memory package repository
func NewInMemoryPackageRepository() *InMemoryPackageRepository {
	return &InMemoryPackageRepository{
		packages: map[Scope]map[uuid.UUID]TravelPackage{
			ScopeInternational: {},
			ScopeLocal:         {},
		},
	}
}

func (r *InMemoryPackageRepository) catalog(scope Scope) (map[uuid.UUID]TravelPackage, error) {
	catalog, ok := r.packages[scope]
	if !ok {
		return nil, ErrInvalidScope
	}
	return catalog, nil
}

// ListPackages retrieves all packages in a scope, newest first
func (r *InMemoryPackageRepository) ListPackages(ctx context.Context, scope Scope) ([]TravelPackage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	catalog, err := r.catalog(scope)
	if err != nil {
		return nil, err
	}

	var packages []TravelPackage
	for _, p := range catalog {
		packages = append(packages, p)
	}
	sort.Slice(packages, func(i, j int) bool {
		return packages[i].CreatedAt.After(packages[j].CreatedAt)
	})
	return packages, nil
}

// GetPackage retrieves a package by id
func (r *InMemoryPackageRepository) GetPackage(ctx context.Context, scope Scope, id uuid.UUID) (TravelPackage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	catalog, err := r.catalog(scope)
	if err != nil {
		return TravelPackage{}, err
	}

	p, ok := catalog[id]
	if !ok {
		return TravelPackage{}, ErrPackageNotFound
	}
	return p, nil
}

// CreatePackage inserts a new package and returns its id
func (r *InMemoryPackageRepository) CreatePackage(ctx context.Context, scope Scope, params PackageParams) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	catalog, err := r.catalog(scope)
	if err != nil {
		return uuid.Nil, err
	}

	id := uuid.New()
	catalog[id] = TravelPackage{
		ID:           id,
		Name:         params.Name,
		Destination:  params.Destination,
		Description:  params.Description,
		Price:        params.Price,
		Available:    params.Available,
		DurationDays: params.DurationDays,
		PhotoURL:     params.PhotoURL,
		CreatedAt:    time.Now().UTC(),
	}
	return id, nil
}

// UpdatePackage overwrites the writable fields of a package
func (r *InMemoryPackageRepository) UpdatePackage(ctx context.Context, scope Scope, id uuid.UUID, params PackageParams) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	catalog, err := r.catalog(scope)
	if err != nil {
		return err
	}

	p, ok := catalog[id]
	if !ok {
		return ErrPackageNotFound
	}

	p.Name = params.Name
	p.Destination = params.Destination
	p.Description = params.Description
	p.Price = params.Price
	p.Available = params.Available
	p.DurationDays = params.DurationDays
	p.PhotoURL = params.PhotoURL
	catalog[id] = p
	return nil
}

// DeletePackage removes a package
func (r *InMemoryPackageRepository) DeletePackage(ctx context.Context, scope Scope, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	catalog, err := r.catalog(scope)
	if err != nil {
		return err
	}

	if _, ok := catalog[id]; !ok {
		return ErrPackageNotFound
	}
	delete(catalog, id)
	return nil
}

// UpdateAvailable sets the available seat count
func (r *InMemoryPackageRepository) UpdateAvailable(ctx context.Context, scope Scope, id uuid.UUID, available int32) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	catalog, err := r.catalog(scope)
	if err != nil {
		return err
	}

	p, ok := catalog[id]
	if !ok {
		return ErrPackageNotFound
	}
	p.Available = available
	catalog[id] = p
	return nil
}
