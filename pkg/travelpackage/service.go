package travelpackage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/wandertours/travel-admin/pkg/storage"
)

// PackageService exposes catalog operations over both scopes.
type PackageService struct {
	repo        PackageRepository
	objectStore storage.ObjectStore
}

// NewPackageService creates a new package service
func NewPackageService(repo PackageRepository, objectStore storage.ObjectStore) *PackageService {
	return &PackageService{
		repo:        repo,
		objectStore: objectStore,
	}
}

// ListPackages retrieves all packages in a scope
func (s *PackageService) ListPackages(ctx context.Context, scope Scope) ([]TravelPackage, error) {
	return s.repo.ListPackages(ctx, scope)
}

// CreatePackage inserts a new package and returns its id
func (s *PackageService) CreatePackage(ctx context.Context, scope Scope, params PackageParams) (uuid.UUID, error) {
	id, err := s.repo.CreatePackage(ctx, scope, params)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create package: %w", err)
	}

	slog.Info("Package created", "scope", scope, "id", id, "destination", params.Destination)
	return id, nil
}

// UpdatePackage overwrites the writable fields of a package
func (s *PackageService) UpdatePackage(ctx context.Context, scope Scope, id uuid.UUID, params PackageParams) error {
	return s.repo.UpdatePackage(ctx, scope, id, params)
}

// DeletePackage removes a package
func (s *PackageService) DeletePackage(ctx context.Context, scope Scope, id uuid.UUID) error {
	return s.repo.DeletePackage(ctx, scope, id)
}

// DecrementAvailableSeats reduces the seat count by the passenger count,
// flooring at zero, and returns the new count.
func (s *PackageService) DecrementAvailableSeats(ctx context.Context, scope Scope, id uuid.UUID, passengers int32) (int32, error) {
	if passengers <= 0 {
		return 0, fmt.Errorf("passengers must be positive")
	}

	pkg, err := s.repo.GetPackage(ctx, scope, id)
	if err != nil {
		return 0, err
	}

	newAvailable := pkg.Available - passengers
	if newAvailable < 0 {
		newAvailable = 0
	}

	if err := s.repo.UpdateAvailable(ctx, scope, id, newAvailable); err != nil {
		return 0, err
	}

	slog.Info("Available seats updated", "scope", scope, "id", id, "available", newAvailable)
	return newAvailable, nil
}

// UploadPhoto stores a package photo (overwriting any prior object under
// the same name) and returns its public URL.
func (s *PackageService) UploadPhoto(ctx context.Context, fileName string, data []byte, contentType string) (string, error) {
	if fileName == "" || len(data) == 0 {
		return "", fmt.Errorf("file name and content are required")
	}

	err := s.objectStore.Upload(ctx, storage.PackagePhotosBucket, fileName, data, contentType, true)
	if err != nil {
		return "", err
	}

	return s.objectStore.PublicURL(storage.PackagePhotosBucket, fileName), nil
}
