package travelpackage

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wandertours/travel-admin/pkg/storage"
)

func newTestPackageService(t *testing.T) (*PackageService, *InMemoryPackageRepository, *storage.InMemoryObjectStore) {
	t.Helper()
	repo := NewInMemoryPackageRepository()
	store := storage.NewInMemoryObjectStore()
	return NewPackageService(repo, store), repo, store
}

func seedPackage(t *testing.T, repo *InMemoryPackageRepository, scope Scope, params PackageParams) uuid.UUID {
	t.Helper()
	id, err := repo.CreatePackage(context.Background(), scope, params)
	require.NoError(t, err)
	return id
}

func TestPackageCRUD(t *testing.T) {
	ctx := context.Background()
	service, _, _ := newTestPackageService(t)

	id, err := service.CreatePackage(ctx, ScopeInternational, PackageParams{
		Name:         "Tokyo Explorer",
		Destination:  "Tokyo",
		Price:        45000,
		Available:    20,
		DurationDays: 5,
	})
	require.NoError(t, err)

	packages, err := service.ListPackages(ctx, ScopeInternational)
	require.NoError(t, err)
	require.Len(t, packages, 1)
	assert.Equal(t, "Tokyo", packages[0].Destination)

	// Scopes are separate catalogs.
	localPackages, err := service.ListPackages(ctx, ScopeLocal)
	require.NoError(t, err)
	assert.Empty(t, localPackages)

	err = service.UpdatePackage(ctx, ScopeInternational, id, PackageParams{
		Name:         "Tokyo Explorer",
		Destination:  "Tokyo",
		Price:        47000,
		Available:    18,
		DurationDays: 5,
	})
	require.NoError(t, err)

	packages, err = service.ListPackages(ctx, ScopeInternational)
	require.NoError(t, err)
	assert.Equal(t, float64(47000), packages[0].Price)

	require.NoError(t, service.DeletePackage(ctx, ScopeInternational, id))

	err = service.UpdatePackage(ctx, ScopeInternational, id, PackageParams{})
	assert.ErrorIs(t, err, ErrPackageNotFound)
}

func TestDecrementAvailableSeats(t *testing.T) {
	ctx := context.Background()

	t.Run("reduces by passenger count", func(t *testing.T) {
		service, repo, _ := newTestPackageService(t)
		id := seedPackage(t, repo, ScopeLocal, PackageParams{Destination: "Palawan", Available: 10})

		newAvailable, err := service.DecrementAvailableSeats(ctx, ScopeLocal, id, 4)
		require.NoError(t, err)
		assert.Equal(t, int32(6), newAvailable)
	})

	t.Run("floors at zero", func(t *testing.T) {
		service, repo, _ := newTestPackageService(t)
		id := seedPackage(t, repo, ScopeLocal, PackageParams{Destination: "Palawan", Available: 3})

		newAvailable, err := service.DecrementAvailableSeats(ctx, ScopeLocal, id, 5)
		require.NoError(t, err)
		assert.Equal(t, int32(0), newAvailable)
	})

	t.Run("rejects non-positive passengers", func(t *testing.T) {
		service, repo, _ := newTestPackageService(t)
		id := seedPackage(t, repo, ScopeLocal, PackageParams{Destination: "Palawan", Available: 3})

		_, err := service.DecrementAvailableSeats(ctx, ScopeLocal, id, 0)
		assert.Error(t, err)
	})

	t.Run("unknown package", func(t *testing.T) {
		service, _, _ := newTestPackageService(t)

		_, err := service.DecrementAvailableSeats(ctx, ScopeLocal, uuid.New(), 1)
		assert.ErrorIs(t, err, ErrPackageNotFound)
	})
}

func TestUploadPhoto(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the photo and returns its URL", func(t *testing.T) {
		service, _, store := newTestPackageService(t)

		url, err := service.UploadPhoto(ctx, "tokyo.jpg", []byte("jpeg-bytes"), "image/jpeg")
		require.NoError(t, err)
		assert.True(t, store.Has(storage.PackagePhotosBucket, "tokyo.jpg"))
		assert.Contains(t, url, "tokyo.jpg")
	})

	t.Run("re-upload under the same name overwrites", func(t *testing.T) {
		service, _, _ := newTestPackageService(t)

		_, err := service.UploadPhoto(ctx, "tokyo.jpg", []byte("v1"), "image/jpeg")
		require.NoError(t, err)
		_, err = service.UploadPhoto(ctx, "tokyo.jpg", []byte("v2"), "image/jpeg")
		assert.NoError(t, err)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		service, _, _ := newTestPackageService(t)

		_, err := service.UploadPhoto(ctx, "", []byte("x"), "image/jpeg")
		assert.Error(t, err)
		_, err = service.UploadPhoto(ctx, "tokyo.jpg", nil, "image/jpeg")
		assert.Error(t, err)
	})
}
