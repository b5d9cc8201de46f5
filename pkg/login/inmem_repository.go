package login

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryAdminRepository implements AdminRepository using in-memory storage
type InMemoryAdminRepository struct {
	mu     sync.RWMutex
	admins map[string]Admin
}

// NewInMemoryAdminRepository creates a new in-memory admin repository
func NewInMemoryAdminRepository() *InMemoryAdminRepository {
	return &InMemoryAdminRepository{
		admins: make(map[string]Admin),
	}
}

// GetAdminByUsername retrieves an admin record by exact username
func (r *InMemoryAdminRepository) GetAdminByUsername(ctx context.Context, username string) (Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	admin, ok := r.admins[username]
	if !ok {
		return Admin{}, ErrAdminNotFound
	}
	return admin, nil
}

// CreateAdmin inserts a new admin record
func (r *InMemoryAdminRepository) CreateAdmin(ctx context.Context, params CreateAdminParams) (Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.admins[params.Username]; exists {
		return Admin{}, ErrUsernameTaken
	}

	admin := Admin{
		ID:           uuid.New(),
		Username:     params.Username,
		Email:        params.Email,
		PasswordHash: params.PasswordHash,
		TwofaMethod:  params.TwofaMethod,
		CreatedAt:    time.Now().UTC(),
	}
	r.admins[params.Username] = admin
	return admin, nil
}

// MarkTwofaConfirmed flips the confirmation flag
func (r *InMemoryAdminRepository) MarkTwofaConfirmed(ctx context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	admin, ok := r.admins[username]
	if !ok {
		return ErrAdminNotFound
	}
	admin.TwofaConfirmed = true
	r.admins[username] = admin
	return nil
}
