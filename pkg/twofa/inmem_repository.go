package twofa

import (
	"context"
	"sync"
)

type inMemoryRecord struct {
	principal Principal
	challenge *Challenge
}

// InMemoryChallengeRepository implements ChallengeRepository using in-memory
// storage. Intended for tests and local development.
type InMemoryChallengeRepository struct {
	mu      sync.RWMutex
	records map[string]*inMemoryRecord
}

// NewInMemoryChallengeRepository creates a new in-memory challenge repository
func NewInMemoryChallengeRepository() *InMemoryChallengeRepository {
	return &InMemoryChallengeRepository{
		records: make(map[string]*inMemoryRecord),
	}
}

// AddPrincipal seeds an admin record. A zero-value challenge state (absent)
// is associated with it.
func (r *InMemoryChallengeRepository) AddPrincipal(principal Principal) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[principal.Username] = &inMemoryRecord{principal: principal}
}

// GetPrincipal retrieves a seeded admin record by exact username
func (r *InMemoryChallengeRepository) GetPrincipal(ctx context.Context, username string) (Principal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[username]
	if !ok {
		return Principal{}, ErrPrincipalNotFound
	}
	return rec.principal, nil
}

// GetChallenge retrieves the current challenge for a username
func (r *InMemoryChallengeRepository) GetChallenge(ctx context.Context, username string) (Challenge, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[username]
	if !ok {
		return Challenge{}, ErrPrincipalNotFound
	}
	if rec.challenge == nil {
		return Challenge{}, ErrNoActiveChallenge
	}
	return *rec.challenge, nil
}

// SetChallenge stores a challenge, replacing any prior one
func (r *InMemoryChallengeRepository) SetChallenge(ctx context.Context, username string, challenge Challenge) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[username]
	if !ok {
		return ErrPrincipalNotFound
	}
	rec.challenge = &challenge
	return nil
}

// ClearChallenge removes the challenge for a username
func (r *InMemoryChallengeRepository) ClearChallenge(ctx context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[username]
	if !ok {
		return ErrPrincipalNotFound
	}
	rec.challenge = nil
	return nil
}
