package feedback

import (
	"context"
	"sort"
	"sync"
)

// InMemoryFeedbackRepository implements FeedbackRepository using in-memory storage
type InMemoryFeedbackRepository struct {
	mu      sync.RWMutex
	entries []Feedback
}

// NewInMemoryFeedbackRepository creates a new in-memory feedback repository
func NewInMemoryFeedbackRepository() *InMemoryFeedbackRepository {
	return &InMemoryFeedbackRepository{}
}

// AddFeedback seeds a feedback entry. Test helper.
func (r *InMemoryFeedbackRepository) AddFeedback(f Feedback) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, f)
}

// ListFeedback retrieves all feedback entries, newest first
func (r *InMemoryFeedbackRepository) ListFeedback(ctx context.Context) ([]Feedback, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Feedback, len(r.entries))
	copy(entries, r.entries)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
	return entries, nil
}
