// Package feedback exposes customer feedback submitted through the
// public site, read-only for the admin backend.
package feedback

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Feedback represents a customer feedback entry
type Feedback struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
}

// FeedbackRepository reads feedback entries
type FeedbackRepository interface {
	ListFeedback(ctx context.Context) ([]Feedback, error)
}

// PostgresFeedbackRepository implements FeedbackRepository using PostgreSQL
type PostgresFeedbackRepository struct {
	db *pgxpool.Pool
}

// NewPostgresFeedbackRepository creates a new PostgreSQL-based feedback repository
func NewPostgresFeedbackRepository(db *pgxpool.Pool) *PostgresFeedbackRepository {
	return &PostgresFeedbackRepository{db: db}
}

// ListFeedback retrieves all feedback entries, newest first
func (r *PostgresFeedbackRepository) ListFeedback(ctx context.Context) ([]Feedback, error) {
	query := `SELECT id, name, email, message, date FROM feedback_info ORDER BY date DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Feedback
	for rows.Next() {
		var f Feedback
		if err := rows.Scan(&f.ID, &f.Name, &f.Email, &f.Message, &f.Date); err != nil {
			return nil, err
		}
		entries = append(entries, f)
	}

	return entries, rows.Err()
}
