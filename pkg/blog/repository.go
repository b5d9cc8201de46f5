// Package blog manages travel blog posts with attached photo or video
// media stored in object storage.
package blog

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Media types a blog post can carry.
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

var (
	// ErrBlogNotFound is returned when no blog post matches the id
	ErrBlogNotFound = errors.New("blog post not found")
	// ErrInvalidMediaType is returned for media types other than image or video
	ErrInvalidMediaType = errors.New("invalid media type")
)

// Blog represents a travel blog post
type Blog struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	MediaURL    string    `json:"media_url"`
	MediaType   string    `json:"media_type"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateBlogParams holds the fields for a new blog post
type CreateBlogParams struct {
	Title       string
	Description string
	MediaURL    string
	MediaType   string
}

// BlogRepository persists blog posts
type BlogRepository interface {
	ListBlogs(ctx context.Context) ([]Blog, error)
	GetBlog(ctx context.Context, id uuid.UUID) (Blog, error)
	CreateBlog(ctx context.Context, params CreateBlogParams) (uuid.UUID, error)
	DeleteBlog(ctx context.Context, id uuid.UUID) error
}

// PostgresBlogRepository implements BlogRepository using PostgreSQL
type PostgresBlogRepository struct {
	db *pgxpool.Pool
}

// NewPostgresBlogRepository creates a new PostgreSQL-based blog repository
func NewPostgresBlogRepository(db *pgxpool.Pool) *PostgresBlogRepository {
	return &PostgresBlogRepository{db: db}
}

// ListBlogs retrieves all blog posts, newest first
func (r *PostgresBlogRepository) ListBlogs(ctx context.Context) ([]Blog, error) {
	query := `SELECT id, title, description, media_url, media_type, created_at
		FROM travel_blogs ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blogs []Blog
	for rows.Next() {
		var b Blog
		if err := rows.Scan(&b.ID, &b.Title, &b.Description, &b.MediaURL, &b.MediaType, &b.CreatedAt); err != nil {
			return nil, err
		}
		blogs = append(blogs, b)
	}

	return blogs, rows.Err()
}

// GetBlog retrieves a blog post by id
func (r *PostgresBlogRepository) GetBlog(ctx context.Context, id uuid.UUID) (Blog, error) {
	query := `SELECT id, title, description, media_url, media_type, created_at
		FROM travel_blogs WHERE id = $1`

	var b Blog
	err := r.db.QueryRow(ctx, query, id).Scan(&b.ID, &b.Title, &b.Description, &b.MediaURL, &b.MediaType, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Blog{}, ErrBlogNotFound
		}
		return Blog{}, err
	}

	return b, nil
}

// CreateBlog inserts a new blog post
func (r *PostgresBlogRepository) CreateBlog(ctx context.Context, params CreateBlogParams) (uuid.UUID, error) {
	query := `INSERT INTO travel_blogs (title, description, media_url, media_type)
		VALUES ($1, $2, $3, $4) RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query, params.Title, params.Description, params.MediaURL, params.MediaType).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}

	return id, nil
}

// DeleteBlog removes a blog post
func (r *PostgresBlogRepository) DeleteBlog(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM travel_blogs WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrBlogNotFound
	}

	return nil
}
