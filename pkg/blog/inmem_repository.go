package blog

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryBlogRepository implements BlogRepository using in-memory storage
type InMemoryBlogRepository struct {
	mu    sync.RWMutex
	blogs map[uuid.UUID]Blog
}

// NewInMemoryBlogRepository creates a new in-memory blog repository
func NewInMemoryBlogRepository() *InMemoryBlogRepository {
	return &InMemoryBlogRepository{
		blogs: make(map[uuid.UUID]Blog),
	}
}

// ListBlogs retrieves all blog posts, newest first
func (r *InMemoryBlogRepository) ListBlogs(ctx context.Context) ([]Blog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var blogs []Blog
	for _, b := range r.blogs {
		blogs = append(blogs, b)
	}
	sort.Slice(blogs, func(i, j int) bool {
		return blogs[i].CreatedAt.After(blogs[j].CreatedAt)
	})
	return blogs, nil
}

// GetBlog retrieves a blog post by id
func (r *InMemoryBlogRepository) GetBlog(ctx context.Context, id uuid.UUID) (Blog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.blogs[id]
	if !ok {
		return Blog{}, ErrBlogNotFound
	}
	return b, nil
}

// CreateBlog inserts a new blog post
func (r *InMemoryBlogRepository) CreateBlog(ctx context.Context, params CreateBlogParams) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.New()
	r.blogs[id] = Blog{
		ID:          id,
		Title:       params.Title,
		Description: params.Description,
		MediaURL:    params.MediaURL,
		MediaType:   params.MediaType,
		CreatedAt:   time.Now().UTC(),
	}
	return id, nil
}

// DeleteBlog removes a blog post
func (r *InMemoryBlogRepository) DeleteBlog(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.blogs[id]; !ok {
		return ErrBlogNotFound
	}
	delete(r.blogs, id)
	return nil
}
