package blog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/wandertours/travel-admin/pkg/storage"
)

// BlogService manages blog posts and their media objects
type BlogService struct {
	repo        BlogRepository
	objectStore storage.ObjectStore
}

// NewBlogService creates a new blog service
func NewBlogService(repo BlogRepository, objectStore storage.ObjectStore) *BlogService {
	return &BlogService{
		repo:        repo,
		objectStore: objectStore,
	}
}

// ListBlogs retrieves all blog posts, newest first
func (s *BlogService) ListBlogs(ctx context.Context) ([]Blog, error) {
	return s.repo.ListBlogs(ctx)
}

// CreateBlogMediaParams holds a new post plus its raw media bytes.
type CreateBlogMediaParams struct {
	Title       string
	Description string
	FileName    string
	ContentType string
	Media       []byte
	MediaType   string
}

// CreateBlog uploads the media to the blogs bucket and inserts the post.
// Images and videos land under separate key prefixes. If the insert fails
// the uploaded object is removed again on a best effort basis.
func (s *BlogService) CreateBlog(ctx context.Context, params CreateBlogMediaParams) (uuid.UUID, error) {
	if params.MediaType != MediaTypeImage && params.MediaType != MediaTypeVideo {
		return uuid.Nil, ErrInvalidMediaType
	}

	key := fmt.Sprintf("%s/%s_%s", params.MediaType, uuid.NewString(), params.FileName)

	err := s.objectStore.Upload(ctx, storage.BlogsBucket, key, params.Media, params.ContentType, false)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to upload blog media: %w", err)
	}

	id, err := s.repo.CreateBlog(ctx, CreateBlogParams{
		Title:       params.Title,
		Description: params.Description,
		MediaURL:    s.objectStore.PublicURL(storage.BlogsBucket, key),
		MediaType:   params.MediaType,
	})
	if err != nil {
		if rmErr := s.objectStore.Remove(ctx, storage.BlogsBucket, key); rmErr != nil {
			slog.Warn("Failed to clean up blog media after insert failure", "key", key, "error", rmErr)
		}
		return uuid.Nil, fmt.Errorf("failed to create blog post: %w", err)
	}

	slog.Info("Blog post created", "id", id, "media_type", params.MediaType)
	return id, nil
}

// DeleteBlog removes a blog post and its media object. A failure removing
// the object is logged but does not fail the delete.
func (s *BlogService) DeleteBlog(ctx context.Context, id uuid.UUID) error {
	b, err := s.repo.GetBlog(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteBlog(ctx, id); err != nil {
		return err
	}

	if key, ok := mediaKeyFromURL(b.MediaURL); ok {
		if err := s.objectStore.Remove(ctx, storage.BlogsBucket, key); err != nil {
			slog.Warn("Failed to remove blog media", "id", id, "key", key, "error", err)
		}
	}

	return nil
}

// mediaKeyFromURL recovers the object key from a stored public URL.
func mediaKeyFromURL(url string) (string, bool) {
	marker := "/" + storage.BlogsBucket + "/"
	idx := strings.Index(url, marker)
	if idx < 0 {
		return "", false
	}
	return url[idx+len(marker):], true
}
