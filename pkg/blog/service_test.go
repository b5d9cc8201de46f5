package blog

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wandertours/travel-admin/pkg/storage"
)

func newTestBlogService(t *testing.T) (*BlogService, *InMemoryBlogRepository, *storage.InMemoryObjectStore) {
	t.Helper()
	repo := NewInMemoryBlogRepository()
	store := storage.NewInMemoryObjectStore()
	return NewBlogService(repo, store), repo, store
}

func TestCreateBlog(t *testing.T) {
	ctx := context.Background()

	t.Run("uploads media and stores the post", func(t *testing.T) {
		service, repo, _ := newTestBlogService(t)

		id, err := service.CreateBlog(ctx, CreateBlogMediaParams{
			Title:       "Hidden beaches of Palawan",
			Description: "Our favorite spots",
			FileName:    "beach.jpg",
			ContentType: "image/jpeg",
			Media:       []byte("jpeg-bytes"),
			MediaType:   MediaTypeImage,
		})
		require.NoError(t, err)

		b, err := repo.GetBlog(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Hidden beaches of Palawan", b.Title)
		assert.Equal(t, MediaTypeImage, b.MediaType)
		// Images land under the image/ prefix.
		assert.Contains(t, b.MediaURL, "/"+storage.BlogsBucket+"/image/")
		assert.True(t, strings.HasSuffix(b.MediaURL, "beach.jpg"))
	})

	t.Run("videos land under the video prefix", func(t *testing.T) {
		service, repo, _ := newTestBlogService(t)

		id, err := service.CreateBlog(ctx, CreateBlogMediaParams{
			Title:     "Street food tour",
			FileName:  "tour.mp4",
			Media:     []byte("mp4-bytes"),
			MediaType: MediaTypeVideo,
		})
		require.NoError(t, err)

		b, err := repo.GetBlog(ctx, id)
		require.NoError(t, err)
		assert.Contains(t, b.MediaURL, "/"+storage.BlogsBucket+"/video/")
	})

	t.Run("rejects unknown media types", func(t *testing.T) {
		service, _, _ := newTestBlogService(t)

		_, err := service.CreateBlog(ctx, CreateBlogMediaParams{
			Title:     "Bad",
			FileName:  "x.bin",
			Media:     []byte("x"),
			MediaType: "audio",
		})
		assert.ErrorIs(t, err, ErrInvalidMediaType)
	})
}

func TestDeleteBlog(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the post and its media", func(t *testing.T) {
		service, repo, store := newTestBlogService(t)

		id, err := service.CreateBlog(ctx, CreateBlogMediaParams{
			Title:     "Hidden beaches",
			FileName:  "beach.jpg",
			Media:     []byte("jpeg-bytes"),
			MediaType: MediaTypeImage,
		})
		require.NoError(t, err)

		b, err := repo.GetBlog(ctx, id)
		require.NoError(t, err)
		key, ok := mediaKeyFromURL(b.MediaURL)
		require.True(t, ok)
		require.True(t, store.Has(storage.BlogsBucket, key))

		require.NoError(t, service.DeleteBlog(ctx, id))

		_, err = repo.GetBlog(ctx, id)
		assert.ErrorIs(t, err, ErrBlogNotFound)
		assert.False(t, store.Has(storage.BlogsBucket, key))
	})

	t.Run("unknown blog", func(t *testing.T) {
		service, _, _ := newTestBlogService(t)

		err := service.DeleteBlog(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrBlogNotFound)
	})
}

func TestListBlogs(t *testing.T) {
	ctx := context.Background()
	service, _, _ := newTestBlogService(t)

	for _, title := range []string{"First", "Second"} {
		_, err := service.CreateBlog(ctx, CreateBlogMediaParams{
			Title:     title,
			FileName:  title + ".jpg",
			Media:     []byte("x"),
			MediaType: MediaTypeImage,
		})
		require.NoError(t, err)
	}

	blogs, err := service.ListBlogs(ctx)
	require.NoError(t, err)
	assert.Len(t, blogs, 2)
}
