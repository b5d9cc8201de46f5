// Package storage provides object storage for package photos and blog
// media, mirroring the hosted bucket layout (package-photos, blogs).
package storage

import "context"

// Buckets used by the admin backend.
const (
	PackagePhotosBucket = "package-photos"
	BlogsBucket         = "blogs"
)

// ObjectStore stores and removes media objects and derives their public URLs.
type ObjectStore interface {
	Upload(ctx context.Context, bucket, key string, data []byte, contentType string, upsert bool) error
	Remove(ctx context.Context, bucket, key string) error
	PublicURL(bucket, key string) string
}
