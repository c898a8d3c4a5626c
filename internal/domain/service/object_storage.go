package service

import "context"

// ObjectStorage stores binary payloads and returns a stable public retrieval
// URL. The storefront only ever writes; it never lists or deletes objects.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}
