// Package service defines interfaces for domain-level collaborators that are
// implemented by the infrastructure layer.
package service

import "context"

// Identity is the verified caller identity supplied by the external identity
// provider. SubjectID is the provider's stable subject id and is the owner
// identity used to key carts, orders and profiles.
type Identity struct {
	SubjectID string
	Email     string
	Name      string
	ImageURL  string
}

// IdentityVerifier verifies a bearer credential issued by the identity
// provider and returns the caller's identity. It has no other API: the
// provider owns sign-in, sign-out and profile storage.
type IdentityVerifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}
