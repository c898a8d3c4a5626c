// Package firebase verifies identity-provider bearer tokens with the
// Firebase Auth Admin SDK. The provider owns sign-in and profile storage;
// this service only answers "who is making this call".
package firebase

import (
	"context"

	"streesilk/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

type identityVerifier struct {
	client *auth.Client
}

// NewIdentityVerifier creates a verifier backed by a Firebase project. An
// empty credentials path falls back to application-default credentials.
func NewIdentityVerifier(ctx context.Context, projectID, credentialsPath string) (service.IdentityVerifier, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	return &identityVerifier{client: client}, nil
}

// Verify validates an ID token and extracts the caller's identity from its
// claims.
func (v *identityVerifier) Verify(ctx context.Context, token string) (*service.Identity, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify id token")
	}

	identity := &service.Identity{SubjectID: decoded.UID}
	if email, ok := decoded.Claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := decoded.Claims["name"].(string); ok {
		identity.Name = name
	}
	if picture, ok := decoded.Claims["picture"].(string); ok {
		identity.ImageURL = picture
	}

	return identity, nil
}
