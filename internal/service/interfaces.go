// Package service contains the business layer: registration and login with
// opaque token rotation, and the image batch workflow spanning the object
// store and the metadata store.
package service

import (
	"context"

	"github.com/dpanagushin/framestore/models"
)

// AuthService handles user registration, credential verification and the
// bearer token lifecycle.
type AuthService interface {
	// RegisterUser creates a new account. The role is derived from the email
	// prefix and the password is stored as a keyed one-way digest.
	RegisterUser(ctx context.Context, user models.User) (models.User, error)

	// Login verifies credentials and issues a fresh token, replacing any
	// token the user held before.
	Login(ctx context.Context, user models.User) (models.AuthToken, error)

	// ResolveToken returns the user owning the given bearer token or
	// [ErrTokenNotFound].
	ResolveToken(ctx context.Context, token string) (models.User, error)
}

// FrameService is the image batch workflow: upload, retrieval and deletion of
// batches keyed by request code.
type FrameService interface {
	// Upload validates and stores a batch of 1 to 15 JPEG files, putting
	// blobs in the day's bucket and committing metadata in one transaction.
	// The response maps the freshly derived request code to its frames.
	Upload(ctx context.Context, token string, files []models.FrameUpload) (models.BatchResponse, error)

	// Get returns the frames of the batch identified by code, in stable
	// order. Requires a valid token of any role.
	Get(ctx context.Context, token string, code string) (models.BatchResponse, error)

	// Delete removes the batch's blobs best-effort and its metadata rows
	// unconditionally. Requires an elevated role.
	Delete(ctx context.Context, token string, code string) error
}
