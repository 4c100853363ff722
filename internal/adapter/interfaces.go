// Package adapter provides the client-side view of the frame storage API:
// a resty-backed HTTP client that handles registration, login and the frame
// batch operations, carrying the bearer token in request paths the way the
// server expects it.
package adapter

import (
	"context"

	"github.com/dpanagushin/framestore/models"
)

// APIClient is the outbound surface of the frame storage service.
type APIClient interface {
	// Register creates an account and returns the assigned user ID.
	Register(ctx context.Context, user models.User) (models.RegisterResponse, error)

	// Login exchanges credentials for a bearer token and stores it on the
	// client for subsequent frame calls.
	Login(ctx context.Context, user models.User) (models.LoginResponse, error)

	// UploadFrames sends a multipart batch and returns the server's
	// code-to-frames map.
	UploadFrames(ctx context.Context, files []models.FrameUpload) (models.BatchResponse, error)

	// GetFrames retrieves the batch identified by code.
	GetFrames(ctx context.Context, code string) (models.BatchResponse, error)

	// DeleteFrames removes the batch identified by code.
	DeleteFrames(ctx context.Context, code string) error

	// SetToken overrides the stored bearer token.
	SetToken(token string)

	// Token returns the stored bearer token, empty if none was issued yet.
	Token() string
}
