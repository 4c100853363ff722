package store

import (
	"context"

	"github.com/dpanagushin/framestore/models"
)

// UserRepository is the credential store: account creation and lookup.
type UserRepository interface {
	// CreateUser persists a new user and returns the record with
	// server-assigned fields (UserID, CreatedAt) populated.
	// A duplicate email yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user owning the given email or
	// [ErrNoUserWasFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// TokenRepository is the token store: at most one live token per user.
type TokenRepository interface {
	// UpsertToken stores token as the user's one live token, replacing any
	// previous value (rotation). Returns the stored row.
	UpsertToken(ctx context.Context, userID int64, token string) (models.AuthToken, error)

	// FindUserByToken resolves a bearer token to its owning user, including
	// the role needed for authorization. Unknown or rotated-away tokens
	// yield [ErrTokenNotFound].
	FindUserByToken(ctx context.Context, token string) (models.User, error)
}

// FrameRepository is the batch metadata store for uploaded images.
type FrameRepository interface {
	// AddFrames persists all records of one batch in a single transaction.
	AddFrames(ctx context.Context, frames []models.Frame) error

	// FindByRequestCode returns every frame of the batch identified by code,
	// in insertion order. An unknown code returns an empty slice, not an error.
	FindByRequestCode(ctx context.Context, code string) ([]models.Frame, error)

	// DeleteByRequestCode removes every frame of the batch in one statement
	// and reports how many rows were deleted.
	DeleteByRequestCode(ctx context.Context, code string) (int64, error)

	// ListFileNamesByDay returns the file names of every frame whose request
	// code starts with the given YYYYMMDD day prefix. Used by the drift
	// reconciler to compare metadata against the day's bucket.
	ListFileNamesByDay(ctx context.Context, day string) ([]string, error)
}
