package service

import (
	"errors"

	"github.com/dpanagushin/framestore/internal/store"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both an unknown email and a wrong password,
	// so login failures do not disclose which part was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenNotFound is the store sentinel re-exported so that handlers can
	// match authentication failures without importing the store package.
	ErrTokenNotFound = store.ErrTokenNotFound

	// ErrNotAllowed is returned when the user's role does not permit frame
	// uploads or deletions.
	ErrNotAllowed = errors.New("operation is not allowed for this role")

	// ErrInvalidBatchSize is returned when an upload carries no files or more
	// than the per-request maximum.
	ErrInvalidBatchSize = errors.New("invalid number of files in batch")

	// ErrInvalidImageFormat is returned when at least one uploaded file name
	// does not end with ".jpg". The whole batch is rejected.
	ErrInvalidImageFormat = errors.New("invalid image format")

	// ErrBatchNotFound is returned when a request code matches no stored
	// frames.
	ErrBatchNotFound = errors.New("batch not found")
)
