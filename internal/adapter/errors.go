package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotAllowed          = errors.New("operation not allowed")
	ErrInternalServerError = errors.New("internal server error")
)
