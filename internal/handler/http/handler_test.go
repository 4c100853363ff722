package http

import (
	"context"
	"testing"

	"github.com/dpanagushin/framestore/internal/logger"
	"github.com/dpanagushin/framestore/internal/service"
	"github.com/dpanagushin/framestore/models"
)

// fakeAuthService is a hand-rolled AuthService test double. Only the
// functions a test sets are callable; the rest panic, which surfaces
// unexpected service calls immediately.
type fakeAuthService struct {
	registerFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn    func(ctx context.Context, user models.User) (models.AuthToken, error)
	resolveFn  func(ctx context.Context, token string) (models.User, error)
}

func (f *fakeAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return f.registerFn(ctx, user)
}

func (f *fakeAuthService) Login(ctx context.Context, user models.User) (models.AuthToken, error) {
	return f.loginFn(ctx, user)
}

func (f *fakeAuthService) ResolveToken(ctx context.Context, token string) (models.User, error) {
	return f.resolveFn(ctx, token)
}

// fakeFrameService is a hand-rolled FrameService test double.
type fakeFrameService struct {
	uploadFn func(ctx context.Context, token string, files []models.FrameUpload) (models.BatchResponse, error)
	getFn    func(ctx context.Context, token string, code string) (models.BatchResponse, error)
	deleteFn func(ctx context.Context, token string, code string) error
}

func (f *fakeFrameService) Upload(ctx context.Context, token string, files []models.FrameUpload) (models.BatchResponse, error) {
	return f.uploadFn(ctx, token, files)
}

func (f *fakeFrameService) Get(ctx context.Context, token string, code string) (models.BatchResponse, error) {
	return f.getFn(ctx, token, code)
}

func (f *fakeFrameService) Delete(ctx context.Context, token string, code string) error {
	return f.deleteFn(ctx, token, code)
}

func newTestHandler(t *testing.T, auth *fakeAuthService, frames *fakeFrameService) *Handler {
	t.Helper()

	return NewHandler(&service.Services{
		AuthService:  auth,
		FrameService: frames,
	}, logger.Nop())
}
