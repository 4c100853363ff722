package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpanagushin/framestore/internal/service"
	"github.com/dpanagushin/framestore/internal/store"
	"github.com/dpanagushin/framestore/models"
)

func TestHandler_Home(t *testing.T) {
	handler := newTestHandler(t, &fakeAuthService{}, &fakeFrameService{})
	router := handler.Init()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var response models.MessageResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.NotEmpty(t, response.Message)
}

func TestHandler_Register(t *testing.T) {
	auth := &fakeAuthService{
		registerFn: func(_ context.Context, user models.User) (models.User, error) {
			assert.Equal(t, "user1@example.com", user.Email)
			assert.Equal(t, "secret", user.Password)

			user.UserID = 42
			return user, nil
		},
	}
	handler := newTestHandler(t, auth, &fakeFrameService{})
	router := handler.Init()

	body := strings.NewReader(`{"email":"user1@example.com","password":"secret"}`)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/user", body))

	require.Equal(t, http.StatusOK, recorder.Code)

	var response models.RegisterResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, int64(42), response.UserID)
}

func TestHandler_Register_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{"invalid json", `{not-json`, nil, http.StatusBadRequest},
		{"empty fields", `{}`, service.ErrInvalidDataProvided, http.StatusBadRequest},
		{"duplicate email", `{"email":"user1@example.com","password":"secret"}`, store.ErrEmailAlreadyExists, http.StatusBadRequest},
		{"storage failure", `{"email":"user1@example.com","password":"secret"}`, assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &fakeAuthService{
				registerFn: func(_ context.Context, _ models.User) (models.User, error) {
					return models.User{}, tt.serviceErr
				},
			}
			handler := newTestHandler(t, auth, &fakeFrameService{})
			router := handler.Init()

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/user", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

func TestHandler_Login(t *testing.T) {
	auth := &fakeAuthService{
		loginFn: func(_ context.Context, user models.User) (models.AuthToken, error) {
			assert.Equal(t, "user1@example.com", user.Email)
			return models.AuthToken{Token: "token-abc", UserID: 1}, nil
		},
	}
	handler := newTestHandler(t, auth, &fakeFrameService{})
	router := handler.Init()

	body := strings.NewReader(`{"email":"user1@example.com","password":"secret"}`)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/login", body))

	require.Equal(t, http.StatusOK, recorder.Code)

	var response models.LoginResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "token-abc", response.AuthToken)
}

func TestHandler_Login_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{"invalid json", `{not-json`, nil, http.StatusBadRequest},
		{"empty fields", `{}`, service.ErrInvalidDataProvided, http.StatusBadRequest},
		{"wrong credentials", `{"email":"user1@example.com","password":"wrong"}`, service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"storage failure", `{"email":"user1@example.com","password":"secret"}`, assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &fakeAuthService{
				loginFn: func(_ context.Context, _ models.User) (models.AuthToken, error) {
					return models.AuthToken{}, tt.serviceErr
				},
			}
			handler := newTestHandler(t, auth, &fakeFrameService{})
			router := handler.Init()

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}
