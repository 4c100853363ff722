package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dpanagushin/framestore/internal/config"
	"github.com/dpanagushin/framestore/internal/logger"
	"github.com/dpanagushin/framestore/internal/mock"
	"github.com/dpanagushin/framestore/internal/store"
	"github.com/dpanagushin/framestore/internal/utils"
	"github.com/dpanagushin/framestore/models"
)

const testHashKey = "test-hash-key"

func newTestAuthService(t *testing.T) (AuthService, *mock.MockUserRepository, *mock.MockTokenRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockUsers := mock.NewMockUserRepository(ctrl)
	mockTokens := mock.NewMockTokenRepository(ctrl)
	svc := NewAuthService(mockUsers, mockTokens, config.App{PasswordHashKey: testHashKey}, logger.Nop())

	return svc, mockUsers, mockTokens
}

func TestAuthService_RegisterUser(t *testing.T) {
	svc, mockUsers, _ := newTestAuthService(t)

	mockUsers.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			assert.Equal(t, models.RoleAdmin, user.Role)
			assert.Equal(t, utils.HashString("secret", testHashKey), user.PasswordHash)
			assert.Empty(t, user.Password)

			user.UserID = 1
			return user, nil
		})

	registered, err := svc.RegisterUser(context.Background(), models.User{
		Email:    "admin@example.com",
		Password: "secret",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), registered.UserID)
	assert.Equal(t, models.RoleAdmin, registered.Role)
}

func TestAuthService_RegisterUser_RoleFromEmailPrefix(t *testing.T) {
	tests := []struct {
		email string
		want  models.Role
	}{
		{"admin42@example.com", models.RoleAdmin},
		{"moderator@example.com", models.RoleModerator},
		{"moder.n@example.com", models.RoleModerator},
		{"user1@example.com", models.RoleUser},
		{"someone@example.com", models.RoleUser},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			svc, mockUsers, _ := newTestAuthService(t)

			mockUsers.EXPECT().
				CreateUser(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
					assert.Equal(t, tt.want, user.Role)
					return user, nil
				})

			_, err := svc.RegisterUser(context.Background(), models.User{Email: tt.email, Password: "secret"})
			assert.NoError(t, err)
		})
	}
}

func TestAuthService_RegisterUser_EmptyFields(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, err := svc.RegisterUser(context.Background(), models.User{Email: "user1@example.com"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.RegisterUser(context.Background(), models.User{Password: "secret"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_RegisterUser_DuplicateEmail(t *testing.T) {
	svc, mockUsers, _ := newTestAuthService(t)

	mockUsers.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), models.User{Email: "user1@example.com", Password: "secret"})

	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_Login(t *testing.T) {
	svc, mockUsers, mockTokens := newTestAuthService(t)

	storedUser := models.User{
		UserID:       1,
		Email:        "user1@example.com",
		Role:         models.RoleUser,
		PasswordHash: utils.HashString("secret", testHashKey),
	}
	mockUsers.EXPECT().
		FindUserByEmail(gomock.Any(), storedUser.Email).
		Return(storedUser, nil)
	mockTokens.EXPECT().
		UpsertToken(gomock.Any(), storedUser.UserID, gomock.Any()).
		DoAndReturn(func(_ context.Context, userID int64, token string) (models.AuthToken, error) {
			assert.NotEmpty(t, token)
			return models.AuthToken{TokenID: 10, Token: token, UserID: userID}, nil
		})

	issued, err := svc.Login(context.Background(), models.User{Email: storedUser.Email, Password: "secret"})

	require.NoError(t, err)
	assert.NotEmpty(t, issued.Token)
	assert.Equal(t, storedUser.UserID, issued.UserID)
}

// A second login must issue a different token value, because the upsert
// replaces the stored one and only the newest resolves afterwards.
func TestAuthService_Login_RotatesToken(t *testing.T) {
	svc, mockUsers, mockTokens := newTestAuthService(t)

	storedUser := models.User{
		UserID:       1,
		Email:        "user1@example.com",
		PasswordHash: utils.HashString("secret", testHashKey),
	}
	mockUsers.EXPECT().
		FindUserByEmail(gomock.Any(), storedUser.Email).
		Return(storedUser, nil).
		Times(2)

	var issuedTokens []string
	mockTokens.EXPECT().
		UpsertToken(gomock.Any(), storedUser.UserID, gomock.Any()).
		DoAndReturn(func(_ context.Context, userID int64, token string) (models.AuthToken, error) {
			issuedTokens = append(issuedTokens, token)
			return models.AuthToken{Token: token, UserID: userID}, nil
		}).
		Times(2)

	_, err := svc.Login(context.Background(), models.User{Email: storedUser.Email, Password: "secret"})
	require.NoError(t, err)
	_, err = svc.Login(context.Background(), models.User{Email: storedUser.Email, Password: "secret"})
	require.NoError(t, err)

	require.Len(t, issuedTokens, 2)
	assert.NotEqual(t, issuedTokens[0], issuedTokens[1])
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, mockUsers, _ := newTestAuthService(t)

	mockUsers.EXPECT().
		FindUserByEmail(gomock.Any(), "missing@example.com").
		Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Login(context.Background(), models.User{Email: "missing@example.com", Password: "secret"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, mockUsers, _ := newTestAuthService(t)

	mockUsers.EXPECT().
		FindUserByEmail(gomock.Any(), "user1@example.com").
		Return(models.User{
			UserID:       1,
			Email:        "user1@example.com",
			PasswordHash: utils.HashString("secret", testHashKey),
		}, nil)

	_, err := svc.Login(context.Background(), models.User{Email: "user1@example.com", Password: "not-secret"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_ResolveToken(t *testing.T) {
	svc, _, mockTokens := newTestAuthService(t)

	mockTokens.EXPECT().
		FindUserByToken(gomock.Any(), "token-abc").
		Return(models.User{UserID: 1, Role: models.RoleModerator}, nil)

	user, err := svc.ResolveToken(context.Background(), "token-abc")

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
	assert.Equal(t, models.RoleModerator, user.Role)
}

func TestAuthService_ResolveToken_Unknown(t *testing.T) {
	svc, _, mockTokens := newTestAuthService(t)

	mockTokens.EXPECT().
		FindUserByToken(gomock.Any(), "rotated-away").
		Return(models.User{}, store.ErrTokenNotFound)

	_, err := svc.ResolveToken(context.Background(), "rotated-away")

	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestAuthService_ResolveToken_Empty(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, err := svc.ResolveToken(context.Background(), "")

	assert.ErrorIs(t, err, ErrTokenNotFound)
}
