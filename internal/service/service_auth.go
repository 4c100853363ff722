package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dpanagushin/framestore/internal/config"
	"github.com/dpanagushin/framestore/internal/logger"
	"github.com/dpanagushin/framestore/internal/store"
	"github.com/dpanagushin/framestore/internal/utils"
	"github.com/dpanagushin/framestore/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification and opaque token
// rotation using the user and token repositories for persistence and
// HMAC-SHA256 for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenRepository stores the single live token per user.
	tokenRepository store.TokenRepository

	// uuidGenerator produces fresh opaque token values on login.
	uuidGenerator *utils.UUIDGenerator

	// hashKey is the HMAC secret used when hashing user passwords before
	// storage or comparison. Must match the value used at registration time.
	hashKey string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with the password hash key from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, tokenRepository store.TokenRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:  userRepository,
		tokenRepository: tokenRepository,
		uuidGenerator:   utils.NewUUIDGenerator(),
		hashKey:         cfg.PasswordHashKey,
		logger:          logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates that both Email and Password are non-empty, derives the role
// from the email prefix, hashes the password with the configured HMAC key and
// delegates persistence to the UserRepository.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if Email or Password is empty.
//   - A wrapped storage error if the repository call fails (e.g. email
//     already taken — see store.ErrEmailAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Email == "" || user.Password == "" {
		log.Error().Str("email", user.Email).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	user.Role = models.RoleForEmail(user.Email)
	user.PasswordHash = utils.HashString(user.Password, a.hashKey)
	user.Password = ""

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user and rotates their token.
//
// It validates that both Email and Password are non-empty, hashes the
// supplied password, looks up the account by email and compares the digests.
// On success a fresh UUID token is upserted, replacing any previously issued
// token for the same user.
//
// Returns the issued token or:
//   - ErrInvalidDataProvided if Email or Password is empty.
//   - ErrInvalidCredentials if the user is unknown or the password is wrong.
//   - A wrapped storage error for any other repository failure.
func (a *authService) Login(ctx context.Context, user models.User) (models.AuthToken, error) {
	log := logger.FromContext(ctx)

	if user.Email == "" || user.Password == "" {
		log.Error().Str("email", user.Email).Msg("invalid user data provided")
		return models.AuthToken{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, user.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Error().Str("email", user.Email).Msg("login attempt for unknown email")
			return models.AuthToken{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", user.Email).Msg("user search by email failed")
		return models.AuthToken{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if foundUser.PasswordHash != utils.HashString(user.Password, a.hashKey) {
		log.Error().
			Int64("id", foundUser.UserID).
			Str("email", foundUser.Email).
			Msg("wrong password")
		return models.AuthToken{}, ErrInvalidCredentials
	}

	issuedToken, err := a.tokenRepository.UpsertToken(ctx, foundUser.UserID, a.uuidGenerator.Generate())
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("token rotation failed")
		return models.AuthToken{}, fmt.Errorf("token rotation failed: %w", err)
	}

	return issuedToken, nil
}

// ResolveToken maps a bearer token to its owning user.
//
// Unknown and rotated-away tokens both surface as ErrTokenNotFound; the
// caller cannot distinguish the two cases, which is intentional.
func (a *authService) ResolveToken(ctx context.Context, token string) (models.User, error) {
	log := logger.FromContext(ctx)

	if token == "" {
		return models.User{}, ErrTokenNotFound
	}

	user, err := a.tokenRepository.FindUserByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrTokenNotFound) {
			return models.User{}, ErrTokenNotFound
		}
		log.Err(err).Msg("token lookup failed")
		return models.User{}, fmt.Errorf("token lookup failed: %w", err)
	}

	return user, nil
}
