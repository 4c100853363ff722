package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dpanagushin/framestore/internal/logger"
	"github.com/dpanagushin/framestore/models"
)

// tokenRepository is the PostgreSQL-backed implementation of
// [TokenRepository] over the "auth_tokens" table.
//
// The table carries a UNIQUE constraint on user_id, so [UpsertToken] is the
// whole rotation mechanism: a second login replaces the stored token value in
// place and the previous bearer string stops resolving immediately.
type tokenRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTokenRepository constructs a [TokenRepository] backed by the provided
// database connection and logger.
func NewTokenRepository(db *DB, logger *logger.Logger) TokenRepository {
	logger.Debug().Msg("creating token repository")
	return &tokenRepository{
		db:     db,
		logger: logger,
	}
}

// UpsertToken issues token as the user's single live token. Concurrent
// logins for the same user race to a last-writer-wins outcome, which the
// ON CONFLICT upsert resolves without additional locking.
func (r *tokenRepository) UpsertToken(ctx context.Context, userID int64, token string) (models.AuthToken, error) {
	log := logger.FromContext(ctx)

	var stored models.AuthToken
	row := r.db.QueryRowContext(ctx, upsertToken, token, userID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*tokenRepository.UpsertToken").Int64("user_id", userID).Msg("error: upsert failed")
		return models.AuthToken{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&stored.TokenID, &stored.Token, &stored.UserID, &stored.CreatedAt); err != nil {
		log.Err(err).Str("func", "*tokenRepository.UpsertToken").Int64("user_id", userID).Msg("error: scanning error")
		return models.AuthToken{}, err
	}

	return stored, nil
}

// FindUserByToken resolves a bearer token to its owning user via a join with
// the users table, so callers get the role in the same round trip.
func (r *tokenRepository) FindUserByToken(ctx context.Context, token string) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	row := r.db.QueryRowContext(ctx, findUserByToken, token)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*tokenRepository.FindUserByToken").Msg("error: query failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&user.UserID, &user.Role, &user.Email, &user.PasswordHash,
		&user.FirstName, &user.LastName, &user.Nickname, &user.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrTokenNotFound
		}
		log.Err(err).Str("func", "*tokenRepository.FindUserByToken").Msg("error: scanning error")
		return models.User{}, err
	}

	return user, nil
}
