package store

import (
	"context"
	"fmt"

	"github.com/dpanagushin/framestore/internal/logger"
	"github.com/dpanagushin/framestore/models"
)

// frameRepository is the PostgreSQL-backed implementation of
// [FrameRepository] over the "inbox" table, which keeps one row per uploaded
// image file.
type frameRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewFrameRepository constructs a [FrameRepository] backed by the provided
// database connection and logger.
func NewFrameRepository(db *DB, logger *logger.Logger) FrameRepository {
	logger.Debug().Msg("creating frame repository")
	return &frameRepository{
		db:     db,
		logger: logger,
	}
}

// AddFrames persists every record of one batch inside a single transaction.
// The batch either lands whole or not at all: a short row count after the
// multi-row INSERT rolls the transaction back with [ErrNoFramesWereSaved].
func (r *frameRepository) AddFrames(ctx context.Context, frames []models.Frame) error {
	log := logger.FromContext(ctx)

	if len(frames) == 0 {
		return nil
	}

	query, args, err := buildInsertFramesQuery(frames)
	if err != nil {
		log.Err(err).Str("func", "*frameRepository.AddFrames").Msg("error: building insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*frameRepository.AddFrames").Msg("error: beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*frameRepository.AddFrames").Msg("error: executing insert")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	saved, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*frameRepository.AddFrames").Msg("error: reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if saved != int64(len(frames)) {
		log.Error().Str("func", "*frameRepository.AddFrames").
			Int64("saved", saved).Int("expected", len(frames)).
			Msg("error: batch insert saved fewer rows than expected")
		return ErrNoFramesWereSaved
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*frameRepository.AddFrames").Msg("error: committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// FindByRequestCode returns every frame of the batch identified by code. An
// unknown code yields an empty slice so the caller can decide whether that is
// an error.
func (r *frameRepository) FindByRequestCode(ctx context.Context, code string) ([]models.Frame, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectFramesByCodeQuery(code)
	if err != nil {
		log.Err(err).Str("func", "*frameRepository.FindByRequestCode").Msg("error: building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*frameRepository.FindByRequestCode").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var frames []models.Frame
	for rows.Next() {
		var frame models.Frame
		if err := rows.Scan(&frame.RequestCode, &frame.FileName, &frame.CreatedAt); err != nil {
			log.Err(err).Str("func", "*frameRepository.FindByRequestCode").Msg("error: scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		frames = append(frames, frame)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*frameRepository.FindByRequestCode").Msg("error: iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return frames, nil
}

// DeleteByRequestCode removes the whole batch in one statement and reports
// the number of deleted rows. Deleting an unknown code is not an error.
func (r *frameRepository) DeleteByRequestCode(ctx context.Context, code string) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteFramesByCodeQuery(code)
	if err != nil {
		log.Err(err).Str("func", "*frameRepository.DeleteByRequestCode").Msg("error: building delete query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*frameRepository.DeleteByRequestCode").Msg("error: executing delete")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*frameRepository.DeleteByRequestCode").Msg("error: reading affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return deleted, nil
}

// ListFileNamesByDay returns file names of every frame whose request code
// falls on the given YYYYMMDD day.
func (r *frameRepository) ListFileNamesByDay(ctx context.Context, day string) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectFileNamesByDayQuery(day)
	if err != nil {
		log.Err(err).Str("func", "*frameRepository.ListFileNamesByDay").Msg("error: building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*frameRepository.ListFileNamesByDay").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			log.Err(err).Str("func", "*frameRepository.ListFileNamesByDay").Msg("error: scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*frameRepository.ListFileNamesByDay").Msg("error: iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return names, nil
}
