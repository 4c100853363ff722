package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/dpanagushin/framestore/models"
)

const (
	createUser = `INSERT INTO users (role, email, password_hash, first_name, last_name, nickname)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING user_id, role, email, password_hash, first_name, last_name, nickname, created_at;`

	findUserByEmail = `SELECT user_id, role, email, password_hash, first_name, last_name, nickname, created_at
    FROM users
    WHERE email = $1;`

	upsertToken = `INSERT INTO auth_tokens (token, user_id)
    VALUES ($1, $2)
    ON CONFLICT (user_id) DO UPDATE SET token = EXCLUDED.token, created_at = now()
    RETURNING token_id, token, user_id, created_at;`

	findUserByToken = `SELECT u.user_id, u.role, u.email, u.password_hash, u.first_name, u.last_name, u.nickname, u.created_at
    FROM auth_tokens t
    JOIN users u ON u.user_id = t.user_id
    WHERE t.token = $1;`
)

// psql is the squirrel statement builder configured for PostgreSQL
// placeholders. All inbox queries are built through it because the batch
// insert has a value count only known at runtime.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildInsertFramesQuery builds a multi-row INSERT covering every frame of a
// batch, so the whole batch is persisted by one statement inside one
// transaction.
func buildInsertFramesQuery(frames []models.Frame) (string, []any, error) {
	builder := psql.
		Insert("inbox").
		Columns("request_code", "file_name", "created_at")

	for _, frame := range frames {
		builder = builder.Values(frame.RequestCode, frame.FileName, frame.CreatedAt)
	}

	return builder.ToSql()
}

// buildSelectFramesByCodeQuery builds the batch lookup query. Ordering by
// file_name keeps retrieval output stable between calls.
func buildSelectFramesByCodeQuery(code string) (string, []any, error) {
	return psql.
		Select("request_code", "file_name", "created_at").
		From("inbox").
		Where(sq.Eq{"request_code": code}).
		OrderBy("file_name").
		ToSql()
}

// buildDeleteFramesByCodeQuery builds the single-statement batch delete.
func buildDeleteFramesByCodeQuery(code string) (string, []any, error) {
	return psql.
		Delete("inbox").
		Where(sq.Eq{"request_code": code}).
		ToSql()
}

// buildSelectFileNamesByDayQuery builds the reconciler's day lookup: all file
// names whose request code falls on the given YYYYMMDD day.
func buildSelectFileNamesByDayQuery(day string) (string, []any, error) {
	return psql.
		Select("file_name").
		From("inbox").
		Where(sq.Like{"request_code": day + "%"}).
		ToSql()
}
