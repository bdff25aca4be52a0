package actionlog

import (
	"context"
	"database/sql"
	"time"
)

// NOTE: This repository assumes the following table exists:
//
// logged_actions (
//   id             uuid primary key,
//   type           text not null,
//   user_id        text,
//   person_id      text,
//   post_id        text,
//   new_version_id text,
//   source         text not null default '',
//   note           text not null default '',
//   ip_address     text,
//   created_at     timestamptz not null,
//   updated_at     timestamptz not null
// )
//
// with an index on created_at for the trailing-window queries.

type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo { return &PostgresRepo{db: db} }

func (r *PostgresRepo) Append(ctx context.Context, a Action) error {
	const q = `
INSERT INTO logged_actions (
  id, type, user_id, person_id, post_id, new_version_id, source, note, ip_address, created_at, updated_at
) VALUES (
  $1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11
)
`
	_, err := r.db.ExecContext(ctx, q,
		a.ID,
		a.Type,
		nullable(a.UserID),
		nullable(a.PersonID),
		nullable(a.PostID),
		nullable(a.NewVersionID),
		a.Source,
		a.Note,
		nullable(a.IPAddress),
		a.CreatedAt,
		a.UpdatedAt,
	)
	return err
}

func (r *PostgresRepo) UpdateNote(ctx context.Context, id, note string, updatedAt time.Time) error {
	// The note column is the only mutable field; everything else stays as written.
	const q = `
UPDATE logged_actions
SET note = $2, updated_at = $3
WHERE id = $1
`
	res, err := r.db.ExecContext(ctx, q, id, note, updatedAt)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) ListSince(ctx context.Context, since time.Time) ([]Action, error) {
	const q = `
SELECT id, type, user_id, person_id, post_id, new_version_id, source, note, ip_address, created_at, updated_at
FROM logged_actions
WHERE created_at >= $1
ORDER BY created_at ASC
`
	rows, err := r.db.QueryContext(ctx, q, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanActions(rows)
}

func (r *PostgresRepo) ListByUser(ctx context.Context, userID string, limit int) ([]Action, error) {
	const q = `
SELECT id, type, user_id, person_id, post_id, new_version_id, source, note, ip_address, created_at, updated_at
FROM logged_actions
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2
`
	rows, err := r.db.QueryContext(ctx, q, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanActions(rows)
}

func scanActions(rows *sql.Rows) ([]Action, error) {
	out := make([]Action, 0)
	for rows.Next() {
		var a Action
		var userID, personID, postID, versionID, ip sql.NullString
		if err := rows.Scan(
			&a.ID,
			&a.Type,
			&userID,
			&personID,
			&postID,
			&versionID,
			&a.Source,
			&a.Note,
			&ip,
			&a.CreatedAt,
			&a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		a.UserID = userID.String
		a.PersonID = personID.String
		a.PostID = postID.String
		a.NewVersionID = versionID.String
		a.IPAddress = ip.String
		out = append(out, a)
	}
	return out, rows.Err()
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
