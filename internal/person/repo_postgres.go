package person

import (
	"context"
	"database/sql"
	"errors"
)

// NOTE: This repository assumes the following table exists:
//
// person_redirects (
//   id            uuid primary key,
//   old_person_id text not null unique,
//   new_person_id text not null,
//   created_at    timestamptz not null
// )

type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo { return &PostgresRepo{db: db} }

func (r *PostgresRepo) Insert(ctx context.Context, red Redirect) error {
	const q = `
INSERT INTO person_redirects (id, old_person_id, new_person_id, created_at)
VALUES ($1,$2,$3,$4)
`
	_, err := r.db.ExecContext(ctx, q, red.ID, red.OldPersonID, red.NewPersonID, red.CreatedAt)
	return err
}

func (r *PostgresRepo) FindByOldID(ctx context.Context, oldPersonID string) (Redirect, bool, error) {
	const q = `
SELECT id, old_person_id, new_person_id, created_at
FROM person_redirects
WHERE old_person_id = $1
LIMIT 1
`
	var red Redirect
	err := r.db.QueryRowContext(ctx, q, oldPersonID).Scan(
		&red.ID,
		&red.OldPersonID,
		&red.NewPersonID,
		&red.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Redirect{}, false, nil
		}
		return Redirect{}, false, err
	}
	return red, true, nil
}
