package account

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"candidate-platform/pkg/utils"
)

// NOTE: This repository assumes the following tables exist:
//
// users (
//   id         uuid primary key,
//   username   text not null unique,
//   email      text not null default '',
//   created_at timestamptz not null,
//   updated_at timestamptz not null
// )
//
// user_terms_agreements (
//   user_id    uuid primary key references users (id),
//   agreed     boolean not null default false,
//   agreed_at  timestamptz,
//   created_at timestamptz not null
// )
//
// The primary key on user_id is what makes provisioning at-most-once.

type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo { return &PostgresRepo{db: db} }

func (r *PostgresRepo) CreateUserWithAgreement(ctx context.Context, u User, ta TermsAgreement) error {
	return utils.WithTx(ctx, r.db, &sql.TxOptions{}, func(ctx context.Context, tx *sql.Tx) error {
		const insertUser = `
INSERT INTO users (id, username, email, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5)
`
		if _, err := tx.ExecContext(ctx, insertUser, u.ID, u.Username, u.Email, u.CreatedAt, u.UpdatedAt); err != nil {
			return err
		}

		const insertAgreement = `
INSERT INTO user_terms_agreements (user_id, agreed, agreed_at, created_at)
VALUES ($1,$2,$3,$4)
ON CONFLICT (user_id) DO NOTHING
`
		_, err := tx.ExecContext(ctx, insertAgreement, ta.UserID, ta.Agreed, ta.AgreedAt, ta.CreatedAt)
		return err
	})
}

func (r *PostgresRepo) FindUserByUsername(ctx context.Context, username string) (User, bool, error) {
	const q = `
SELECT id, username, email, created_at, updated_at
FROM users
WHERE username = $1
LIMIT 1
`
	var u User
	err := r.db.QueryRowContext(ctx, q, username).Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, false, nil
		}
		return User{}, false, err
	}
	return u, true, nil
}

func (r *PostgresRepo) UpdateUserEmail(ctx context.Context, userID, email string, updatedAt time.Time) error {
	const q = `
UPDATE users
SET email = $2, updated_at = $3
WHERE id = $1
`
	res, err := r.db.ExecContext(ctx, q, userID, email, updatedAt)
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

func (r *PostgresRepo) GetAgreement(ctx context.Context, userID string) (TermsAgreement, error) {
	const q = `
SELECT user_id, agreed, agreed_at, created_at
FROM user_terms_agreements
WHERE user_id = $1
`
	var ta TermsAgreement
	var agreedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, q, userID).Scan(
		&ta.UserID,
		&ta.Agreed,
		&agreedAt,
		&ta.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TermsAgreement{}, ErrNotFound
		}
		return TermsAgreement{}, err
	}
	if agreedAt.Valid {
		t := agreedAt.Time
		ta.AgreedAt = &t
	}
	return ta, nil
}

func (r *PostgresRepo) SetAgreement(ctx context.Context, userID string, agreed bool, at time.Time) error {
	const q = `
UPDATE user_terms_agreements
SET agreed = $2, agreed_at = CASE WHEN $2 THEN $3 ELSE NULL END
WHERE user_id = $1
`
	res, err := r.db.ExecContext(ctx, q, userID, agreed, at)
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
