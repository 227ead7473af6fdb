package store

import (
	"context"
	"database/sql"
	"time"
)

// ResetTokenRepository handles persistence for password reset tokens.
// Only a SHA-256 hash of each token is stored; the raw token travels in
// the emailed link and nowhere else.
type ResetTokenRepository struct {
	db *sql.DB
}

func NewResetTokenRepository(db *sql.DB) *ResetTokenRepository {
	return &ResetTokenRepository{db: db}
}

// Create records a freshly issued token hash for a user.
func (r *ResetTokenRepository) Create(ctx context.Context, userID int, tokenHash string, expiresAt time.Time) error {
	const query = `
		INSERT INTO reset_tokens (user_id, token_hash, expires_at, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecContext(ctx, query, userID, tokenHash, expiresAt, time.Now())
	return err
}

// Consume marks the matching token as used. The consumed_at guard makes the
// operation single-shot: a second consume of the same token affects zero
// rows and returns ErrNotFound, as does an expired or unknown token.
func (r *ResetTokenRepository) Consume(ctx context.Context, userID int, tokenHash string) error {
	const query = `
		UPDATE reset_tokens
		SET consumed_at = $1
		WHERE user_id = $2
			AND token_hash = $3
			AND consumed_at IS NULL
			AND expires_at > $1`
	result, err := r.db.ExecContext(ctx, query, time.Now(), userID, tokenHash)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
