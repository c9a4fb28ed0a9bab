package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/univc/portfolio-server/internal/model"
)

var _ model.TokenLedger = (*TokenLedgerRepository)(nil)

// TokenLedgerRepository persists one row per issued token and is the sole
// authority for revocation state.
type TokenLedgerRepository struct {
	db *Connection
}

func NewTokenLedgerRepository(db *Connection) *TokenLedgerRepository {
	return &TokenLedgerRepository{db: db}
}

func (r *TokenLedgerRepository) Create(ctx context.Context, record model.TokenRecord) error {
	const query = `
        INSERT INTO token_records (
            id, jti, user_id, token_type, audience, issuer, subject,
            issued_at, expires_at, session_id, ip, user_agent, metadata
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,COALESCE($13,'{}'::jsonb))
    `

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}

	_, err := r.db.Exec(ctx, query,
		record.ID, record.JTI, record.UserID, record.TokenType,
		record.Audience, record.Issuer, record.Subject,
		record.IssuedAt, record.ExpiresAt,
		record.SessionID, record.IP, record.UserAgent, record.Metadata,
	)
	if err != nil {
		return fmt.Errorf("failed to create token record: %w", err)
	}
	return nil
}

func (r *TokenLedgerRepository) GetByJTI(ctx context.Context, jti string) (model.TokenRecord, error) {
	const query = `
        SELECT id, jti, user_id, token_type, audience, issuer, subject,
               issued_at, expires_at, revoked_at, revoked_reason,
               session_id, ip, user_agent, metadata, created_at
        FROM token_records WHERE jti = $1
    `
	var rec model.TokenRecord
	err := r.db.QueryRow(ctx, query, jti).Scan(
		&rec.ID, &rec.JTI, &rec.UserID, &rec.TokenType,
		&rec.Audience, &rec.Issuer, &rec.Subject,
		&rec.IssuedAt, &rec.ExpiresAt, &rec.RevokedAt, &rec.RevokedReason,
		&rec.SessionID, &rec.IP, &rec.UserAgent, &rec.Metadata, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.TokenRecord{}, model.ErrNotFound
		}
		return model.TokenRecord{}, fmt.Errorf("failed to get token record by jti: %w", err)
	}
	return rec, nil
}

// Revoke flips revoked_at exactly once per jti and appends the audit entry in
// the same statement. The conditional update is the compare-and-set that
// decides concurrent rotations of the same refresh token: only the caller
// whose update matched the still-null revoked_at gets true back.
func (r *TokenLedgerRepository) Revoke(ctx context.Context, jti string, reason string) (bool, error) {
	const query = `
        WITH revoked AS (
            UPDATE token_records
               SET revoked_at = NOW(), revoked_reason = $2
             WHERE jti = $1 AND revoked_at IS NULL
         RETURNING jti, user_id, revoked_at
        )
        INSERT INTO revocation_log (jti, user_id, reason, revoked_at)
        SELECT jti, user_id, $2, revoked_at FROM revoked
    `
	tag, err := r.db.Exec(ctx, query, jti, reason)
	if err != nil {
		return false, fmt.Errorf("failed to revoke token: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *TokenLedgerRepository) RevokeAllByUser(ctx context.Context, userID uuid.UUID, reason string) (int64, error) {
	const query = `
        WITH revoked AS (
            UPDATE token_records
               SET revoked_at = NOW(), revoked_reason = $2
             WHERE user_id = $1 AND revoked_at IS NULL
         RETURNING jti, user_id, revoked_at
        )
        INSERT INTO revocation_log (jti, user_id, reason, revoked_at)
        SELECT jti, user_id, $2, revoked_at FROM revoked
    `
	tag, err := r.db.Exec(ctx, query, userID, reason)
	if err != nil {
		return 0, fmt.Errorf("failed to revoke tokens by user: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *TokenLedgerRepository) CountRevocationLog(ctx context.Context, jti string) (int64, error) {
	const query = `SELECT COUNT(*) FROM revocation_log WHERE jti = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, jti).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count revocation log entries: %w", err)
	}
	return count, nil
}
