package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenLedger is the authoritative record of every issued token and its
// revocation state. Rows are created by the issuer, mutated only by
// revocation, and removed only by cascade when the owning user is deleted.
type TokenLedger interface {
	Create(ctx context.Context, record TokenRecord) error
	GetByJTI(ctx context.Context, jti string) (TokenRecord, error)
	// Revoke marks the token revoked and appends a revocation-log entry, as a
	// single conditional write. It returns true only for the caller that
	// performed the transition; a token already revoked (or never issued)
	// yields false with no error. This compare-and-set is what makes
	// concurrent rotation of the same refresh token single-winner.
	Revoke(ctx context.Context, jti string, reason string) (bool, error)
	RevokeAllByUser(ctx context.Context, userID uuid.UUID, reason string) (int64, error)
	CountRevocationLog(ctx context.Context, jti string) (int64, error)
}

// TokenRecord is one ledger row. A token is active iff RevokedAt is nil and
// ExpiresAt is in the future.
type TokenRecord struct {
	ID            uuid.UUID
	JTI           string
	UserID        uuid.UUID
	TokenType     TokenType
	Audience      string
	Issuer        string
	Subject       string
	IssuedAt      time.Time
	ExpiresAt     time.Time
	RevokedAt     *time.Time
	RevokedReason *string
	SessionID     *string
	IP            *string
	UserAgent     *string
	Metadata      []byte
	CreatedAt     time.Time
}

// Active reports whether the record is usable at the given instant.
func (r TokenRecord) Active(now time.Time) bool {
	return r.RevokedAt == nil && r.ExpiresAt.After(now)
}
