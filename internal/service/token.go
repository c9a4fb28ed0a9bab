package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/univc/portfolio-server/internal/logger"
	"github.com/univc/portfolio-server/internal/model"
)

// Token provides high-level operations for issuing, validating, rotating and
// revoking tokens. Every minted token gets a ledger row before the signed
// string leaves this service, and every validation consults the ledger, so a
// revoked token dies immediately even though the signature stays valid.
type Token struct {
	codec      model.TokenCodec
	ledger     model.TokenLedger
	issuer     string
	audience   string
	accessTTL  time.Duration
	refreshTTL time.Duration
	logger     *logger.Logger

	now func() time.Time
}

// NewToken wires the codec and the ledger together. Issuer and audience must
// match the codec's configuration; they are denormalized into ledger rows.
func NewToken(
	codec model.TokenCodec,
	ledger model.TokenLedger,
	issuer string,
	audience string,
	accessTTL time.Duration,
	refreshTTL time.Duration,
	logger *logger.Logger,
) *Token {
	return &Token{
		codec:      codec,
		ledger:     ledger,
		issuer:     issuer,
		audience:   audience,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		logger:     logger,
		now:        time.Now,
	}
}

// Revocation reasons recorded in the ledger and the audit log.
const (
	ReasonRotated   = "rotated"
	ReasonLogout    = "logout"
	ReasonLogoutAll = "logout-all"
)

// IssueParams carries the identity and request metadata bound to a new pair.
// An empty SessionID starts a new session.
type IssueParams struct {
	UserID    uuid.UUID
	SessionID string
	Subject   string
	IP        string
	UserAgent string
}

func (s *Token) Issue(ctx context.Context, params IssueParams) (model.TokenPair, error) {
	if params.SessionID == "" {
		params.SessionID = uuid.NewString()
	}

	now := s.now()

	access, accessRecord, err := s.mint(params, model.TokenTypeAccess, now, now.Add(s.accessTTL))
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to mint access token: %w", err)
	}

	refresh, refreshRecord, err := s.mint(params, model.TokenTypeRefresh, now, now.Add(s.refreshTTL))
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to mint refresh token: %w", err)
	}

	// Both rows must exist before the strings are returned: a token the
	// ledger has never heard of must never be in circulation.
	if err := s.ledger.Create(ctx, accessRecord); err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to persist access token record: %w", err)
	}
	if err := s.ledger.Create(ctx, refreshRecord); err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to persist refresh token record: %w", err)
	}

	s.logger.Debug("issued token pair",
		"user_id", params.UserID,
		"session_id", params.SessionID,
		"access_jti", accessRecord.JTI,
		"refresh_jti", refreshRecord.JTI,
	)

	return model.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.accessTTL.Seconds()),
	}, nil
}

func (s *Token) mint(params IssueParams, typ model.TokenType, issuedAt, expiresAt time.Time) (string, model.TokenRecord, error) {
	jti := uuid.NewString()

	signed, err := s.codec.Encode(model.TokenClaims{
		JTI:       jti,
		UserID:    params.UserID,
		SessionID: params.SessionID,
		Subject:   params.Subject,
		TokenType: typ,
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
	})
	if err != nil {
		return "", model.TokenRecord{}, err
	}

	sid := params.SessionID
	record := model.TokenRecord{
		ID:        uuid.New(),
		JTI:       jti,
		UserID:    params.UserID,
		TokenType: typ,
		Audience:  s.audience,
		Issuer:    s.issuer,
		Subject:   params.Subject,
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
		SessionID: &sid,
	}
	if params.IP != "" {
		record.IP = &params.IP
	}
	if params.UserAgent != "" {
		record.UserAgent = &params.UserAgent
	}

	return signed, record, nil
}

// Validate checks the signed string cryptographically and against the ledger.
// The returned claims carry the ledger's user id, which is authoritative.
func (s *Token) Validate(ctx context.Context, tokenString string, expected model.TokenType) (model.TokenClaims, error) {
	claims, err := s.codec.Decode(tokenString)
	if err != nil {
		return model.TokenClaims{}, err
	}

	if claims.TokenType != expected {
		s.logger.Debug("token type mismatch", "jti", claims.JTI, "got", claims.TokenType, "want", expected)
		return model.TokenClaims{}, model.ErrTokenWrongType
	}

	record, err := s.ledger.GetByJTI(ctx, claims.JTI)
	if errors.Is(err, model.ErrNotFound) {
		s.logger.Warn("token not in ledger", "jti", claims.JTI)
		return model.TokenClaims{}, model.ErrTokenUnknown
	}
	if err != nil {
		return model.TokenClaims{}, fmt.Errorf("failed to look up token record: %w", err)
	}

	if record.RevokedAt != nil {
		s.logger.Info("revoked token presented", "jti", claims.JTI, "user_id", record.UserID)
		return model.TokenClaims{}, model.ErrTokenRevoked
	}
	if !record.ExpiresAt.After(s.now()) {
		return model.TokenClaims{}, model.ErrTokenExpired
	}

	claims.UserID = record.UserID
	return claims, nil
}

// Rotate exchanges a valid refresh token for a fresh pair. The presented
// token is revoked first with a compare-and-set, so of N concurrent calls
// with the same token exactly one wins; the rest see a revoked token. If
// issuing the new pair fails the revocation stands, which fails closed.
func (s *Token) Rotate(ctx context.Context, refreshToken string, ip, userAgent string) (model.TokenPair, error) {
	claims, err := s.Validate(ctx, refreshToken, model.TokenTypeRefresh)
	if err != nil {
		return model.TokenPair{}, err
	}

	ok, err := s.ledger.Revoke(ctx, claims.JTI, ReasonRotated)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to revoke rotated token: %w", err)
	}
	if !ok {
		s.logger.Warn("lost rotation race", "jti", claims.JTI, "user_id", claims.UserID)
		return model.TokenPair{}, model.ErrTokenRevoked
	}

	pair, err := s.Issue(ctx, IssueParams{
		UserID:    claims.UserID,
		SessionID: claims.SessionID,
		Subject:   claims.Subject,
		IP:        ip,
		UserAgent: userAgent,
	})
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to issue rotated pair: %w", err)
	}

	return pair, nil
}

// Revoke marks the presented token revoked. Expired tokens are accepted, a
// token that is already revoked or was never issued is a no-op, and only
// structural failures (bad signature, garbage input) are errors. Returns
// whether this call performed the revocation.
func (s *Token) Revoke(ctx context.Context, tokenString string, reason string) (bool, error) {
	claims, err := s.codec.DecodeLenient(tokenString)
	if err != nil {
		return false, err
	}

	ok, err := s.ledger.Revoke(ctx, claims.JTI, reason)
	if err != nil {
		return false, fmt.Errorf("failed to revoke token: %w", err)
	}

	if ok {
		s.logger.Info("token revoked", "jti", claims.JTI, "reason", reason)
	}
	return ok, nil
}

func (s *Token) RevokeAllForUser(ctx context.Context, userID uuid.UUID, reason string) (int64, error) {
	n, err := s.ledger.RevokeAllByUser(ctx, userID, reason)
	if err != nil {
		return 0, fmt.Errorf("failed to revoke user tokens: %w", err)
	}

	s.logger.Info("revoked all tokens for user", "user_id", userID, "count", n, "reason", reason)
	return n, nil
}

// GetUserID validates the string as an access token and returns the owner.
// This is the middleware entry point.
func (s *Token) GetUserID(ctx context.Context, tokenString string) (uuid.UUID, error) {
	claims, err := s.Validate(ctx, tokenString, model.TokenTypeAccess)
	if err != nil {
		return uuid.Nil, err
	}
	return claims.UserID, nil
}
