package model

import (
	"time"

	"github.com/google/uuid"
)

// TokenType discriminates the two halves of an issued pair.
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// TokenClaims is the decoded claim set of a signed token, independent of the
// wire representation.
type TokenClaims struct {
	JTI       string
	UserID    uuid.UUID
	SessionID string
	Subject   string
	Issuer    string
	Audience  string
	TokenType TokenType
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenPair is the result of issuance: both signed strings plus the scheme
// clients put in the Authorization header.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
	ExpiresIn    int64
}

// TokenCodec signs and verifies compact token strings. It is pure: no
// persistence, no clock state beyond the expiry check at decode time.
type TokenCodec interface {
	Encode(claims TokenClaims) (string, error)
	// Decode verifies signature, structure, expiry and issuer/audience.
	Decode(tokenString string) (TokenClaims, error)
	// DecodeLenient verifies signature and structure but accepts expired
	// tokens. Used by logout, where an expired token is still revocable.
	DecodeLenient(tokenString string) (TokenClaims, error)
}
