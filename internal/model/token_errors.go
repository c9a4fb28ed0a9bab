package model

import "errors"

// Token subsystem errors. The first four come out of the codec, the rest out
// of the ledger check. The HTTP layer collapses all of them into one generic
// unauthorized response; the distinction exists for logging and audit only.
var (
	ErrTokenMalformed     = errors.New("token malformed")
	ErrTokenSignature     = errors.New("token signature invalid")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenClaimMismatch = errors.New("token claim mismatch")

	ErrTokenWrongType = errors.New("wrong token type")
	ErrTokenUnknown   = errors.New("unknown token")
	ErrTokenRevoked   = errors.New("token revoked")

	// ErrTokenIncomplete is a programmer error: the issuer handed the codec a
	// claim set with required fields missing.
	ErrTokenIncomplete = errors.New("token claims incomplete")
)

// IsUnauthorized reports whether err is one of the token errors that must be
// presented externally as a generic 401.
func IsUnauthorized(err error) bool {
	for _, target := range []error{
		ErrTokenMalformed,
		ErrTokenSignature,
		ErrTokenExpired,
		ErrTokenClaimMismatch,
		ErrTokenWrongType,
		ErrTokenUnknown,
		ErrTokenRevoked,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
