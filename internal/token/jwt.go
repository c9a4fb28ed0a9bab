package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/univc/portfolio-server/internal/model"
)

// Claims is the wire representation of a token claim set.
type Claims struct {
	jwt.RegisteredClaims
	UserID    uuid.UUID `json:"uid"`
	SessionID string    `json:"sid,omitempty"`
	TokenType string    `json:"typ"`
}

// Codec implements model.TokenCodec backed by symmetric HMAC. It signs with a
// configured algorithm and enforces the configured issuer and audience on
// decode. The codec is pure: it never touches the ledger.
type Codec struct {
	secret   []byte
	method   *jwt.SigningMethodHMAC
	issuer   string
	audience string
	now      func() time.Time
}

var signingMethods = map[string]*jwt.SigningMethodHMAC{
	"HS256": jwt.SigningMethodHS256,
	"HS384": jwt.SigningMethodHS384,
	"HS512": jwt.SigningMethodHS512,
}

// NewCodec creates a codec for the given shared secret, algorithm identifier
// and expected issuer/audience. Only the HMAC family is supported.
func NewCodec(secret, algorithm, issuer, audience string) (*Codec, error) {
	method, ok := signingMethods[algorithm]
	if !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}

	return &Codec{
		secret:   []byte(secret),
		method:   method,
		issuer:   issuer,
		audience: audience,
		now:      time.Now,
	}, nil
}

var _ model.TokenCodec = (*Codec)(nil)

// Encode signs the claim set into a compact token string. Issuer and audience
// come from the codec configuration; jti, user id, type, subject and expiry
// must be supplied by the caller.
func (c *Codec) Encode(claims model.TokenClaims) (string, error) {
	if err := requireClaims(claims); err != nil {
		return "", err
	}

	token := jwt.NewWithClaims(c.method, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			Audience:  jwt.ClaimStrings{c.audience},
			Subject:   claims.Subject,
			ID:        claims.JTI,
			IssuedAt:  jwt.NewNumericDate(claims.IssuedAt),
			NotBefore: jwt.NewNumericDate(claims.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(claims.ExpiresAt),
		},
		UserID:    claims.UserID,
		SessionID: claims.SessionID,
		TokenType: string(claims.TokenType),
	})

	tokenString, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Decode verifies signature, structure, expiry and issuer/audience, and
// returns the embedded claims.
func (c *Codec) Decode(tokenString string) (model.TokenClaims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, c.keyFunc,
		jwt.WithIssuer(c.issuer),
		jwt.WithAudience(c.audience),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(func() time.Time { return c.now() }),
	)
	if err != nil {
		return model.TokenClaims{}, mapParseError(err)
	}
	if !token.Valid {
		return model.TokenClaims{}, model.ErrTokenSignature
	}

	return c.toModel(claims)
}

// DecodeLenient verifies signature, structure and issuer/audience but accepts
// an expired token. Logout uses it: a token past its expiry can still be
// presented for explicit revocation.
func (c *Codec) DecodeLenient(tokenString string) (model.TokenClaims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, c.keyFunc,
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return model.TokenClaims{}, mapParseError(err)
	}
	if !token.Valid {
		return model.TokenClaims{}, model.ErrTokenSignature
	}

	if claims.Issuer != c.issuer {
		return model.TokenClaims{}, fmt.Errorf("%w: issuer %q", model.ErrTokenClaimMismatch, claims.Issuer)
	}
	if !containsAudience(claims.Audience, c.audience) {
		return model.TokenClaims{}, fmt.Errorf("%w: audience %v", model.ErrTokenClaimMismatch, claims.Audience)
	}

	return c.toModel(claims)
}

func (c *Codec) keyFunc(t *jwt.Token) (interface{}, error) {
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
	}
	return c.secret, nil
}

func (c *Codec) toModel(claims *Claims) (model.TokenClaims, error) {
	if claims.ID == "" || claims.UserID == uuid.Nil || claims.TokenType == "" {
		return model.TokenClaims{}, fmt.Errorf("%w: jti, uid and typ are required", model.ErrTokenMalformed)
	}

	out := model.TokenClaims{
		JTI:       claims.ID,
		UserID:    claims.UserID,
		SessionID: claims.SessionID,
		Subject:   claims.Subject,
		Issuer:    claims.Issuer,
		TokenType: model.TokenType(claims.TokenType),
	}
	if len(claims.Audience) > 0 {
		out.Audience = claims.Audience[0]
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

func requireClaims(claims model.TokenClaims) error {
	switch {
	case claims.JTI == "":
		return fmt.Errorf("%w: jti", model.ErrTokenIncomplete)
	case claims.UserID == uuid.Nil:
		return fmt.Errorf("%w: uid", model.ErrTokenIncomplete)
	case claims.Subject == "":
		return fmt.Errorf("%w: sub", model.ErrTokenIncomplete)
	case claims.TokenType == "":
		return fmt.Errorf("%w: typ", model.ErrTokenIncomplete)
	case claims.IssuedAt.IsZero() || claims.ExpiresAt.IsZero():
		return fmt.Errorf("%w: iat/exp", model.ErrTokenIncomplete)
	case !claims.ExpiresAt.After(claims.IssuedAt):
		return fmt.Errorf("%w: exp must be after iat", model.ErrTokenIncomplete)
	}
	return nil
}

func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %w", model.ErrTokenMalformed, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return fmt.Errorf("%w: %w", model.ErrTokenSignature, err)
	case errors.Is(err, jwt.ErrTokenExpired), errors.Is(err, jwt.ErrTokenNotValidYet):
		return fmt.Errorf("%w: %w", model.ErrTokenExpired, err)
	case errors.Is(err, jwt.ErrTokenInvalidIssuer), errors.Is(err, jwt.ErrTokenInvalidAudience):
		return fmt.Errorf("%w: %w", model.ErrTokenClaimMismatch, err)
	default:
		return fmt.Errorf("%w: %w", model.ErrTokenMalformed, err)
	}
}

func containsAudience(aud jwt.ClaimStrings, want string) bool {
	for _, a := range aud {
		if a == want {
			return true
		}
	}
	return false
}
