package tokencodec

import (
	"crypto/rsa"
	"time"
	e "waterreminder/internal/core/domain/errors"
	"waterreminder/internal/core/domain/reminder"

	"github.com/golang-jwt/jwt/v5"
)

type tokenClaims struct {
	ReminderID    string `json:"reminderId"`
	ApplicationID string `json:"application_id,omitempty"`
	jwt.RegisteredClaims
}

// RS256 issues and verifies reminder tokens signed with the application's
// RSA private key. Verification deliberately skips the library's own
// exp/nbf enforcement and applies the staleness check itself, so a token
// without an embedded expiry never goes stale.
type RS256 struct {
	privateKey    *rsa.PrivateKey
	applicationID string
	now           func() time.Time
}

func NewRS256(privateKeyPEM []byte, applicationID string, now func() time.Time) (*RS256, error) {
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(privateKeyPEM)
	if err != nil {
		return nil, err
	}
	return &RS256{
		privateKey:    privateKey,
		applicationID: applicationID,
		now:           now,
	}, nil
}

func (c *RS256) IssueToken(payload reminder.TokenPayload) (reminder.Token, error) {
	claims := tokenClaims{
		ReminderID:    string(payload.ReminderID),
		ApplicationID: c.applicationID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(c.now()),
		},
	}
	if payload.ExpiresAt.IsPresent {
		claims.ExpiresAt = jwt.NewNumericDate(payload.ExpiresAt.Value)
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(c.privateKey)
	if err != nil {
		return "", err
	}
	return reminder.Token(signed), nil
}

// ValidateToken accepts arbitrary, possibly forged input and reports only
// a boolean. Signature verification is pinned to RS256; a wrong or missing
// algorithm fails, it never falls back to symmetric verification.
func (c *RS256) ValidateToken(token reminder.Token) bool {
	claims := tokenClaims{}
	parsed, err := jwt.ParseWithClaims(
		string(token),
		&claims,
		func(t *jwt.Token) (interface{}, error) { return &c.privateKey.PublicKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil || !parsed.Valid {
		return false
	}
	if claims.ExpiresAt != nil && c.now().After(claims.ExpiresAt.Time) {
		return false
	}
	return true
}
