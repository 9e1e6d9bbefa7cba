package reminder

import (
	c "waterreminder/internal/core/domain/common"
	"time"
)

type TokenPayload struct {
	ReminderID ID
	ExpiresAt  c.Optional[time.Time]
}

// TokenCodec issues and verifies signed reminder tokens.
//
// ValidateToken is total: any malformed, forged or stale token yields false,
// never an error. The boolean intentionally carries no failure reason since
// tokens arrive on attacker-reachable webhook paths.
type TokenCodec interface {
	IssueToken(payload TokenPayload) (Token, error)
	ValidateToken(token Token) bool
}

// IdentityGenerator produces fresh collision-resistant reminder IDs.
type IdentityGenerator interface {
	GenerateReminderID() ID
}
