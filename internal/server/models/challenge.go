package models

import (
	"math/big"
	"time"
)

// Challenge is one pending authentication round: the prover's commitment
// (r1, r2) and the challenge c issued for it. It is consumed on first
// use, whether verification succeeds or not.
type Challenge struct {
	AuthID    string
	UserID    string
	R1        *big.Int
	R2        *big.Int
	C         *big.Int
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the challenge's deadline has passed. A zero
// ExpiresAt means no deadline.
func (c *Challenge) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}
