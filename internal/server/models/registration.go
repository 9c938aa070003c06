package models

import (
	"math/big"
	"time"
)

// Registration is the public half of a user's secret: y1 = g^x and
// y2 = h^x. The secret itself never reaches the server.
type Registration struct {
	UserID    string
	Y1        *big.Int
	Y2        *big.Int
	CreatedAt time.Time
}
