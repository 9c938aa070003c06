// Package models holds the client-side views of protocol data.
package models

import "math/big"

// Challenge is the server's reply to a commitment: the round id and the
// challenge value the response must answer.
type Challenge struct {
	AuthID string
	C      *big.Int
}
