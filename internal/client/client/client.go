package client

import (
	"context"
	"math/big"

	"github.com/dpetrovs/zkpauth/internal/client/models"
)

type Client interface {
	Close() error
	Register(ctx context.Context, username string, y1, y2 *big.Int) error
	CreateAuthenticationChallenge(ctx context.Context, username string, r1, r2 *big.Int) (*models.Challenge, error)
	VerifyAuthentication(ctx context.Context, authID string, s *big.Int) (*models.Session, error)
}
