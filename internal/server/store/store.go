// Package store holds the server's authentication state: registrations,
// pending challenges and issued sessions.
package store

import (
	"context"

	"github.com/dpetrovs/zkpauth/internal/server/models"
)

// Store is the state backend used by the authentication service. All
// implementations must be safe for concurrent use.
//
// TakeChallenge is the linchpin: it returns the challenge and removes it
// in one atomic step, so a transcript can never be verified twice.
type Store interface {
	// SaveRegistration stores a registration if the user does not exist
	// yet and returns common.ErrAlreadyRegistered otherwise.
	SaveRegistration(ctx context.Context, reg *models.Registration) error
	// GetRegistration returns common.ErrUserNotFound for unknown users.
	GetRegistration(ctx context.Context, userID string) (*models.Registration, error)

	PutChallenge(ctx context.Context, ch *models.Challenge) error
	// TakeChallenge removes and returns the challenge with the given
	// auth id. Missing, already consumed and expired challenges all
	// yield common.ErrChallengeNotFound.
	TakeChallenge(ctx context.Context, authID string) (*models.Challenge, error)

	PutSession(ctx context.Context, s *models.Session) error
	// GetSession returns common.ErrSessionNotFound for unknown or
	// expired sessions.
	GetSession(ctx context.Context, id string) (*models.Session, error)
}
