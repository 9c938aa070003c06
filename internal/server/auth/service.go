// Package auth implements the server side of the authentication protocol:
// registration of public values, challenge issuance and proof
// verification, with sessions issued on success.
package auth

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/dpetrovs/zkpauth/internal/chaumpedersen"
	"github.com/dpetrovs/zkpauth/internal/common"
	"github.com/dpetrovs/zkpauth/internal/server/config"
	"github.com/dpetrovs/zkpauth/internal/server/models"
	"github.com/dpetrovs/zkpauth/internal/server/store"
)

type Service struct {
	params        *chaumpedersen.Params
	store         store.Store
	sessionSecret []byte
	challengeTTL  time.Duration
	sessionTTL    time.Duration
}

func NewService(st store.Store, params *chaumpedersen.Params, cfg *config.Config) *Service {
	return &Service{
		params:        params,
		store:         st,
		sessionSecret: []byte(cfg.SessionSecret),
		challengeTTL:  cfg.ChallengeTTL,
		sessionTTL:    cfg.SessionTTL,
	}
}

// Register stores a user's public values (y1, y2). A user id can be
// registered once; later attempts fail with common.ErrAlreadyRegistered
// and leave the original registration untouched.
func (s *Service) Register(ctx context.Context, userID string, y1, y2 *big.Int) error {
	if userID == "" {
		return fmt.Errorf("%w: empty user id", common.ErrValidation)
	}
	if !s.groupElement(y1) || !s.groupElement(y2) {
		return fmt.Errorf("%w: public value out of range", common.ErrValidation)
	}

	reg := &models.Registration{
		UserID:    userID,
		Y1:        y1,
		Y2:        y2,
		CreatedAt: time.Now(),
	}
	return s.store.SaveRegistration(ctx, reg)
}

// CreateAuthenticationChallenge starts an authentication round for the
// commitment (r1, r2): it draws a fresh random challenge, stores the
// round under a new auth id and returns it. Unknown users get
// common.ErrUserNotFound.
func (s *Service) CreateAuthenticationChallenge(ctx context.Context, userID string, r1, r2 *big.Int) (*models.Challenge, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: empty user id", common.ErrValidation)
	}
	if !s.groupElement(r1) || !s.groupElement(r2) {
		return nil, fmt.Errorf("%w: commitment out of range", common.ErrValidation)
	}

	if _, err := s.store.GetRegistration(ctx, userID); err != nil {
		return nil, err
	}

	c, err := chaumpedersen.Challenge(s.params)
	if err != nil {
		return nil, common.ErrInternal
	}

	now := time.Now()
	ch := &models.Challenge{
		AuthID:    uuid.NewString(),
		UserID:    userID,
		R1:        r1,
		R2:        r2,
		C:         c,
		CreatedAt: now,
		ExpiresAt: deadline(now, s.challengeTTL),
	}
	if err := s.store.PutChallenge(ctx, ch); err != nil {
		return nil, common.ErrInternal
	}
	return ch, nil
}

// VerifyAuthentication checks the prover's answer against the pending
// round. The round is consumed first, whatever the outcome, so an auth id
// can never be verified twice. On success it stores and returns a new
// session with a signed token.
func (s *Service) VerifyAuthentication(ctx context.Context, authID string, answer *big.Int) (*models.Session, error) {
	if authID == "" {
		return nil, fmt.Errorf("%w: empty auth id", common.ErrValidation)
	}
	if !s.scalar(answer) {
		return nil, fmt.Errorf("%w: answer out of range", common.ErrValidation)
	}

	ch, err := s.store.TakeChallenge(ctx, authID)
	if err != nil {
		return nil, err
	}

	reg, err := s.store.GetRegistration(ctx, ch.UserID)
	if err != nil {
		if errors.Is(err, common.ErrUserNotFound) {
			return nil, common.ErrRegistrationMissing
		}
		return nil, err
	}

	if !chaumpedersen.Verify(s.params, reg.Y1, reg.Y2, ch.R1, ch.R2, ch.C, answer) {
		return nil, common.ErrAuthenticationFailed
	}

	now := time.Now()
	sess := &models.Session{
		ID:        uuid.NewString(),
		UserID:    ch.UserID,
		CreatedAt: now,
		ExpiresAt: deadline(now, s.sessionTTL),
	}

	token, err := generateSessionToken(sess.ID, sess.UserID, s.sessionSecret, s.sessionTTL, now)
	if err != nil {
		return nil, common.ErrInternal
	}
	sess.Token = token

	if err := s.store.PutSession(ctx, sess); err != nil {
		return nil, common.ErrInternal
	}
	return sess, nil
}

// Session returns the stored session with the given id, or
// common.ErrSessionNotFound when it does not exist or has expired.
func (s *Service) Session(ctx context.Context, sessionID string) (*models.Session, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("%w: empty session id", common.ErrValidation)
	}
	return s.store.GetSession(ctx, sessionID)
}

func (s *Service) groupElement(v *big.Int) bool {
	return v != nil && v.Sign() > 0 && v.Cmp(s.params.P) < 0
}

func (s *Service) scalar(v *big.Int) bool {
	return v != nil && v.Sign() >= 0 && v.Cmp(s.params.Q) < 0
}

func deadline(now time.Time, ttl time.Duration) time.Time {
	if ttl == 0 {
		return time.Time{}
	}
	return now.Add(ttl)
}
