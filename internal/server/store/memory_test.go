package store

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpetrovs/zkpauth/internal/common"
	"github.com/dpetrovs/zkpauth/internal/server/models"
)

func testRegistration(userID string) *models.Registration {
	return &models.Registration{
		UserID:    userID,
		Y1:        big.NewInt(13),
		Y2:        big.NewInt(2),
		CreatedAt: time.Now(),
	}
}

func testChallenge(authID, userID string, expires time.Time) *models.Challenge {
	return &models.Challenge{
		AuthID:    authID,
		UserID:    userID,
		R1:        big.NewInt(8),
		R2:        big.NewInt(4),
		C:         big.NewInt(5),
		ExpiresAt: expires,
	}
}

func TestRegistrationLifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.SaveRegistration(ctx, testRegistration("alice")))

	reg, err := s.GetRegistration(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", reg.UserID)
	assert.Equal(t, int64(13), reg.Y1.Int64())

	err = s.SaveRegistration(ctx, testRegistration("alice"))
	assert.ErrorIs(t, err, common.ErrAlreadyRegistered)

	_, err = s.GetRegistration(ctx, "bob")
	assert.ErrorIs(t, err, common.ErrUserNotFound)
}

func TestTakeChallengeConsumes(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.PutChallenge(ctx, testChallenge("auth-1", "alice", time.Time{})))

	ch, err := s.TakeChallenge(ctx, "auth-1")
	require.NoError(t, err)
	assert.Equal(t, "alice", ch.UserID)

	_, err = s.TakeChallenge(ctx, "auth-1")
	assert.ErrorIs(t, err, common.ErrChallengeNotFound)
}

func TestTakeChallengeExpired(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	base := time.Now()
	s.now = func() time.Time { return base }

	require.NoError(t, s.PutChallenge(ctx, testChallenge("auth-1", "alice", base.Add(time.Minute))))

	s.now = func() time.Time { return base.Add(2 * time.Minute) }
	_, err := s.TakeChallenge(ctx, "auth-1")
	assert.ErrorIs(t, err, common.ErrChallengeNotFound)

	// Consumed even though it was expired.
	s.now = func() time.Time { return base }
	_, err = s.TakeChallenge(ctx, "auth-1")
	assert.ErrorIs(t, err, common.ErrChallengeNotFound)
}

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	base := time.Now()
	s.now = func() time.Time { return base }

	sess := &models.Session{ID: "sess-1", UserID: "alice", Token: "tok", ExpiresAt: base.Add(time.Hour)}
	require.NoError(t, s.PutSession(ctx, sess))

	got, err := s.GetSession(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.UserID)

	s.now = func() time.Time { return base.Add(2 * time.Hour) }
	_, err = s.GetSession(ctx, "sess-1")
	assert.ErrorIs(t, err, common.ErrSessionNotFound)

	_, err = s.GetSession(ctx, "missing")
	assert.ErrorIs(t, err, common.ErrSessionNotFound)
}

func TestSweepRemovesExpiredOnly(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	base := time.Now()
	require.NoError(t, s.PutChallenge(ctx, testChallenge("stale-1", "alice", base.Add(-time.Minute))))
	require.NoError(t, s.PutChallenge(ctx, testChallenge("stale-2", "bob", base.Add(-time.Second))))
	require.NoError(t, s.PutChallenge(ctx, testChallenge("live", "carol", base.Add(time.Hour))))
	require.NoError(t, s.PutSession(ctx, &models.Session{ID: "old", ExpiresAt: base.Add(-time.Minute)}))
	require.NoError(t, s.PutSession(ctx, &models.Session{ID: "fresh", ExpiresAt: base.Add(time.Hour)}))

	assert.Equal(t, 3, s.Sweep(base))

	_, err := s.TakeChallenge(ctx, "live")
	assert.NoError(t, err)
	_, err = s.GetSession(ctx, "fresh")
	assert.NoError(t, err)
	_, err = s.GetSession(ctx, "old")
	assert.ErrorIs(t, err, common.ErrSessionNotFound)
}

func TestConcurrentUsersDoNotInterfere(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	const workers = 64
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			user := fmt.Sprintf("user-%03d", i)
			if err := s.SaveRegistration(ctx, testRegistration(user)); err != nil {
				errs <- err
				return
			}
			reg, err := s.GetRegistration(ctx, user)
			if err != nil {
				errs <- err
				return
			}
			if reg.UserID != user {
				errs <- fmt.Errorf("got %q, want %q", reg.UserID, user)
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

func TestConcurrentTakeHasSingleWinner(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.PutChallenge(ctx, testChallenge("auth-1", "alice", time.Time{})))

	const workers = 32
	var won, lost atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.TakeChallenge(ctx, "auth-1"); err == nil {
				won.Add(1)
			} else {
				lost.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), won.Load())
	assert.Equal(t, int32(workers-1), lost.Load())
}

func TestConcurrentDuplicateRegistration(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	const workers = 16
	var created atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.SaveRegistration(ctx, testRegistration("alice")); err == nil {
				created.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), created.Load())
}

func TestCounts(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.SaveRegistration(ctx, testRegistration("alice")))
	require.NoError(t, s.SaveRegistration(ctx, testRegistration("bob")))
	require.NoError(t, s.PutChallenge(ctx, testChallenge("auth-1", "alice", time.Time{})))
	require.NoError(t, s.PutSession(ctx, &models.Session{ID: "sess-1"}))

	regs, challenges, sessions := s.Counts()
	assert.Equal(t, 2, regs)
	assert.Equal(t, 1, challenges)
	assert.Equal(t, 1, sessions)
}

func TestShardIndexStable(t *testing.T) {
	for _, key := range []string{"", "alice", "auth-1", "a very long key with spaces"} {
		idx := shardIndex(key)
		assert.Equal(t, idx, shardIndex(key))
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, shardCount)
	}
}
