package store

import (
	"context"
	"sync"
	"time"

	"github.com/dpetrovs/zkpauth/internal/common"
	"github.com/dpetrovs/zkpauth/internal/server/models"
)

const shardCount = 16

// fnv-1a
const (
	offset32 = 2166136261
	prime32  = 16777619
)

func shardIndex(key string) int {
	h := uint32(offset32)
	for i := 0; i < len(key); i++ {
		h ^= uint32(key[i])
		h *= prime32
	}
	return int(h & (shardCount - 1))
}

type shard[V any] struct {
	mu sync.RWMutex
	m  map[string]V
}

// shardedMap spreads keys over independently locked shards so unrelated
// users do not contend on one mutex.
type shardedMap[V any] struct {
	shards [shardCount]*shard[V]
}

func newShardedMap[V any]() *shardedMap[V] {
	s := &shardedMap[V]{}
	for i := range s.shards {
		s.shards[i] = &shard[V]{m: make(map[string]V)}
	}
	return s
}

func (s *shardedMap[V]) get(key string) (V, bool) {
	sh := s.shards[shardIndex(key)]
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	v, ok := sh.m[key]
	return v, ok
}

func (s *shardedMap[V]) put(key string, v V) {
	sh := s.shards[shardIndex(key)]
	sh.mu.Lock()
	defer sh.mu.Unlock()
	sh.m[key] = v
}

func (s *shardedMap[V]) putIfAbsent(key string, v V) bool {
	sh := s.shards[shardIndex(key)]
	sh.mu.Lock()
	defer sh.mu.Unlock()
	if _, ok := sh.m[key]; ok {
		return false
	}
	sh.m[key] = v
	return true
}

// take removes and returns the value in one step.
func (s *shardedMap[V]) take(key string) (V, bool) {
	sh := s.shards[shardIndex(key)]
	sh.mu.Lock()
	defer sh.mu.Unlock()
	v, ok := sh.m[key]
	if ok {
		delete(sh.m, key)
	}
	return v, ok
}

func (s *shardedMap[V]) delete(key string) {
	sh := s.shards[shardIndex(key)]
	sh.mu.Lock()
	defer sh.mu.Unlock()
	delete(sh.m, key)
}

func (s *shardedMap[V]) len() int {
	n := 0
	for _, sh := range s.shards {
		sh.mu.RLock()
		n += len(sh.m)
		sh.mu.RUnlock()
	}
	return n
}

func (s *shardedMap[V]) sweep(expired func(V) bool) int {
	removed := 0
	for _, sh := range s.shards {
		sh.mu.Lock()
		for k, v := range sh.m {
			if expired(v) {
				delete(sh.m, k)
				removed++
			}
		}
		sh.mu.Unlock()
	}
	return removed
}

// MemoryStore keeps all state in process memory. Registrations live until
// the process exits; challenges and sessions honour their ExpiresAt.
// Stored big.Int values are treated as immutable by every caller.
type MemoryStore struct {
	registrations *shardedMap[models.Registration]
	challenges    *shardedMap[models.Challenge]
	sessions      *shardedMap[models.Session]
	now           func() time.Time
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		registrations: newShardedMap[models.Registration](),
		challenges:    newShardedMap[models.Challenge](),
		sessions:      newShardedMap[models.Session](),
		now:           time.Now,
	}
}

func (s *MemoryStore) SaveRegistration(ctx context.Context, reg *models.Registration) error {
	if !s.registrations.putIfAbsent(reg.UserID, *reg) {
		return common.ErrAlreadyRegistered
	}
	return nil
}

func (s *MemoryStore) GetRegistration(ctx context.Context, userID string) (*models.Registration, error) {
	reg, ok := s.registrations.get(userID)
	if !ok {
		return nil, common.ErrUserNotFound
	}
	return &reg, nil
}

func (s *MemoryStore) PutChallenge(ctx context.Context, ch *models.Challenge) error {
	s.challenges.put(ch.AuthID, *ch)
	return nil
}

func (s *MemoryStore) TakeChallenge(ctx context.Context, authID string) (*models.Challenge, error) {
	ch, ok := s.challenges.take(authID)
	if !ok || ch.Expired(s.now()) {
		return nil, common.ErrChallengeNotFound
	}
	return &ch, nil
}

func (s *MemoryStore) PutSession(ctx context.Context, sess *models.Session) error {
	s.sessions.put(sess.ID, *sess)
	return nil
}

func (s *MemoryStore) GetSession(ctx context.Context, id string) (*models.Session, error) {
	sess, ok := s.sessions.get(id)
	if !ok {
		return nil, common.ErrSessionNotFound
	}
	if sess.Expired(s.now()) {
		s.sessions.delete(id)
		return nil, common.ErrSessionNotFound
	}
	return &sess, nil
}

// Sweep drops every expired challenge and session and returns how many
// entries it removed. The app runs it periodically so abandoned rounds do
// not accumulate.
func (s *MemoryStore) Sweep(now time.Time) int {
	removed := s.challenges.sweep(func(ch models.Challenge) bool { return ch.Expired(now) })
	removed += s.sessions.sweep(func(sess models.Session) bool { return sess.Expired(now) })
	return removed
}

// Counts reports how many registrations, challenges and sessions are
// currently held.
func (s *MemoryStore) Counts() (registrations, challenges, sessions int) {
	return s.registrations.len(), s.challenges.len(), s.sessions.len()
}
