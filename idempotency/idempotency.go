// Package idempotency provides a process-local, time-windowed store of
// recently seen submission tokens, used to suppress accidental duplicate
// contact-form posts from a single browser session. It is best effort: a
// restart clears it and instances do not share state.
package idempotency

import (
	"sync"
	"time"
)

// DefaultTTL is how long a token keeps suppressing duplicates.
const DefaultTTL = 15 * time.Second

// Store remembers the first sighting of each token for a TTL window.
// Expired entries are pruned lazily on every call, so the resident size
// is bounded by the request rate within one window.
type Store struct {
	mu    sync.Mutex
	seen  map[string]time.Time
	ttl   time.Duration
	clock func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the time source, so tests can move the clock.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) {
		s.clock = clock
	}
}

// WithTTL overrides the deduplication window.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// New creates an empty Store with the default 15s window.
func New(opts ...Option) *Store {
	s := &Store{
		seen:  make(map[string]time.Time),
		ttl:   DefaultTTL,
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SeenOrRecord reports whether key was already recorded within the TTL
// window. On the first sighting it records the key and returns false; the
// caller should then go ahead with the side-effecting action. The sweep,
// membership test and insert happen under one lock, so two concurrent
// calls with the same key cannot both observe "not seen".
func (s *Store) SeenOrRecord(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock()
	for k, firstSeen := range s.seen {
		if now.Sub(firstSeen) > s.ttl {
			delete(s.seen, k)
		}
	}
	if _, ok := s.seen[key]; ok {
		return true
	}
	s.seen[key] = now
	return false
}

// Len returns the number of resident entries, expired or not.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.seen)
}
