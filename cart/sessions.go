package cart

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type session struct {
	store    *Store
	lastSeen time.Time
}

// Sessions maps browser session ids to their carts. Nothing is persisted:
// a session that stays idle longer than the timeout is dropped.
type Sessions struct {
	mu       sync.Mutex
	sessions map[string]*session
	idle     time.Duration
	now      func() time.Time
	log      *zap.Logger
}

func NewSessions(idle time.Duration, log *zap.Logger) *Sessions {
	return &Sessions{
		sessions: make(map[string]*session),
		idle:     idle,
		now:      time.Now,
		log:      log,
	}
}

// Get returns the session's cart, creating an empty one on first use.
func (s *Sessions) Get(id string) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		sess = &session{store: NewStore()}
		s.sessions[id] = sess
	}
	sess.lastSeen = s.now()
	return sess.store
}

// Len is the number of live sessions.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep drops sessions idle for longer than the timeout and reports how many.
func (s *Sessions) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.idle)
	n := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

// Run sweeps on every interval until ctx is done.
func (s *Sessions) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				s.log.Info("expired idle carts", zap.Int("count", n), zap.Int("live", s.Len()))
			}
		}
	}
}
