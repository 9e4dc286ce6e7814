package challenges

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/zkauth/internal/common"
)

// InMemoryRepository is a mutex-guarded map of pending sessions.
//
// Sessions that are never verified stay here until PurgeOlderThan removes
// them; without a sweeper the map grows with every abandoned attempt.
type InMemoryRepository struct {
	mu       sync.Mutex
	sessions map[string]Session
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{sessions: make(map[string]Session)}
}

func (r *InMemoryRepository) Put(ctx context.Context, s *Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[s.ID]; ok {
		return common.ErrDuplicateChallengeID
	}
	r.sessions[s.ID] = *s
	return nil
}

func (r *InMemoryRepository) TakeAndRemove(ctx context.Context, id string) (*Session, error) {
	r.mu.Lock()
	s, ok := r.sessions[id]
	if ok {
		delete(r.sessions, id)
	}
	r.mu.Unlock()

	if !ok {
		return nil, common.ErrorNotFound
	}
	return &s, nil
}

func (r *InMemoryRepository) PurgeOlderThan(ctx context.Context, t time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for id, s := range r.sessions {
		if s.CreatedAt.Before(t) {
			delete(r.sessions, id)
			n++
		}
	}
	return n, nil
}

func (r *InMemoryRepository) Len(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions), nil
}
