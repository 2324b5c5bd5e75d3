// Package session provides the in-memory per-session conversation store.
// Each chat session owns an isolated transcript keyed by session ID, so
// simultaneous users never see each other's conversations.
package session

import (
	"context"
	"sync"
	"time"

	"tcmshop_backend/internal/chat/domain"
	"tcmshop_backend/platform/apperr"

	"github.com/google/uuid"
)

type entry struct {
	turns     []domain.Turn
	createdAt time.Time
	touchedAt time.Time
}

// Store holds chat sessions in memory. All operations are safe for
// concurrent use; a single mutex is sufficient at storefront-widget scale.
type Store struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*entry
	ttl      time.Duration
	now      func() time.Time
}

// NewStore creates a session store. Sessions idle longer than ttl are
// removed by the janitor.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[uuid.UUID]*entry),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create starts a new empty session and returns its ID.
func (s *Store) Create() uuid.UUID {
	id := uuid.New()
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = &entry{createdAt: now, touchedAt: now}
	return id
}

// Append adds turns to a session's transcript.
func (s *Store) Append(id uuid.UUID, turns ...domain.Turn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return apperr.NotFound("Chat session not found")
	}
	now := s.now()
	for i := range turns {
		if turns[i].At.IsZero() {
			turns[i].At = now
		}
	}
	e.turns = append(e.turns, turns...)
	e.touchedAt = now
	return nil
}

// Transcript returns a copy of the session's turns in order.
func (s *Store) Transcript(id uuid.UUID) ([]domain.Turn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return nil, apperr.NotFound("Chat session not found")
	}
	e.touchedAt = s.now()
	return append([]domain.Turn(nil), e.turns...), nil
}

// Clear resets a session's transcript without ending the session.
func (s *Store) Clear(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return apperr.NotFound("Chat session not found")
	}
	e.turns = nil
	e.touchedAt = s.now()
	return nil
}

// Exists reports whether a session is present.
func (s *Store) Exists(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[id]
	return ok
}

// StartJanitor prunes idle sessions until ctx is cancelled.
func (s *Store) StartJanitor(ctx context.Context, every time.Duration) {
	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.prune()
			}
		}
	}()
}

func (s *Store) prune() {
	cutoff := s.now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, e := range s.sessions {
		if e.touchedAt.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}
