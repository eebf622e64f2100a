package memory

import (
	"context"
	"sync"

	"primer/pkg/domain"
)

// Store implements ports.StateStore in memory. Safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	data map[string]*domain.State
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{data: make(map[string]*domain.State)}
}

// Save persists a copy of the state so callers cannot mutate stored data.
func (s *Store) Save(ctx context.Context, sessionID string, state *domain.State) error {
	copied := cloneState(state)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sessionID] = copied
	return nil
}

// Load retrieves a copy of the stored state.
func (s *Store) Load(ctx context.Context, sessionID string) (*domain.State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.data[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return cloneState(state), nil
}

// Delete removes the session.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
	return nil
}

// List returns all known session IDs.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	return ids, nil
}

func cloneState(state *domain.State) *domain.State {
	copied := *state
	copied.History = append([]string(nil), state.History...)
	copied.Context = make(map[string]any, len(state.Context))
	for k, v := range state.Context {
		copied.Context[k] = v
	}
	return &copied
}
