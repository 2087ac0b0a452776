package store

import (
	"context"
	"sync"

	"memberreg/pkg/domain"
	"memberreg/pkg/platform/sentinel"
)

// ErrNotFound is returned when a draft does not exist.
var ErrNotFound = sentinel.ErrNotFound

// InMemoryDraftStore keeps drafts for the lifetime of the process. Drafts are
// never persisted.
type InMemoryDraftStore struct {
	mu     sync.RWMutex
	drafts map[domain.DraftID]*Draft
}

func NewInMemoryDraftStore() *InMemoryDraftStore {
	return &InMemoryDraftStore{drafts: make(map[domain.DraftID]*Draft)}
}

func (s *InMemoryDraftStore) Save(_ context.Context, draft *Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[draft.ID] = draft
	return nil
}

func (s *InMemoryDraftStore) FindByID(_ context.Context, id domain.DraftID) (*Draft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if d, ok := s.drafts[id]; ok {
		return d, nil
	}
	return nil, ErrNotFound
}

func (s *InMemoryDraftStore) Delete(_ context.Context, id domain.DraftID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.drafts[id]; !ok {
		return ErrNotFound
	}
	delete(s.drafts, id)
	return nil
}

func (s *InMemoryDraftStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.drafts), nil
}
