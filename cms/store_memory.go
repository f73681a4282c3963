package cms

import (
	"context"
	"sync"

	"github.com/wcc-platform/contentschema/page"
)

// MemoryStore is an in-process Repository.
type MemoryStore struct {
	mu    sync.RWMutex
	pages map[page.Type][]byte
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{pages: make(map[page.Type][]byte)}
}

func (s *MemoryStore) FindByID(_ context.Context, t page.Type) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.pages[t]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), b...), nil
}

func (s *MemoryStore) Save(_ context.Context, t page.Type, content []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pages[t] = append([]byte(nil), content...)
	return nil
}
