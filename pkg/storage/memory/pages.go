package memory

import (
	"context"
	"strings"
	"sync"

	"link-in-bio/pkg/storage"
)

// PageStore holds the read-mostly page/profile records.
type PageStore struct {
	mu    sync.RWMutex
	pages []storage.Page
}

func NewPageStore(seed []storage.Page) *PageStore {
	pages := make([]storage.Page, len(seed))
	copy(pages, seed)
	return &PageStore{pages: pages}
}

func (s *PageStore) GetAll(ctx context.Context) ([]storage.Page, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]storage.Page, len(s.pages))
	copy(out, s.pages)
	return out, nil
}

func (s *PageStore) GetByID(ctx context.Context, id string) (*storage.Page, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.pages {
		if s.pages[i].ID == id {
			page := s.pages[i]
			return &page, nil
		}
	}
	return nil, nil
}

func (s *PageStore) GetByUsername(ctx context.Context, username string) (*storage.Page, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.pages {
		if strings.EqualFold(s.pages[i].Username, username) {
			page := s.pages[i]
			return &page, nil
		}
	}
	return nil, nil
}
