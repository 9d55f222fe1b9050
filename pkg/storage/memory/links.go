package memory

import (
	"context"
	"strconv"
	"sync"

	"link-in-bio/pkg/storage"
	"link-in-bio/pkg/validate"
)

// LinkStore keeps the link collection in a slice it exclusively owns.
// Every mutation validates its input first, so the collection never holds
// an invalid record. The mutex is required because net/http serves
// requests concurrently.
type LinkStore struct {
	mu    sync.Mutex
	links []storage.Link
}

// NewLinkStore seeds the store with a copy of the given records, so the
// caller's slice (typically the decoded fixture) is never mutated.
func NewLinkStore(seed []storage.Link) *LinkStore {
	links := make([]storage.Link, len(seed))
	copy(links, seed)
	return &LinkStore{links: links}
}

func (s *LinkStore) GetAll(ctx context.Context) ([]storage.Link, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]storage.Link, len(s.links))
	copy(out, s.links)
	return out, nil
}

func (s *LinkStore) GetByID(ctx context.Context, id string) (*storage.Link, error) {
	if err := validate.LinkID(id); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.links {
		if s.links[i].ID == id {
			link := s.links[i]
			return &link, nil
		}
	}
	return nil, nil
}

func (s *LinkStore) Create(ctx context.Context, data storage.CreateLinkData) (*storage.Link, error) {
	if err := validate.CreateLink(validate.CreateLinkInput{
		Title:       data.Title,
		URL:         data.URL,
		Description: data.Description,
	}); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	link := storage.Link{
		ID:          s.nextID(),
		OwnerID:     data.OwnerID,
		Title:       data.Title,
		URL:         data.URL,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
	s.links = append(s.links, link)
	return &link, nil
}

func (s *LinkStore) Update(ctx context.Context, data storage.UpdateLinkData) (*storage.Link, error) {
	if err := validate.UpdateLink(validate.UpdateLinkInput{
		ID:          data.ID,
		Title:       data.Title,
		URL:         data.URL,
		Description: data.Description,
	}); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.links {
		if s.links[i].ID != data.ID {
			continue
		}
		if data.Title != nil {
			s.links[i].Title = *data.Title
		}
		if data.URL != nil {
			s.links[i].URL = *data.URL
		}
		if data.Description != nil {
			s.links[i].Description = *data.Description
		}
		s.links[i].UpdatedAt = data.UpdatedAt
		link := s.links[i]
		return &link, nil
	}
	return nil, nil
}

func (s *LinkStore) Delete(ctx context.Context, id string) (*storage.Link, error) {
	if err := validate.LinkID(id); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.links {
		if s.links[i].ID != id {
			continue
		}
		removed := s.links[i]
		s.links = append(s.links[:i], s.links[i+1:]...)
		return &removed, nil
	}
	return nil, nil
}

// nextID assigns the successor of the highest numeric id in the collection,
// so a store seeded with "1" hands out "2". Non-numeric ids are skipped in
// the scan; uniqueness still holds. Caller must hold the mutex.
func (s *LinkStore) nextID() string {
	var max int64
	for i := range s.links {
		n, err := strconv.ParseInt(s.links[i].ID, 10, 64)
		if err == nil && n > max {
			max = n
		}
	}
	return strconv.FormatInt(max+1, 10)
}
