package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"link-in-bio/pkg/logging"
	"link-in-bio/pkg/middleware"
	"link-in-bio/pkg/storage"
	"link-in-bio/pkg/validate"
)

// ErrNotAuthenticated is returned when a mutation runs without a caller
// identity in the context. Gated procedures should make this unreachable.
var ErrNotAuthenticated = errors.New("caller identity not found in context")

// LinkService adds domain policy (timestamps, ownership, search) on top of
// the store. It never touches the collection directly; every mutation goes
// through the store so its validation cannot be bypassed.
type LinkService struct {
	store  storage.LinkStore
	logger *logging.Logger
}

func NewLinkService(store storage.LinkStore, logger *logging.Logger) *LinkService {
	return &LinkService{store: store, logger: logger}
}

func (s *LinkService) GetAll(ctx context.Context) ([]storage.Link, error) {
	return s.store.GetAll(ctx)
}

func (s *LinkService) GetByID(ctx context.Context, id string) (*storage.Link, error) {
	return s.store.GetByID(ctx, id)
}

// Create stamps both timestamps and the owning caller onto the record
// before handing it to the store. The store still validates title/url.
func (s *LinkService) Create(ctx context.Context, in validate.CreateLinkInput) (*storage.Link, error) {
	ownerID := middleware.CallerID(ctx)
	if ownerID == "" {
		return nil, ErrNotAuthenticated
	}

	now := time.Now().UTC()
	link, err := s.store.Create(ctx, storage.CreateLinkData{
		OwnerID:     ownerID,
		Title:       in.Title,
		URL:         in.URL,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.LogLinkOperation(ctx, "create", link.ID, true)
	return link, nil
}

// Update stamps a fresh UpdatedAt and enforces ownership: a record owned by
// another caller is reported as not found rather than forbidden, so the
// procedure surface does not leak which ids exist.
func (s *LinkService) Update(ctx context.Context, in validate.UpdateLinkInput) (*storage.Link, error) {
	ownerID := middleware.CallerID(ctx)
	if ownerID == "" {
		return nil, ErrNotAuthenticated
	}
	if err := validate.UpdateLink(in); err != nil {
		return nil, err
	}

	existing, err := s.store.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil || existing.OwnerID != ownerID {
		return nil, nil
	}

	link, err := s.store.Update(ctx, storage.UpdateLinkData{
		ID:          in.ID,
		Title:       in.Title,
		URL:         in.URL,
		Description: in.Description,
		UpdatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	if link != nil {
		s.logger.LogLinkOperation(ctx, "update", link.ID, true)
	}
	return link, nil
}

// Delete enforces the same ownership rule as Update and returns the
// removed record.
func (s *LinkService) Delete(ctx context.Context, id string) (*storage.Link, error) {
	ownerID := middleware.CallerID(ctx)
	if ownerID == "" {
		return nil, ErrNotAuthenticated
	}
	if err := validate.LinkID(id); err != nil {
		return nil, err
	}

	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil || existing.OwnerID != ownerID {
		return nil, nil
	}

	link, err := s.store.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if link != nil {
		s.logger.LogLinkOperation(ctx, "delete", link.ID, true)
	}
	return link, nil
}

// Search matches the query case-insensitively against title, url and
// description. An empty query returns the whole collection unfiltered.
func (s *LinkService) Search(ctx context.Context, query string) ([]storage.Link, error) {
	links, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return links, nil
	}

	q := strings.ToLower(query)
	matched := make([]storage.Link, 0, len(links))
	for _, link := range links {
		if strings.Contains(strings.ToLower(link.Title), q) ||
			strings.Contains(strings.ToLower(link.URL), q) ||
			strings.Contains(strings.ToLower(link.Description), q) {
			matched = append(matched, link)
		}
	}
	return matched, nil
}

// ByOwner filters the collection down to one owner's links.
func (s *LinkService) ByOwner(ctx context.Context, ownerID string) ([]storage.Link, error) {
	links, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	owned := make([]storage.Link, 0, len(links))
	for _, link := range links {
		if link.OwnerID == ownerID {
			owned = append(owned, link)
		}
	}
	return owned, nil
}
