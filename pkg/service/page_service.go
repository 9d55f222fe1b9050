package service

import (
	"context"

	"link-in-bio/pkg/cache"
	"link-in-bio/pkg/logging"
	"link-in-bio/pkg/storage"
)

// PageService serves the read-mostly profile pages, layering live view
// counts from the counter on top of the seeded totals.
type PageService struct {
	store  storage.PageStore
	views  cache.ViewCounter
	logger *logging.Logger
}

func NewPageService(store storage.PageStore, views cache.ViewCounter, logger *logging.Logger) *PageService {
	return &PageService{store: store, views: views, logger: logger}
}

func (s *PageService) GetAll(ctx context.Context) ([]storage.Page, error) {
	pages, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range pages {
		delta, err := s.views.Count(ctx, pages[i].ID)
		if err != nil {
			s.logger.Warn(ctx, "view counter unavailable", "page_id", pages[i].ID, "error", err)
			continue
		}
		pages[i].Views += delta
	}
	return pages, nil
}

// View resolves a public profile by username and records the visit.
// (nil, nil) when no such profile exists.
func (s *PageService) View(ctx context.Context, username string) (*storage.Page, error) {
	page, err := s.store.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, nil
	}

	delta, err := s.views.Increment(ctx, page.ID)
	if err != nil {
		// A dead counter should not take down the public page.
		s.logger.Warn(ctx, "view counter unavailable", "page_id", page.ID, "error", err)
		return page, nil
	}
	page.Views += delta
	return page, nil
}
