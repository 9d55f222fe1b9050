package storage

import (
	"context"
	"time"
)

// CreateLinkData is the full record-to-be handed to a LinkStore: the caller's
// fields plus the owner and timestamps the service layer stamps on.
type CreateLinkData struct {
	OwnerID     string
	Title       string
	URL         string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// UpdateLinkData carries a partial update: nil pointers mean "leave as is".
type UpdateLinkData struct {
	ID          string
	Title       *string
	URL         *string
	Description *string
	UpdatedAt   time.Time
}

// LinkStore is the single write path to the link collection. Lookups that
// find nothing return (nil, nil); errors are reserved for invalid input and
// infrastructure failures, so callers can tell a missing record from a
// malformed request.
type LinkStore interface {
	GetAll(ctx context.Context) ([]Link, error)
	GetByID(ctx context.Context, id string) (*Link, error)
	Create(ctx context.Context, data CreateLinkData) (*Link, error)
	Update(ctx context.Context, data UpdateLinkData) (*Link, error)
	Delete(ctx context.Context, id string) (*Link, error)
}

type PageStore interface {
	GetAll(ctx context.Context) ([]Page, error)
	GetByID(ctx context.Context, id string) (*Page, error)
	GetByUsername(ctx context.Context, username string) (*Page, error)
}

type UserStore interface {
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}
