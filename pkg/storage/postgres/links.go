package postgres

import (
	"context"
	"errors"

	"link-in-bio/pkg/storage"
	"link-in-bio/pkg/validate"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LinkStore satisfies the same contract as the memory store against a
// Postgres table. Validation still runs before any SQL, so the invalid-
// input guarantee does not depend on table constraints.
type LinkStore struct {
	pool *pgxpool.Pool
}

func NewLinkStore(pool *pgxpool.Pool) *LinkStore {
	return &LinkStore{pool: pool}
}

const linkColumns = `id, owner_id, title, url, description, created_at, updated_at`

func (s *LinkStore) GetAll(ctx context.Context) ([]storage.Link, error) {
	query := `SELECT ` + linkColumns + ` FROM links ORDER BY created_at, id`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []storage.Link
	for rows.Next() {
		var link storage.Link
		if err := rows.Scan(&link.ID, &link.OwnerID, &link.Title, &link.URL, &link.Description, &link.CreatedAt, &link.UpdatedAt); err != nil {
			return nil, err
		}
		links = append(links, link)
	}
	return links, rows.Err()
}

func (s *LinkStore) GetByID(ctx context.Context, id string) (*storage.Link, error) {
	if err := validate.LinkID(id); err != nil {
		return nil, err
	}

	query := `SELECT ` + linkColumns + ` FROM links WHERE id = $1`
	row := s.pool.QueryRow(ctx, query, id)
	var link storage.Link
	err := row.Scan(&link.ID, &link.OwnerID, &link.Title, &link.URL, &link.Description, &link.CreatedAt, &link.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &link, nil
}

func (s *LinkStore) Create(ctx context.Context, data storage.CreateLinkData) (*storage.Link, error) {
	if err := validate.CreateLink(validate.CreateLinkInput{
		Title:       data.Title,
		URL:         data.URL,
		Description: data.Description,
	}); err != nil {
		return nil, err
	}

	link := storage.Link{
		ID:          uuid.NewString(),
		OwnerID:     data.OwnerID,
		Title:       data.Title,
		URL:         data.URL,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
	query := `INSERT INTO links (` + linkColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := s.pool.Exec(ctx, query, link.ID, link.OwnerID, link.Title, link.URL, link.Description, link.CreatedAt, link.UpdatedAt)
	if err != nil {
		return nil, err
	}
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

	query := `UPDATE links
		SET title = COALESCE($2, title),
		    url = COALESCE($3, url),
		    description = COALESCE($4, description),
		    updated_at = $5
		WHERE id = $1
		RETURNING ` + linkColumns
	row := s.pool.QueryRow(ctx, query, data.ID, data.Title, data.URL, data.Description, data.UpdatedAt)
	var link storage.Link
	err := row.Scan(&link.ID, &link.OwnerID, &link.Title, &link.URL, &link.Description, &link.CreatedAt, &link.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &link, nil
}

func (s *LinkStore) Delete(ctx context.Context, id string) (*storage.Link, error) {
	if err := validate.LinkID(id); err != nil {
		return nil, err
	}

	query := `DELETE FROM links WHERE id = $1 RETURNING ` + linkColumns
	row := s.pool.QueryRow(ctx, query, id)
	var link storage.Link
	err := row.Scan(&link.ID, &link.OwnerID, &link.Title, &link.URL, &link.Description, &link.CreatedAt, &link.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &link, nil
}
