package memory

import (
	"context"
	"strings"
	"testing"
	"time"

	"link-in-bio/pkg/storage"
	"link-in-bio/pkg/validate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedLinks() []storage.Link {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []storage.Link{
		{ID: "1", OwnerID: "u1", Title: "Google", URL: "https://google.com", CreatedAt: now, UpdatedAt: now},
		{ID: "2", OwnerID: "u1", Title: "GitHub", URL: "https://github.com", Description: "code", CreatedAt: now, UpdatedAt: now},
	}
}

func createData(title, url string) storage.CreateLinkData {
	now := time.Now().UTC()
	return storage.CreateLinkData{
		OwnerID:   "u1",
		Title:     title,
		URL:       url,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestCreateAssignsNextID(t *testing.T) {
	store := NewLinkStore(seedLinks())
	ctx := context.Background()

	link, err := store.Create(ctx, createData("My Site", "https://example.com"))
	require.NoError(t, err)
	assert.Equal(t, "3", link.ID)

	got, err := store.GetByID(ctx, "3")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "My Site", got.Title)
	assert.Equal(t, "https://example.com", got.URL)
}

func TestCreateRejectsInvalidInputWithoutMutation(t *testing.T) {
	store := NewLinkStore(seedLinks())
	ctx := context.Background()

	tests := []struct {
		name      string
		data      storage.CreateLinkData
		wantField string
	}{
		{"empty title", createData("", "https://example.com"), "title"},
		{"oversized title", createData(strings.Repeat("x", 101), "https://example.com"), "title"},
		{"malformed url", createData("ok", "not a url"), "url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.Create(ctx, tt.data)
			require.Error(t, err)

			var verr *validate.Error
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tt.wantField)

			all, err := store.GetAll(ctx)
			require.NoError(t, err)
			assert.Len(t, all, 2, "collection must be unchanged after rejected create")
		})
	}
}

func TestGetByIDDistinguishesMissingFromInvalid(t *testing.T) {
	store := NewLinkStore(seedLinks())
	ctx := context.Background()

	link, err := store.GetByID(ctx, "999")
	require.NoError(t, err)
	assert.Nil(t, link, "missing record is not an error")

	_, err = store.GetByID(ctx, "")
	var verr *validate.Error
	require.ErrorAs(t, err, &verr)
}

func TestUpdateMergesOnlySuppliedFields(t *testing.T) {
	store := NewLinkStore(seedLinks())
	ctx := context.Background()

	title := "New"
	stamp := time.Now().UTC()
	updated, err := store.Update(ctx, storage.UpdateLinkData{ID: "2", Title: &title, UpdatedAt: stamp})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, "https://github.com", updated.URL)
	assert.Equal(t, "code", updated.Description)
	assert.Equal(t, stamp, updated.UpdatedAt)
}

func TestUpdateMissingReturnsNil(t *testing.T) {
	store := NewLinkStore(seedLinks())
	title := "New"

	updated, err := store.Update(context.Background(), storage.UpdateLinkData{ID: "999", Title: &title})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestUpdateRejectsInvalidFields(t *testing.T) {
	store := NewLinkStore(seedLinks())
	bad := "not a url"

	_, err := store.Update(context.Background(), storage.UpdateLinkData{ID: "1", URL: &bad})
	var verr *validate.Error
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "url")

	got, err := store.GetByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "https://google.com", got.URL, "rejected update must not touch the record")
}

func TestDeleteRemovesAndIsIdempotentInEffect(t *testing.T) {
	store := NewLinkStore(seedLinks())
	ctx := context.Background()

	removed, err := store.Delete(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, removed)
	assert.Equal(t, "Google", removed.Title)

	all, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "2", all[0].ID)

	again, err := store.Delete(ctx, "1")
	require.NoError(t, err)
	assert.Nil(t, again, "second delete finds nothing")
}

func TestGetAllPreservesInsertionOrder(t *testing.T) {
	store := NewLinkStore(seedLinks())
	ctx := context.Background()

	_, err := store.Create(ctx, createData("Third", "https://third.example.com"))
	require.NoError(t, err)

	all, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"1", "2", "3"}, []string{all[0].ID, all[1].ID, all[2].ID})
}

func TestSeedIsDeepCopied(t *testing.T) {
	seed := seedLinks()
	store := NewLinkStore(seed)

	_, err := store.Delete(context.Background(), "1")
	require.NoError(t, err)

	assert.Equal(t, "1", seed[0].ID, "mutations must not reach the fixture slice")
	assert.Len(t, seed, 2)
}

func TestNextIDSkipsNonNumericIDs(t *testing.T) {
	store := NewLinkStore([]storage.Link{
		{ID: "7", Title: "A", URL: "https://a.example.com"},
		{ID: "abc", Title: "B", URL: "https://b.example.com"},
	})

	link, err := store.Create(context.Background(), createData("C", "https://c.example.com"))
	require.NoError(t, err)
	assert.Equal(t, "8", link.ID)
}
