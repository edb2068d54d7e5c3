package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/arbitragevault/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewStore(db)
}

func strPtr(s string) *string { return &s }

func sampleSearch(owner string) *domain.SavedSearch {
	roi := 45.2
	return &domain.SavedSearch{
		OwnerUID: owner,
		Name:     "vintage botany guides",
		Source:   domain.SourceNicheProduct,
		Products: []domain.DisplayableProduct{
			{
				ASIN:       "B09NICHE01",
				Title:      strPtr("Vintage Botany Field Guide"),
				Source:     domain.SourceNicheProduct,
				ROIPercent: &roi,
			},
			{
				ASIN:   "B09NICHE02",
				Source: domain.SourceNicheProduct,
			},
		},
	}
}

func TestStore_CreateAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	search := sampleSearch("uid-123")
	require.NoError(t, store.Create(ctx, search))
	assert.NotEmpty(t, search.ID, "Create should assign a UUID")

	got, err := store.GetByID(ctx, search.ID)
	require.NoError(t, err)

	assert.Equal(t, "uid-123", got.OwnerUID)
	assert.Equal(t, "vintage botany guides", got.Name)
	assert.Equal(t, domain.SourceNicheProduct, got.Source)
	require.Len(t, got.Products, 2)
	assert.Equal(t, "B09NICHE01", got.Products[0].ASIN)
	require.NotNil(t, got.Products[0].ROIPercent)
	assert.Equal(t, 45.2, *got.Products[0].ROIPercent)
	// Second product had no ROI; it must come back absent, not zero.
	assert.Nil(t, got.Products[1].ROIPercent)
}

func TestStore_GetMissing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetByID(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_CreateValidation(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.Create(ctx, &domain.SavedSearch{Name: "no owner"})
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)

	err = store.Create(ctx, &domain.SavedSearch{OwnerUID: "uid-123"})
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestStore_ListByOwner(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		s := sampleSearch("uid-abc")
		require.NoError(t, store.Create(ctx, s))
	}
	require.NoError(t, store.Create(ctx, sampleSearch("uid-other")))

	searches, total, err := store.ListByOwner(ctx, "uid-abc", 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, searches, 2)

	searches, total, err = store.ListByOwner(ctx, "uid-abc", 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, searches, 1)

	searches, total, err = store.ListByOwner(ctx, "uid-none", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.Empty(t, searches)
}

func TestStore_Delete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	search := sampleSearch("uid-123")
	require.NoError(t, store.Create(ctx, search))

	// Wrong owner cannot delete.
	deleted, err := store.Delete(ctx, search.ID, "uid-intruder")
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = store.Delete(ctx, search.ID, "uid-123")
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = store.GetByID(ctx, search.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
