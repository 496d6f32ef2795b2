package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mercadoverde/storefront/config"
)

func init() {
	config.StoragePublicBase = "https://cdn.example.com"
}

func intPtr(v int) *int          { return &v }
func int64Ptr(v int64) *int64    { return &v }
func strPtr(v string) *string    { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestMergeImageListingsEnrichesFromRows(t *testing.T) {
	uploaded := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	created := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	objects := []StorageObject{
		{Key: "products/1/a.jpg", Size: 1000, Uploaded: uploaded},
	}
	rows := []ImageRow{
		{ID: 7, Key: "products/1/a.jpg", Alt: strPtr("front"), IsCover: true,
			SortOrder: intPtr(3), Width: intPtr(800), Height: intPtr(600), CreatedAt: created},
	}

	items := MergeImageListings(objects, rows)
	require.Len(t, items, 1)

	item := items[0]
	require.NotNil(t, item.ID)
	assert.Equal(t, uint(7), *item.ID)
	assert.Equal(t, "https://cdn.example.com/products/1/a.jpg", item.URL)
	assert.Equal(t, "front", *item.Alt)
	assert.True(t, item.IsCover)
	assert.Equal(t, 3, *item.SortOrder)
	// row has no size of its own; the listing's size stands
	assert.Equal(t, int64(1000), *item.Size)
	assert.Equal(t, created, *item.CreatedAt)
}

func TestMergeImageListingsAppendsOrphanRows(t *testing.T) {
	objects := []StorageObject{
		{Key: "categories/2/live.jpg", Size: 500},
	}
	rows := []ImageRow{
		{ID: 1, Key: "categories/2/live.jpg"},
		{ID: 2, Key: "categories/2/deleted.jpg", SortOrder: intPtr(0)},
	}

	items := MergeImageListings(objects, rows)
	require.Len(t, items, 2)

	keys := []string{items[0].Key, items[1].Key}
	assert.Contains(t, keys, "categories/2/live.jpg")
	assert.Contains(t, keys, "categories/2/deleted.jpg")
}

func TestMergeImageListingsSortsByOrderThenCreation(t *testing.T) {
	t1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	objects := []StorageObject{
		{Key: "k/late.jpg", Size: 1, Uploaded: t2},
		{Key: "k/early.jpg", Size: 1, Uploaded: t1},
		{Key: "k/first.jpg", Size: 1, Uploaded: t2},
	}
	rows := []ImageRow{
		{ID: 1, Key: "k/first.jpg", SortOrder: intPtr(0), CreatedAt: t1},
		// no sort order: takes its listing position, ties break on time
		{ID: 2, Key: "k/late.jpg", CreatedAt: t2},
		{ID: 3, Key: "k/early.jpg", CreatedAt: t1},
	}

	items := MergeImageListings(objects, rows)
	require.Len(t, items, 3)
	assert.Equal(t, "k/first.jpg", items[0].Key)
	assert.Equal(t, "k/late.jpg", items[1].Key)
	assert.Equal(t, "k/early.jpg", items[2].Key)
}

func TestMergeImageListingsMissingOrderSinksLast(t *testing.T) {
	objects := []StorageObject{}
	rows := []ImageRow{
		{ID: 1, Key: "k/unordered.jpg"},
		{ID: 2, Key: "k/ordered.jpg", SortOrder: intPtr(5)},
	}

	items := MergeImageListings(objects, rows)
	require.Len(t, items, 2)
	assert.Equal(t, "k/ordered.jpg", items[0].Key)
	assert.Equal(t, "k/unordered.jpg", items[1].Key)
}

func TestMergeImageListingsDefaultCover(t *testing.T) {
	objects := []StorageObject{
		{Key: "k/a.jpg", Size: 1},
		{Key: "k/b.jpg", Size: 1},
	}

	// no rows claim cover: first listing entry is the cover
	items := MergeImageListings(objects, nil)
	require.Len(t, items, 2)
	assert.True(t, items[0].IsCover)
	assert.False(t, items[1].IsCover)

	// a row explicitly un-claims cover on the first object
	rows := []ImageRow{{ID: 1, Key: "k/a.jpg", IsCover: false}, {ID: 2, Key: "k/b.jpg", IsCover: true}}
	items = MergeImageListings(objects, rows)
	require.Len(t, items, 2)
	assert.False(t, items[0].IsCover)
	assert.True(t, items[1].IsCover)
}

func TestMergeImageListingsEmptyInputs(t *testing.T) {
	assert.Empty(t, MergeImageListings(nil, nil))
}
