package utils

import (
	"sort"
	"time"
)

// ImageRow is the database side of an image: metadata keyed by storage key
type ImageRow struct {
	ID        uint
	Key       string
	Alt       *string
	IsCover   bool
	SortOrder *int
	Size      *int64
	Width     *int
	Height    *int
	CreatedAt time.Time
}

// ImageItem is one entry of the unified listing served to the admin UI
type ImageItem struct {
	ID        *uint      `json:"id"`
	Key       string     `json:"key"`
	URL       string     `json:"url"`
	Alt       *string    `json:"alt"`
	IsCover   bool       `json:"is_cover"`
	SortOrder *int       `json:"sort_order"`
	Size      *int64     `json:"size"`
	Width     *int       `json:"width"`
	Height    *int       `json:"height"`
	CreatedAt *time.Time `json:"created_at"`
}

// missing sort orders sink below any explicit one
const sortOrderSentinel = 999999

// MergeImageListings reconciles a storage listing with the image rows the
// database holds for the same prefix. Storage is authoritative for what
// exists; rows enrich matching objects, and rows whose object is gone are
// still appended so nothing silently disappears while the two sides catch
// up. Result is ordered by explicit sort order, then creation time.
// The first storage object defaults to cover when no row claims it.
func MergeImageListings(objects []StorageObject, rows []ImageRow) []ImageItem {
	byKey := make(map[string]*ImageRow, len(rows))
	for i := range rows {
		byKey[rows[i].Key] = &rows[i]
	}

	items := make([]ImageItem, 0, len(objects)+len(rows))
	seen := make(map[string]bool, len(objects))

	for i, obj := range objects {
		seen[obj.Key] = true
		item := ImageItem{
			Key:     obj.Key,
			URL:     PublicURL(obj.Key),
			IsCover: i == 0,
		}
		size := obj.Size
		item.Size = &size
		if !obj.Uploaded.IsZero() {
			uploaded := obj.Uploaded
			item.CreatedAt = &uploaded
		}
		if row := byKey[obj.Key]; row != nil {
			id := row.ID
			item.ID = &id
			item.Alt = row.Alt
			item.IsCover = row.IsCover
			item.SortOrder = row.SortOrder
			if row.Size != nil {
				item.Size = row.Size
			}
			item.Width = row.Width
			item.Height = row.Height
			if !row.CreatedAt.IsZero() {
				createdAt := row.CreatedAt
				item.CreatedAt = &createdAt
			}
		}
		// listing position stands in for a missing explicit order
		if item.SortOrder == nil {
			order := i
			item.SortOrder = &order
		}
		items = append(items, item)
	}

	// rows whose object is missing from storage
	for i := range rows {
		row := &rows[i]
		if seen[row.Key] {
			continue
		}
		item := ImageItem{
			Key:       row.Key,
			URL:       PublicURL(row.Key),
			Alt:       row.Alt,
			IsCover:   row.IsCover,
			SortOrder: row.SortOrder,
			Size:      row.Size,
			Width:     row.Width,
			Height:    row.Height,
		}
		id := row.ID
		item.ID = &id
		if !row.CreatedAt.IsZero() {
			createdAt := row.CreatedAt
			item.CreatedAt = &createdAt
		}
		items = append(items, item)
	}

	sort.SliceStable(items, func(a, b int) bool {
		soA, soB := sortOrderSentinel, sortOrderSentinel
		if items[a].SortOrder != nil {
			soA = *items[a].SortOrder
		}
		if items[b].SortOrder != nil {
			soB = *items[b].SortOrder
		}
		if soA != soB {
			return soA < soB
		}
		var tA, tB time.Time
		if items[a].CreatedAt != nil {
			tA = *items[a].CreatedAt
		}
		if items[b].CreatedAt != nil {
			tB = *items[b].CreatedAt
		}
		return tA.Before(tB)
	})

	return items
}
