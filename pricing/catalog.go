package pricing

import "surya-admin/models"

// Catalog is an immutable snapshot of catalog items keyed by id.
// Drafts are validated and denormalized against one snapshot so a whole
// create/update runs against a single consistent view of the catalog.
type Catalog struct {
	byID map[int64]models.Item
}

// NewCatalog builds a snapshot from a slice of items
func NewCatalog(items []models.Item) Catalog {
	byID := make(map[int64]models.Item, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	return Catalog{byID: byID}
}

// Lookup returns the item for id. A stale or unknown id simply reports
// not-found; callers degrade gracefully instead of failing.
func (c Catalog) Lookup(id int64) (models.Item, bool) {
	item, ok := c.byID[id]
	return item, ok
}
