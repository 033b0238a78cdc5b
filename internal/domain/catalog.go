package domain

import "fmt"

// CatalogItem is one recommendable programme with its manually curated
// trait vector.
type CatalogItem struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Faculty string `json:"faculty"`
	Vector  Vector `json:"vector"`
}

// Catalog holds the validated item set in load order. It is built once
// per process and read-only afterwards; concurrent requests share it
// without locking.
type Catalog struct {
	space *TraitSpace
	items []CatalogItem
}

// NewCatalog validates items against the trait space and freezes them.
func NewCatalog(space *TraitSpace, items []CatalogItem) (*Catalog, error) {
	seen := make(map[string]struct{}, len(items))
	owned := make([]CatalogItem, 0, len(items))
	for i, item := range items {
		record := i + 1
		if item.ID == "" {
			return nil, &CatalogLoadError{Record: record, Reason: "missing id"}
		}
		if _, ok := seen[item.ID]; ok {
			return nil, &CatalogLoadError{Record: record, Reason: fmt.Sprintf("duplicate id %q", item.ID)}
		}
		if len(item.Vector) != space.Dim() {
			return nil, &CatalogLoadError{
				Record: record,
				Reason: fmt.Sprintf("item %q has %d trait values, want %d", item.ID, len(item.Vector), space.Dim()),
			}
		}
		seen[item.ID] = struct{}{}
		item.Vector = item.Vector.Clone()
		owned = append(owned, item)
	}
	return &Catalog{space: space, items: owned}, nil
}

// Space returns the trait space the catalog's vectors live in.
func (c *Catalog) Space() *TraitSpace { return c.space }

// Len returns the number of catalog items.
func (c *Catalog) Len() int { return len(c.items) }

// Items returns the items in insertion order. The returned slice is a
// copy; callers cannot reorder the catalog through it.
func (c *Catalog) Items() []CatalogItem {
	out := make([]CatalogItem, len(c.items))
	copy(out, c.items)
	return out
}
