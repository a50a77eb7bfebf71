package model

import "github.com/google/uuid"

// CatalogEntry is a named preset the form can be loaded from.
type CatalogEntry struct {
	ID      string
	Name    string
	Profile ToolProfile
}

// NewCatalogEntry creates an entry with a short random ID. An empty name
// falls back to the stock code.
func NewCatalogEntry(name string, p ToolProfile) CatalogEntry {
	if name == "" {
		name = StockCode(p)
	}
	return CatalogEntry{
		ID:      uuid.New().String()[:8],
		Name:    name,
		Profile: p,
	}
}

// Catalog is the session's list of presets: the built-in tools plus any
// imported catalog rows. It lives in memory only.
type Catalog struct {
	Entries []CatalogEntry
}

// DefaultCatalog returns the built-in corner radius end mills.
func DefaultCatalog() Catalog {
	small := ToolProfile{D1: 6, D2: 6, D3: 5.7, L1: 57, L2: 13, L3: 20, R: 0.2, Flutes: 3, HelixAngle: 35}
	long := ToolProfile{D1: 12, D2: 12, D3: 11.5, L1: 100, L2: 30, L3: 45, R: 1, Flutes: 4, HelixAngle: 40}
	return Catalog{
		Entries: []CatalogEntry{
			NewCatalogEntry("Corner radius 6mm", small),
			NewCatalogEntry("Corner radius 10mm", DefaultToolProfile()),
			NewCatalogEntry("Long reach 12mm", long),
		},
	}
}

// Add appends an entry and returns its ID.
func (c *Catalog) Add(name string, p ToolProfile) string {
	e := NewCatalogEntry(name, p)
	c.Entries = append(c.Entries, e)
	return e.ID
}

// Find looks up an entry by ID.
func (c Catalog) Find(id string) (CatalogEntry, bool) {
	for _, e := range c.Entries {
		if e.ID == id {
			return e, true
		}
	}
	return CatalogEntry{}, false
}

// Remove deletes the entry with the given ID and reports whether it existed.
func (c *Catalog) Remove(id string) bool {
	for i, e := range c.Entries {
		if e.ID == id {
			c.Entries = append(c.Entries[:i], c.Entries[i+1:]...)
			return true
		}
	}
	return false
}
