package domain

import (
	"encoding/json"
	"time"
)

// Directory is the immutable, queryable model built from one validated
// document. It holds non-owning indexes by building and by filter into the
// canonical spot list. There is no mutation path after construction, so it
// is safe for unlimited concurrent readers.
type Directory struct {
	spots        []*Spot
	byID         map[string]*Spot
	byBuilding   map[string][]*Spot
	byFilter     map[Filter][]*Spot
	catalog      *FilterCatalog
	reservations json.RawMessage
}

// NewDirectory indexes the validated spots. Callers hand over ownership of
// the slice; the directory never mutates it or the spots.
func NewDirectory(spots []*Spot, catalog *FilterCatalog, reservations json.RawMessage) *Directory {
	d := &Directory{
		spots:        spots,
		byID:         make(map[string]*Spot, len(spots)),
		byBuilding:   make(map[string][]*Spot),
		byFilter:     make(map[Filter][]*Spot),
		catalog:      catalog,
		reservations: reservations,
	}
	for _, s := range spots {
		d.byID[s.ID] = s
		d.byBuilding[s.Building] = append(d.byBuilding[s.Building], s)
		for _, f := range s.Filters {
			d.byFilter[f] = append(d.byFilter[f], s)
		}
	}
	return d
}

// Criteria narrows a directory query. Zero-value fields do not constrain:
// an empty Criteria matches every spot.
type Criteria struct {
	Building string   // building code equality
	Filters  []Filter // spot must carry every listed filter
	OpenAt   *time.Time
}

// Query returns the spots matching every constraint in c, in document
// order.
func (d *Directory) Query(c Criteria) []*Spot {
	candidates := d.spots
	if c.Building != "" {
		candidates = d.byBuilding[c.Building]
	}
	var out []*Spot
	for _, s := range candidates {
		if !hasAllFilters(s, c.Filters) {
			continue
		}
		if c.OpenAt != nil && !SpotOpenAt(s, *c.OpenAt) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func hasAllFilters(s *Spot, filters []Filter) bool {
	for _, f := range filters {
		if !s.HasFilter(f) {
			return false
		}
	}
	return true
}

// Spots returns every spot in document order.
func (d *Directory) Spots() []*Spot {
	out := make([]*Spot, len(d.spots))
	copy(out, d.spots)
	return out
}

// SpotByID looks up a spot by its identity.
func (d *Directory) SpotByID(id string) (*Spot, bool) {
	s, ok := d.byID[id]
	return s, ok
}

// IsOpen reports whether the spot with the given id is open at the given
// instant. Returns ErrNotFound for an unknown id.
func (d *Directory) IsOpen(spotID string, at time.Time) (bool, error) {
	s, ok := d.byID[spotID]
	if !ok {
		return false, ErrNotFound
	}
	return SpotOpenAt(s, at), nil
}

// Catalog returns the document's validated filter catalog.
func (d *Directory) Catalog() *FilterCatalog { return d.catalog }

// Reservations returns the opaque reservation linkage block as authored.
func (d *Directory) Reservations() json.RawMessage { return d.reservations }
