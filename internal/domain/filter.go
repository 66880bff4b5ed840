package domain

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// Filter is one tag from the fixed study spot vocabulary.
type Filter string

const (
	FilterIndividual Filter = "individual"
	FilterGroup      Filter = "group"
	FilterSilent     Filter = "silent"
	FilterFood       Filter = "food"
	FilterOutlets    Filter = "outlets"
	FilterComputers  Filter = "computers"
	FilterOpen       Filter = "open"
	FilterLighting   Filter = "lighting"
)

// AllFilters returns the closed filter vocabulary in canonical order.
func AllFilters() []Filter {
	return []Filter{
		FilterIndividual, FilterGroup, FilterSilent, FilterFood,
		FilterOutlets, FilterComputers, FilterOpen, FilterLighting,
	}
}

// ValidFilter reports whether f belongs to the vocabulary.
func ValidFilter(f Filter) bool {
	switch f {
	case FilterIndividual, FilterGroup, FilterSilent, FilterFood,
		FilterOutlets, FilterComputers, FilterOpen, FilterLighting:
		return true
	}
	return false
}

// FilterDescription binds a filter to its icon and localized display text.
// Icon follows the delegated icon schema and is kept opaque.
type FilterDescription struct {
	Icon         json.RawMessage
	Names        LocalizedText
	Descriptions LocalizedText
}

// FilterCatalog is the validated set of filters declared by one document,
// each bound to its description. Immutable after BuildFilterCatalog.
type FilterCatalog struct {
	filters      []Filter
	descriptions map[Filter]*FilterDescription
}

// BuildFilterCatalog validates the declared filter identifiers against the
// closed vocabulary and binds each to its description. All violations are
// collected; the catalog is nil unless validation passed.
//
// Checks, per the contract: unknown identifier, duplicate identifier,
// description without a declared filter (orphan), declared filter without a
// description (missing).
func BuildFilterCatalog(ids []string, descriptions map[string]*FilterDescription) (*FilterCatalog, Violations) {
	var vs Violations

	declared := make(map[Filter]bool, len(ids))
	filters := make([]Filter, 0, len(ids))
	for i, id := range ids {
		f := Filter(id)
		path := fmt.Sprintf("filters[%d]", i)
		if !ValidFilter(f) {
			vs.Add(UnknownFilter, path, "%q is not a known filter", id)
			continue
		}
		if declared[f] {
			vs.Add(DuplicateFilter, path, "filter %q declared more than once", id)
			continue
		}
		declared[f] = true
		filters = append(filters, f)
	}

	// Keys are sorted so repeated runs report orphans in the same order.
	bound := make(map[Filter]*FilterDescription, len(descriptions))
	for _, id := range slices.Sorted(maps.Keys(descriptions)) {
		f := Filter(id)
		if !declared[f] {
			vs.Add(OrphanDescription, "filterDescriptions."+id, "description for undeclared filter %q", id)
			continue
		}
		bound[f] = descriptions[id]
	}
	for _, f := range filters {
		if bound[f] == nil {
			vs.Add(MissingDescription, "filterDescriptions."+string(f), "declared filter %q has no description", f)
		}
	}

	if len(vs) > 0 {
		return nil, vs
	}
	return &FilterCatalog{filters: filters, descriptions: bound}, nil
}

// Filters returns the declared filters in declaration order.
func (c *FilterCatalog) Filters() []Filter {
	out := make([]Filter, len(c.filters))
	copy(out, c.filters)
	return out
}

// Has reports whether f was declared by the document.
func (c *FilterCatalog) Has(f Filter) bool {
	_, ok := c.descriptions[f]
	return ok
}

// Description returns the description bound to f.
func (c *FilterCatalog) Description(f Filter) (*FilterDescription, bool) {
	d, ok := c.descriptions[f]
	return d, ok
}
