package domain

// Spot is one validated physical study location. Spots are immutable once
// validated; the directory is rebuilt wholesale on each document load.
type Spot struct {
	ID           string  // authored id, or the positional index when absent
	Building     string  // building code
	Room         *string // nil means no specific room, e.g. a building lobby
	Filters      []Filter
	Opens        TimeValue
	Closes       TimeValue
	AlwaysOpen   bool
	Names        LocalizedText
	Descriptions LocalizedText
}

// Name returns the spot's display name for locale, falling back to the
// base name.
func (s *Spot) Name(locale string) (string, bool) {
	return s.Names.Resolve(locale)
}

// Description returns the spot's description for locale, falling back to
// the base description.
func (s *Spot) Description(locale string) (string, bool) {
	return s.Descriptions.Resolve(locale)
}

// HasFilter reports whether the spot carries f.
func (s *Spot) HasFilter(f Filter) bool {
	for _, have := range s.Filters {
		if have == f {
			return true
		}
	}
	return false
}
