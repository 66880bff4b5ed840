package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// The four keys every directory document must carry, and no others.
var requiredDocumentKeys = []string{"filters", "filterDescriptions", "spots", "reservations"}

// RawDocument is the study spot directory document as authored, before
// validation. Decoding is lenient about content — wrong types and unknown
// keys are recorded rather than rejected — so the validator can report
// every defect in one pass. Only a broken JSON envelope fails the decode.
type RawDocument struct {
	Filters            []string
	FilterDescriptions map[string]*RawFilterDescription
	Spots              []RawSpot
	Reservations       json.RawMessage

	Present     map[string]bool // which top-level keys appeared
	UnknownKeys []string        // unexpected top-level keys, sorted
	BadTypes    []string        // known top-level keys holding the wrong JSON type, sorted
}

// DecodeDocument parses raw directory document bytes. An error here means
// the envelope itself is unreadable; contract breaches inside a readable
// document are left for validation.
func DecodeDocument(data []byte) (*RawDocument, error) {
	var doc RawDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode directory document: %w", err)
	}
	return &doc, nil
}

func (d *RawDocument) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	d.Present = make(map[string]bool, len(fields))

	for _, key := range slices.Sorted(maps.Keys(fields)) {
		raw := fields[key]
		switch key {
		case "filters":
			d.Present[key] = true
			if json.Unmarshal(raw, &d.Filters) != nil {
				d.BadTypes = append(d.BadTypes, key)
			}
		case "filterDescriptions":
			d.Present[key] = true
			if json.Unmarshal(raw, &d.FilterDescriptions) != nil {
				d.BadTypes = append(d.BadTypes, key)
			}
		case "spots":
			d.Present[key] = true
			if json.Unmarshal(raw, &d.Spots) != nil {
				d.BadTypes = append(d.BadTypes, key)
			}
		case "reservations":
			// Delegated linkCategory schema; kept opaque.
			d.Present[key] = true
			d.Reservations = raw
		default:
			d.UnknownKeys = append(d.UnknownKeys, key)
		}
	}
	return nil
}

// MissingKeys returns the required top-level keys absent from the document.
func (d *RawDocument) MissingKeys() []string {
	var missing []string
	for _, key := range requiredDocumentKeys {
		if !d.Present[key] {
			missing = append(missing, key)
		}
	}
	return missing
}

// RawFilterDescription is one filterDescriptions entry before validation:
// the required icon plus pattern-keyed name/description fields.
type RawFilterDescription struct {
	Icon         json.RawMessage
	HasIcon      bool
	LocaleFields map[string]string
	UnknownKeys  []string
	BadTypes     []string
}

func (fd *RawFilterDescription) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	for _, key := range slices.Sorted(maps.Keys(fields)) {
		raw := fields[key]
		if key == "icon" {
			fd.Icon = raw
			fd.HasIcon = true
			continue
		}
		if _, _, ok := SplitLocaleKey(key); !ok {
			fd.UnknownKeys = append(fd.UnknownKeys, key)
			continue
		}
		var s string
		if json.Unmarshal(raw, &s) != nil {
			fd.BadTypes = append(fd.BadTypes, key)
			continue
		}
		if fd.LocaleFields == nil {
			fd.LocaleFields = make(map[string]string)
		}
		fd.LocaleFields[key] = s
	}
	return nil
}

// RawSpot is one spots entry before validation. Presence flags distinguish
// an absent field from a zero value, since every core field is required.
type RawSpot struct {
	ID          string
	HasID       bool
	Building    string
	HasBuilding bool
	Room        *string // nil with HasRoom set means JSON null: no specific room
	HasRoom     bool
	Filters     []string
	HasFilters  bool
	Opens       string
	HasOpens    bool
	Closes      string
	HasCloses   bool
	AlwaysOpen  bool

	LocaleFields map[string]string
	UnknownKeys  []string
	BadTypes     []string
}

func (s *RawSpot) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	for _, key := range slices.Sorted(maps.Keys(fields)) {
		raw := fields[key]
		switch key {
		case "id":
			s.HasID = true
			if json.Unmarshal(raw, &s.ID) != nil {
				s.BadTypes = append(s.BadTypes, key)
			}
		case "building":
			s.HasBuilding = true
			if json.Unmarshal(raw, &s.Building) != nil {
				s.BadTypes = append(s.BadTypes, key)
			}
		case "room":
			// Nullable by contract: null means the whole building area,
			// e.g. a lobby.
			s.HasRoom = true
			if json.Unmarshal(raw, &s.Room) != nil {
				s.BadTypes = append(s.BadTypes, key)
			}
		case "filters":
			s.HasFilters = true
			if json.Unmarshal(raw, &s.Filters) != nil {
				s.BadTypes = append(s.BadTypes, key)
			}
		case "opens":
			s.HasOpens = true
			if json.Unmarshal(raw, &s.Opens) != nil {
				s.BadTypes = append(s.BadTypes, key)
			}
		case "closes":
			s.HasCloses = true
			if json.Unmarshal(raw, &s.Closes) != nil {
				s.BadTypes = append(s.BadTypes, key)
			}
		case "alwaysOpen":
			if json.Unmarshal(raw, &s.AlwaysOpen) != nil {
				s.BadTypes = append(s.BadTypes, key)
			}
		default:
			if _, _, ok := SplitLocaleKey(key); !ok {
				s.UnknownKeys = append(s.UnknownKeys, key)
				continue
			}
			var v string
			if json.Unmarshal(raw, &v) != nil {
				s.BadTypes = append(s.BadTypes, key)
				continue
			}
			if s.LocaleFields == nil {
				s.LocaleFields = make(map[string]string)
			}
			s.LocaleFields[key] = v
		}
	}
	return nil
}

// DocumentValidator validates a raw directory document against the
// contract, returning either the queryable directory or every violation
// found.
type DocumentValidator interface {
	Validate(doc *RawDocument) (*Directory, Violations)
}

// DirectoryIngestService defines the business logic for loading and
// releasing directory documents.
type DirectoryIngestService interface {
	// LoadDocument decodes, validates, versions and persists one document.
	// source describes where the document came from, for diagnostics.
	// version is an explicit "X.Y.Z" or one of "major", "minor", "patch".
	LoadDocument(ctx context.Context, source string, raw []byte, version string) (*Directory, error)
}
