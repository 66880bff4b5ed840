package services

import (
	"fmt"
	"maps"
	"slices"
	"strconv"

	"studyspots/internal/domain"
)

type documentValidator struct{}

// NewDocumentValidator returns the schema validator for directory documents.
func NewDocumentValidator() domain.DocumentValidator {
	return &documentValidator{}
}

// Validate checks the whole document against the contract. It is
// exhaustive, not fail-fast: every violation across the document is
// collected so a caller sees all defects in one pass. The directory is nil
// unless the document is violation-free.
func (v *documentValidator) Validate(doc *domain.RawDocument) (*domain.Directory, domain.Violations) {
	var vs domain.Violations

	for _, key := range doc.MissingKeys() {
		vs.Add(domain.StructuralViolation, "$", "required key %q is missing", key)
	}
	for _, key := range doc.UnknownKeys {
		vs.Add(domain.StructuralViolation, "$."+key, "unexpected top-level key %q", key)
	}
	for _, key := range doc.BadTypes {
		vs.Add(domain.StructuralViolation, "$."+key, "key %q has the wrong type", key)
	}

	descriptions := make(map[string]*domain.FilterDescription, len(doc.FilterDescriptions))
	for _, id := range slices.Sorted(maps.Keys(doc.FilterDescriptions)) {
		descriptions[id] = v.validateDescription(id, doc.FilterDescriptions[id], &vs)
	}

	catalog, catalogViolations := domain.BuildFilterCatalog(doc.Filters, descriptions)
	vs = append(vs, catalogViolations...)

	// Spot filter references are checked against the declared identifiers
	// rather than the catalog, so reference errors are still reported when
	// the catalog itself failed to build.
	declared := make(map[string]bool, len(doc.Filters))
	for _, id := range doc.Filters {
		declared[id] = true
	}

	spots := make([]*domain.Spot, 0, len(doc.Spots))
	for i := range doc.Spots {
		spots = append(spots, v.validateSpot(i, &doc.Spots[i], declared, &vs))
	}

	if len(vs) > 0 {
		return nil, vs
	}
	return domain.NewDirectory(spots, catalog, doc.Reservations), nil
}

func (v *documentValidator) validateDescription(id string, rd *domain.RawFilterDescription, vs *domain.Violations) *domain.FilterDescription {
	path := "filterDescriptions." + id
	if rd == nil {
		vs.Add(domain.StructuralViolation, path, "description must be an object")
		return &domain.FilterDescription{}
	}
	if !rd.HasIcon {
		vs.Add(domain.StructuralViolation, path+".icon", "required key \"icon\" is missing")
	}
	for _, key := range rd.UnknownKeys {
		vs.Add(domain.UnknownField, path+"."+key, "key %q does not match the name/description pattern", key)
	}
	for _, key := range rd.BadTypes {
		vs.Add(domain.StructuralViolation, path+"."+key, "key %q must be a string", key)
	}
	names, descs := splitLocalized(rd.LocaleFields)
	return &domain.FilterDescription{Icon: rd.Icon, Names: names, Descriptions: descs}
}

func (v *documentValidator) validateSpot(i int, rs *domain.RawSpot, declared map[string]bool, vs *domain.Violations) *domain.Spot {
	path := fmt.Sprintf("spots[%d]", i)

	for _, required := range []struct {
		key     string
		present bool
	}{
		{"building", rs.HasBuilding},
		{"room", rs.HasRoom},
		{"filters", rs.HasFilters},
		{"opens", rs.HasOpens},
		{"closes", rs.HasCloses},
	} {
		if !required.present {
			vs.Add(domain.StructuralViolation, path+"."+required.key, "required key %q is missing", required.key)
		}
	}
	for _, key := range rs.UnknownKeys {
		vs.Add(domain.UnknownField, path+"."+key, "key %q is not part of the spot contract", key)
	}
	for _, key := range rs.BadTypes {
		vs.Add(domain.StructuralViolation, path+"."+key, "key %q has the wrong type", key)
	}

	// Duplicate references within one spot are tolerated and deduplicated;
	// each distinct undeclared identifier is one violation.
	seen := make(map[string]bool, len(rs.Filters))
	var filters []domain.Filter
	for _, id := range rs.Filters {
		if seen[id] {
			continue
		}
		seen[id] = true
		if !declared[id] {
			vs.Add(domain.UnknownFilter, path+".filters", "filter %q is not declared by the document", id)
			continue
		}
		filters = append(filters, domain.Filter(id))
	}

	// alwaysOpen overrides the window entirely, so opens/closes are not
	// parsed for such spots — even malformed values cannot matter.
	opens := domain.TimeValue{NotApplicable: true}
	closes := domain.TimeValue{NotApplicable: true}
	if !rs.AlwaysOpen {
		if rs.HasOpens {
			opens = v.parseTime(path+".opens", rs.Opens, vs)
		}
		if rs.HasCloses {
			closes = v.parseTime(path+".closes", rs.Closes, vs)
		}
	}

	id := rs.ID
	if !rs.HasID {
		id = strconv.Itoa(i)
	}

	names, descs := splitLocalized(rs.LocaleFields)
	return &domain.Spot{
		ID:           id,
		Building:     rs.Building,
		Room:         rs.Room,
		Filters:      filters,
		Opens:        opens,
		Closes:       closes,
		AlwaysOpen:   rs.AlwaysOpen,
		Names:        names,
		Descriptions: descs,
	}
}

func (v *documentValidator) parseTime(path, raw string, vs *domain.Violations) domain.TimeValue {
	tv, err := domain.ParseTimeValue(raw)
	if err != nil {
		vs.Add(domain.MalformedTime, path, "%v", err)
		return domain.TimeValue{NotApplicable: true}
	}
	return tv
}

// splitLocalized fans pattern-keyed fields ("name", "description_de") out
// into per-base locale maps.
func splitLocalized(fields map[string]string) (names, descriptions domain.LocalizedText) {
	names = domain.LocalizedText{}
	descriptions = domain.LocalizedText{}
	for key, value := range fields {
		base, locale, ok := domain.SplitLocaleKey(key)
		if !ok {
			continue // the decoder only stores pattern keys
		}
		if base == "name" {
			names[locale] = value
		} else {
			descriptions[locale] = value
		}
	}
	return names, descriptions
}
