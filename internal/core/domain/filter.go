package domain

import (
	"math"
	"strconv"
	"strings"
)

// PriceRange is an inclusive [Min, Max] price bound.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// LandAreaRange carries string-encoded integer bounds, exactly as the
// filter UI produces them; an empty string means the bound is not set.
type LandAreaRange struct {
	Min string `json:"min"`
	Max string `json:"max"`
}

// IsBounded reports whether at least one bound is set.
func (r LandAreaRange) IsBounded() bool { return r.Min != "" || r.Max != "" }

// FilterCriteria is the structured filter state owned by the view layer.
// The filter engine only ever reads it. Empty sections match everything
// along their dimension.
type FilterCriteria struct {
	Locations     []string       `json:"locations,omitempty"`
	PriceRange    *PriceRange    `json:"priceRange,omitempty"`
	LandArea      *LandAreaRange `json:"landArea,omitempty"`
	PropertyTypes []string       `json:"propertyTypes,omitempty"`
	Amenities     []string       `json:"amenities,omitempty"`
}

// Visible computes the subset of an already-fetched listing window that the
// given free-text query and criteria admit. It is pure and order-preserving:
// the result keeps the input order and the inputs are never mutated.
//
// Predicate composition (all dimensions must pass):
//   - free text: case-insensitive substring against name, description,
//     location or property type; any one match admits the item;
//   - locations: OR, the property's location must contain (not equal) at
//     least one selected location;
//   - price: inclusive range;
//   - property types: OR, exact match against one of the selected types;
//   - land area: a property with unknown area is excluded whenever either
//     bound is set;
//   - amenities: AND, every selected amenity must substring-match some
//     feature. Selecting more amenities narrows, selecting more
//     locations widens.
func Visible(items []Property, query string, criteria FilterCriteria) []Property {
	out := make([]Property, 0, len(items))
	q := strings.ToLower(strings.TrimSpace(query))

	for _, p := range items {
		if q != "" && !matchesQuery(p, q) {
			continue
		}
		if len(criteria.Locations) > 0 && !matchesAnyLocation(p, criteria.Locations) {
			continue
		}
		if criteria.PriceRange != nil {
			if p.Price < criteria.PriceRange.Min || p.Price > criteria.PriceRange.Max {
				continue
			}
		}
		if len(criteria.PropertyTypes) > 0 && !containsString(criteria.PropertyTypes, p.PropertyType) {
			continue
		}
		if criteria.LandArea != nil && criteria.LandArea.IsBounded() {
			if !matchesLandArea(p, *criteria.LandArea) {
				continue
			}
		}
		if len(criteria.Amenities) > 0 && !hasAllAmenities(p, criteria.Amenities) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesQuery(p Property, q string) bool {
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Location), q) ||
		strings.Contains(strings.ToLower(p.PropertyType), q)
}

func matchesAnyLocation(p Property, locations []string) bool {
	loc := strings.ToLower(p.Location)
	for _, l := range locations {
		if strings.Contains(loc, strings.ToLower(l)) {
			return true
		}
	}
	return false
}

func matchesLandArea(p Property, bounds LandAreaRange) bool {
	// Absence never satisfies a bound.
	if p.Area == nil {
		return false
	}
	min := 0.0
	if bounds.Min != "" {
		if v, err := strconv.Atoi(bounds.Min); err == nil {
			min = float64(v)
		}
	}
	max := math.Inf(1)
	if bounds.Max != "" {
		if v, err := strconv.Atoi(bounds.Max); err == nil {
			max = float64(v)
		}
	}
	return *p.Area >= min && *p.Area <= max
}

func hasAllAmenities(p Property, amenities []string) bool {
	for _, a := range amenities {
		want := strings.ToLower(a)
		found := false
		for _, f := range p.Features {
			if strings.Contains(strings.ToLower(f), want) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
