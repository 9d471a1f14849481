package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func fixtureProperties() []Property {
	return []Property{
		{
			Name:         "Lake House",
			Description:  "Quiet waterfront retreat",
			PropertyType: "House",
			Price:        450000,
			Location:     "Lakeside, Ohio",
			Area:         floatPtr(300),
			Features:     []string{"Private Garden", "Boat Dock"},
		},
		{
			Name:         "City Loft",
			Description:  "Open plan loft downtown",
			PropertyType: "Apartment",
			Price:        320000,
			Location:     "Columbus, Ohio",
			Area:         floatPtr(95),
			Features:     []string{"Gym Access", "Rooftop Garden"},
		},
		{
			Name:         "Country Cottage",
			Description:  "Stone cottage with lake views",
			PropertyType: "House",
			Price:        280000,
			Location:     "Granville, Ohio",
			Area:         nil, // area unknown
			Features:     []string{"Fireplace"},
		},
		{
			Name:         "Harbor Villa",
			Description:  "Seafront villa with pool",
			PropertyType: "Villa",
			Price:        890000,
			Location:     "Sandusky, Ohio",
			Area:         floatPtr(520),
			Features:     []string{"Garden", "Gym", "Pool"},
		},
	}
}

func names(items []Property) []string {
	out := make([]string, 0, len(items))
	for _, p := range items {
		out = append(out, p.Name)
	}
	return out
}

func TestVisibleNoCriteria(t *testing.T) {
	items := fixtureProperties()
	got := Visible(items, "", FilterCriteria{})
	assert.Equal(t, names(items), names(got), "empty filter admits everything in order")
}

func TestVisibleFreeTextQuery(t *testing.T) {
	items := fixtureProperties()

	t.Run("matches across name description location and type", func(t *testing.T) {
		// "lake" hits Lake House by name and Country Cottage by description.
		got := Visible(items, "lake", FilterCriteria{})
		assert.Equal(t, []string{"Lake House", "Country Cottage"}, names(got))
	})

	t.Run("case insensitive", func(t *testing.T) {
		got := Visible(items, "VILLA", FilterCriteria{})
		assert.Equal(t, []string{"Harbor Villa"}, names(got))
	})

	t.Run("type matches too", func(t *testing.T) {
		got := Visible(items, "apartment", FilterCriteria{})
		assert.Equal(t, []string{"City Loft"}, names(got))
	})

	t.Run("whitespace-only query matches everything", func(t *testing.T) {
		got := Visible(items, "   ", FilterCriteria{})
		assert.Len(t, got, len(items))
	})
}

func TestVisibleLocationsWiden(t *testing.T) {
	items := fixtureProperties()

	one := Visible(items, "", FilterCriteria{Locations: []string{"Lakeside"}})
	two := Visible(items, "", FilterCriteria{Locations: []string{"Lakeside", "Columbus"}})

	assert.Equal(t, []string{"Lake House"}, names(one))
	assert.Equal(t, []string{"Lake House", "City Loft"}, names(two))
	assert.GreaterOrEqual(t, len(two), len(one), "adding locations can only widen")
}

func TestVisibleLocationSubstring(t *testing.T) {
	items := fixtureProperties()
	// Every fixture is in Ohio; substring match on the shared suffix.
	got := Visible(items, "", FilterCriteria{Locations: []string{"Ohio"}})
	assert.Len(t, got, len(items))
}

func TestVisiblePriceInclusive(t *testing.T) {
	items := fixtureProperties()

	got := Visible(items, "", FilterCriteria{
		PriceRange: &PriceRange{Min: 280000, Max: 450000},
	})
	// Boundary values are admitted on both ends.
	assert.Equal(t, []string{"Lake House", "City Loft", "Country Cottage"}, names(got))
}

func TestVisiblePropertyTypesExact(t *testing.T) {
	items := fixtureProperties()

	got := Visible(items, "", FilterCriteria{PropertyTypes: []string{"House"}})
	assert.Equal(t, []string{"Lake House", "Country Cottage"}, names(got))

	// Exact match only: a partial type never matches.
	got = Visible(items, "", FilterCriteria{PropertyTypes: []string{"Hou"}})
	assert.Empty(t, got)
}

func TestVisibleLandAreaExcludesUnknown(t *testing.T) {
	items := fixtureProperties()

	got := Visible(items, "", FilterCriteria{
		LandArea: &LandAreaRange{Min: "100"},
	})
	// Country Cottage has no recorded area, so any bound excludes it.
	assert.Equal(t, []string{"Lake House", "Harbor Villa"}, names(got))

	t.Run("unbounded range is a no-op", func(t *testing.T) {
		got := Visible(items, "", FilterCriteria{LandArea: &LandAreaRange{}})
		assert.Len(t, got, len(items))
	})

	t.Run("max bound only", func(t *testing.T) {
		got := Visible(items, "", FilterCriteria{LandArea: &LandAreaRange{Max: "100"}})
		assert.Equal(t, []string{"City Loft"}, names(got))
	})
}

func TestVisibleAmenitiesNarrow(t *testing.T) {
	items := fixtureProperties()

	one := Visible(items, "", FilterCriteria{Amenities: []string{"Garden"}})
	two := Visible(items, "", FilterCriteria{Amenities: []string{"Garden", "Gym"}})

	// "Garden" substring-matches Private Garden, Rooftop Garden and Garden.
	assert.Equal(t, []string{"Lake House", "City Loft", "Harbor Villa"}, names(one))
	// Requiring Gym as well narrows to the properties that carry both.
	assert.Equal(t, []string{"City Loft", "Harbor Villa"}, names(two))
	assert.LessOrEqual(t, len(two), len(one), "adding amenities can only narrow")
}

func TestVisibleCombinedDimensions(t *testing.T) {
	items := fixtureProperties()

	got := Visible(items, "ohio", FilterCriteria{
		PropertyTypes: []string{"House", "Villa"},
		PriceRange:    &PriceRange{Min: 400000, Max: 1000000},
		Amenities:     []string{"Garden"},
	})
	assert.Equal(t, []string{"Lake House", "Harbor Villa"}, names(got))
}

func TestVisibleIsPure(t *testing.T) {
	items := fixtureProperties()
	criteria := FilterCriteria{Amenities: []string{"Garden"}}

	first := Visible(items, "", criteria)
	second := Visible(items, "", criteria)

	assert.Equal(t, names(first), names(second), "same inputs give same output")
	require.Len(t, items, 4, "input slice is never mutated")
	assert.Equal(t, "Lake House", items[0].Name)
}

func TestVisibleRelaxingRestores(t *testing.T) {
	items := fixtureProperties()

	narrowed := Visible(items, "", FilterCriteria{PropertyTypes: []string{"Villa"}})
	restored := Visible(items, "", FilterCriteria{})

	assert.Equal(t, []string{"Harbor Villa"}, names(narrowed))
	assert.Len(t, restored, len(items), "clearing criteria brings everything back")
}
