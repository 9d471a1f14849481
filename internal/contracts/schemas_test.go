package contracts

import (
	"testing"

	"estate-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() domain.PropertyDraft {
	return domain.PropertyDraft{
		Name:         "Lake House",
		Description:  "Quiet waterfront retreat",
		PropertyType: "House",
		Price:        450000,
		Location:     "Lakeside, Ohio",
		Bedrooms:     4,
		Bathrooms:    2,
		Features:     []string{"Private Garden"},
		Status:       domain.StatusDraft,
	}
}

func fieldNames(err error) []string {
	var ve *domain.ValidationError
	if !assertAs(err, &ve) {
		return nil
	}
	out := make([]string, 0, len(ve.Fields))
	for _, f := range ve.Fields {
		out = append(out, f.Field)
	}
	return out
}

func assertAs(err error, target **domain.ValidationError) bool {
	ve, ok := err.(*domain.ValidationError)
	if !ok {
		return false
	}
	*target = ve
	return true
}

func TestValidateDraft(t *testing.T) {
	validator := NewPropertyValidator()

	t.Run("valid draft passes", func(t *testing.T) {
		assert.NoError(t, validator.ValidateDraft(validDraft()))
	})

	t.Run("valid draft with images passes", func(t *testing.T) {
		draft := validDraft()
		alt := "Front view"
		draft.Thumbnail = &domain.ImageReference{
			PublicID: "estate/villa",
			URL:      "https://cdn.example.com/villa.jpg",
			AltText:  &alt,
		}
		draft.Images = []domain.ImageReference{
			{PublicID: "g1", URL: "https://cdn.example.com/g1.jpg"},
		}
		assert.NoError(t, validator.ValidateDraft(draft))
	})

	t.Run("empty name rejected", func(t *testing.T) {
		draft := validDraft()
		draft.Name = ""
		err := validator.ValidateDraft(draft)
		require.Error(t, err)
		assert.Contains(t, fieldNames(err), "name")
	})

	t.Run("name over 100 chars rejected", func(t *testing.T) {
		draft := validDraft()
		for len(draft.Name) <= 100 {
			draft.Name += "x"
		}
		err := validator.ValidateDraft(draft)
		require.Error(t, err)
		assert.Contains(t, fieldNames(err), "name")
	})

	t.Run("zero price rejected", func(t *testing.T) {
		draft := validDraft()
		draft.Price = 0
		err := validator.ValidateDraft(draft)
		require.Error(t, err)
		assert.Contains(t, fieldNames(err), "price")
	})

	t.Run("negative area rejected", func(t *testing.T) {
		draft := validDraft()
		area := -5.0
		draft.Area = &area
		err := validator.ValidateDraft(draft)
		require.Error(t, err)
		assert.Contains(t, fieldNames(err), "area")
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		draft := validDraft()
		draft.Status = domain.PropertyStatus("ARCHIVED")
		err := validator.ValidateDraft(draft)
		require.Error(t, err)
		assert.Contains(t, fieldNames(err), "status")
	})

	t.Run("bad image reference addressed per field", func(t *testing.T) {
		draft := validDraft()
		draft.Images = []domain.ImageReference{
			{PublicID: "ok", URL: "https://cdn.example.com/a.jpg"},
			{PublicID: "", URL: "https://cdn.example.com/b.jpg"},
		}
		err := validator.ValidateDraft(draft)
		require.Error(t, err)

		names := fieldNames(err)
		require.NotEmpty(t, names)
		for _, name := range names {
			assert.Contains(t, name, "images.1", "violation points at the offending entry")
		}
	})

	t.Run("several violations reported together", func(t *testing.T) {
		draft := validDraft()
		draft.Name = ""
		draft.Price = -1
		err := validator.ValidateDraft(draft)
		require.Error(t, err)

		names := fieldNames(err)
		assert.Contains(t, names, "name")
		assert.Contains(t, names, "price")
	})
}
